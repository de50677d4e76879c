package command

import (
	"os"
	"strconv"

	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
	"github.com/nuclio/zap"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvheap/internal/render"
)

const (
	kindEnvVarName    = "LVHEAP_KIND"
	verboseEnvVarName = "LVHEAP_VERBOSE"
)

// Heap kinds accepted by --kind.
const (
	KindBinomial  = "binomial"
	KindFibonacci = "fibonacci"
)

type RootCommandeer struct {
	loggerInstance logger.Logger
	cmd            *cobra.Command
	verbose        bool
	output         string
}

// NewRootCommandeer builds the lvheap command tree. A non-nil loggerInstance
// replaces the logger created from --verbose.
func NewRootCommandeer(loggerInstance logger.Logger) *RootCommandeer {
	commandeer := &RootCommandeer{
		loggerInstance: loggerInstance,
	}

	cmd := &cobra.Command{
		Use:           "lvheap [command]",
		Short:         "Heap sort, shortest paths and spanning trees on mergeable heaps",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultVerbose, _ := strconv.ParseBool(os.Getenv(verboseEnvVarName))

	cmd.PersistentFlags().BoolVarP(&commandeer.verbose, "verbose", "v", defaultVerbose, "Verbose output")
	cmd.PersistentFlags().StringVarP(&commandeer.output, "output", "o", render.FormatTable, "Output format - \"table\" or \"yaml\"")

	// add children
	cmd.AddCommand(
		newSortCommandeer(commandeer).cmd,
		newPathCommandeer(commandeer).cmd,
		newMSTCommandeer(commandeer).cmd,
	)

	commandeer.cmd = cmd

	return commandeer
}

// Execute runs the command selected by os.Args (or SetArgs on GetCmd)
func (rc *RootCommandeer) Execute() error {
	return rc.cmd.Execute()
}

// GetCmd returns the underlying cobra command
func (rc *RootCommandeer) GetCmd() *cobra.Command {
	return rc.cmd
}

func (rc *RootCommandeer) initialize() error {
	switch rc.output {
	case render.FormatTable, render.FormatYAML:
	default:
		return errors.Errorf("Invalid output format %q. Must be one of table / yaml", rc.output)
	}

	if rc.loggerInstance != nil {
		return nil
	}

	var err error
	rc.loggerInstance, err = rc.createLogger()
	if err != nil {
		return errors.Wrap(err, "Failed to create logger")
	}

	return nil
}

func (rc *RootCommandeer) createLogger() (logger.Logger, error) {
	var loggerLevel nucliozap.Level

	if rc.verbose {
		loggerLevel = nucliozap.DebugLevel
	} else {
		loggerLevel = nucliozap.InfoLevel
	}

	loggerInstance, err := nucliozap.NewNuclioZapCmd("lvheap", loggerLevel)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create logger")
	}

	return loggerInstance, nil
}

func (rc *RootCommandeer) renderer(cmd *cobra.Command) *render.Renderer {
	return render.NewRenderer(cmd.OutOrStdout())
}
