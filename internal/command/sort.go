package command

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvheap/binomial"
	"github.com/katalvlaran/lvheap/core"
	"github.com/katalvlaran/lvheap/fibonacci"
)

type sortCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	kind           string
	descending     bool
}

func newSortCommandeer(rootCommandeer *RootCommandeer) *sortCommandeer {
	commandeer := &sortCommandeer{
		rootCommandeer: rootCommandeer,
	}

	defaultKind := os.Getenv(kindEnvVarName)
	if defaultKind == "" {
		defaultKind = KindBinomial
	}

	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Heap-sort integers given as arguments or read from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			var values []int
			var err error
			if len(args) > 0 {
				values, err = parseValues(args)
			} else {
				values, err = readValues(cmd.InOrStdin())
			}
			if err != nil {
				return errors.Wrap(err, "Failed to read values")
			}

			queue, err := commandeer.newQueue(values)
			if err != nil {
				return err
			}

			rootCommandeer.loggerInstance.DebugWith("Sorting values",
				"kind", commandeer.kind,
				"descending", commandeer.descending,
				"count", len(values))

			return rootCommandeer.renderer(cmd).RenderValues(rootCommandeer.output, core.Sorted(queue))
		},
	}

	cmd.Flags().StringVarP(&commandeer.kind, "kind", "k", defaultKind, "Heap kind - \"binomial\" or \"fibonacci\"")
	cmd.Flags().BoolVar(&commandeer.descending, "desc", false, "Sort in descending order")

	commandeer.cmd = cmd

	return commandeer
}

func (sc *sortCommandeer) newQueue(values []int) (core.MinQueue[int], error) {
	order := core.Natural[int]()
	if sc.descending {
		order = core.Reverse(order)
	}

	switch sc.kind {
	case KindBinomial:
		return binomial.New(order, binomial.WithValues(values...)), nil
	case KindFibonacci:
		return fibonacci.New(order, fibonacci.WithCapacity[int](len(values)), fibonacci.WithValues(values...)), nil
	default:
		return nil, errors.Errorf("Invalid heap kind %q. Must be one of binomial / fibonacci", sc.kind)
	}
}

func parseValues(fields []string) ([]int, error) {
	values := make([]int, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, "Invalid integer %q", field)
		}
		values = append(values, v)
	}

	return values, nil
}

// readValues parses whitespace-separated integers from r.
func readValues(r io.Reader) ([]int, error) {
	var values []int
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		parsed, err := parseValues(strings.Fields(scanner.Text()))
		if err != nil {
			return nil, err
		}
		values = append(values, parsed...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "Failed to scan input")
	}

	return values, nil
}
