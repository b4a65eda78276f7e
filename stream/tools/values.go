package main

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/navijation/njheap/util/heap"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

// readValues returns the command arguments, or the non-blank lines of stdin
// when there are none.
func (me *app) readValues(cmd *cli.Command) ([]string, error) {
	if cmd.Args().Present() {
		return cmd.Args().Slice(), nil
	}

	var out []string
	scanner := bufio.NewScanner(me.in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out, errors.Wrap(scanner.Err(), "failed to read values from stdin")
}

func parseNumbers(values []string) ([]float64, error) {
	out := make([]float64, 0, len(values))
	for _, value := range values {
		number, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", value)
		}
		// NaN has no place in a total order
		if math.IsNaN(number) {
			return nil, errors.Errorf("invalid number %q", value)
		}
		out = append(out, number)
	}
	return out, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func orderPolicy[T cmp.Ordered](descending bool) heap.Policy[T] {
	if descending {
		return func(a, b T) bool { return a > b }
	}
	return func(a, b T) bool { return a < b }
}

func writeLines[T any](w io.Writer, seq iter.Seq[T], format func(T) string) (count int, _ error) {
	for value := range seq {
		if _, err := fmt.Fprintln(w, format(value)); err != nil {
			return count, errors.Wrap(err, "failed to write output")
		}
		count++
	}
	return count, nil
}

func identity[T any](v T) T { return v }
