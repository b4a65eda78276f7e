package main

import (
	"cmp"
	"context"
	"math"
	"slices"

	"github.com/navijation/njheap/stream"
	"github.com/navijation/njheap/util/logger"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func (me *app) topKValues(ctx context.Context, cmd *cli.Command) error {
	k := cmd.Uint("k")
	if k == 0 {
		return errors.New("k must be positive")
	}
	if k > math.MaxInt {
		return errors.Errorf("k must be at most %d", math.MaxInt)
	}

	values, err := me.readValues(cmd)
	if err != nil {
		return err
	}

	logger.For(ctx).WithField("k", k).WithField("count", len(values)).Debug("selecting values")

	if cmd.Bool("numeric") {
		numbers, err := parseNumbers(values)
		if err != nil {
			return err
		}
		top := stream.TopK(slices.Values(numbers), int(k), cmp.Compare[float64])
		_, err = writeLines(me.out, slices.Values(top), formatNumber)
		return err
	}

	top := stream.TopK(slices.Values(values), int(k), cmp.Compare[string])
	_, err = writeLines(me.out, slices.Values(top), identity[string])
	return err
}
