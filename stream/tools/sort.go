package main

import (
	"context"
	"slices"

	"github.com/navijation/njheap/stream"
	"github.com/navijation/njheap/util/logger"
	"github.com/urfave/cli/v3"
)

func (me *app) sortValues(ctx context.Context, cmd *cli.Command) error {
	values, err := me.readValues(cmd)
	if err != nil {
		return err
	}

	descending := cmd.Bool("max")

	var count int
	if cmd.Bool("numeric") {
		numbers, err := parseNumbers(values)
		if err != nil {
			return err
		}
		sorted := stream.Sort(slices.Values(numbers), orderPolicy[float64](descending))
		if count, err = writeLines(me.out, sorted, formatNumber); err != nil {
			return err
		}
	} else {
		sorted := stream.Sort(slices.Values(values), orderPolicy[string](descending))
		if count, err = writeLines(me.out, sorted, identity[string]); err != nil {
			return err
		}
	}

	logger.For(ctx).WithField("count", count).Debug("sorted values")
	return nil
}
