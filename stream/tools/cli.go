package main

import (
	"context"
	"io"
	"os"

	"github.com/navijation/njheap/util/logger"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func main() {
	cmd := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.Command {
	me := &app{in: in, out: out, errOut: errOut}

	numericFlag := &cli.BoolFlag{
		Name:  "numeric",
		Usage: "compare values as numbers instead of strings",
	}

	return &cli.Command{
		Name:      "heaptool",
		Usage:     "sort, select and merge values with a binary heap",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log debug output to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "sort",
				Usage:     "print values in heap order, smallest first",
				ArgsUsage: "[value ...]",
				Action:    me.action("sort", me.sortValues),
				Flags: []cli.Flag{
					numericFlag,
					&cli.BoolFlag{
						Name:  "max",
						Usage: "largest first",
					},
				},
			},
			{
				Name:      "topk",
				Usage:     "print the k greatest values, greatest first",
				ArgsUsage: "[value ...]",
				Action:    me.action("topk", me.topKValues),
				Flags: []cli.Flag{
					numericFlag,
					&cli.UintFlag{
						Name:        "k",
						DefaultText: "10",
						Value:       10,
						Usage:       "number of values to keep",
					},
				},
			},
			{
				Name:      "merge",
				Usage:     "merge files whose lines are sorted ascending",
				ArgsUsage: "src_path1 [src_path2 ...]",
				Action:    me.action("merge", me.mergeFiles),
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "unique",
						Usage: "drop repeated lines",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "write to `path` instead of stdout",
					},
					&cli.BoolFlag{
						Name:  "no-clobber",
						Usage: "fail if the output path already exists",
					},
				},
			},
		},
	}
}

// action scopes a logger to the command before running fn.
func (me *app) action(name string, fn cli.ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		level := logrus.InfoLevel
		if cmd.Bool("verbose") {
			level = logrus.DebugLevel
		}
		ctx = logger.NewContext(ctx, logger.New(me.errOut, level))
		ctx = logger.NewContextWithFields(ctx, logrus.Fields{"command": name})
		return fn(ctx, cmd)
	}
}
