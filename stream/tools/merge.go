package main

import (
	"bufio"
	"context"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/navijation/njheap/stream"
	"github.com/navijation/njheap/util"
	"github.com/navijation/njheap/util/logger"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func (me *app) mergeFiles(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return errors.New("usage: merge [--unique] [--output path] src_path1 [src_path2 ...]")
	}

	srcPaths := cmd.Args().Slice()
	srcs := make([]iter.Seq2[string, error], 0, len(srcPaths))
	for _, path := range srcPaths {
		srcs = append(srcs, fileLines(path))
	}

	merged := stream.Merge(stream.MergeArgs[string]{
		Compare: strings.Compare,
		Unique:  cmd.Bool("unique"),
	}, srcs...)

	output := util.None[string]()
	if cmd.IsSet("output") {
		output = util.Some(cmd.String("output"))
	}

	write := func(w io.Writer) error {
		count, err := writeMerged(w, merged)
		if err != nil {
			return errors.Wrapf(err, "failed to merge %s", strings.Join(srcPaths, ", "))
		}
		logger.For(ctx).WithFields(logrus.Fields{
			"sources": len(srcPaths),
			"count":   count,
		}).Debug("merged files")
		return nil
	}

	if destPath, ok := output.Unpack(); ok {
		exists, err := util.FileExists(destPath)
		if err != nil {
			return errors.Wrapf(err, "failed to check %q", destPath)
		}
		if exists {
			if cmd.Bool("no-clobber") {
				return errors.Wrapf(os.ErrExist, "refusing to replace %q", destPath)
			}
			logger.For(ctx).WithField("path", destPath).Debug("replacing existing file")
		}
		return util.WriteFileAtomic(destPath, write)
	}
	return write(me.out)
}

func writeMerged(w io.Writer, merged iter.Seq2[string, error]) (count int, _ error) {
	for line, err := range merged {
		if err != nil {
			return count, err
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return count, errors.Wrap(err, "failed to write output")
		}
		count++
	}
	return count, nil
}

// fileLines opens path on first read and closes it when the sequence ends.
func fileLines(path string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		file, err := os.Open(path)
		if err != nil {
			yield("", errors.Wrapf(err, "failed to open %q", path))
			return
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			if !yield(scanner.Text(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", errors.Wrapf(err, "failed to read %q", path))
		}
	}
}
