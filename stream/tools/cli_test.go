package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/navijation/njheap/stream"
	testing_util "github.com/navijation/njheap/util/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, _ error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newApp(strings.NewReader(stdin), &out, &errOut)
	err := cmd.Run(context.Background(), append([]string{"heaptool"}, args...))
	return out.String(), errOut.String(), err
}

func lines(values ...string) string {
	return strings.Join(values, "\n") + "\n"
}

func TestSort(t *testing.T) {
	t.Parallel()

	t.Run("strings from args", func(t *testing.T) {
		out, _, err := run(t, "", "sort", "pear", "apple", "fig")
		require.NoError(t, err)
		assert.Equal(t, lines("apple", "fig", "pear"), out)
	})

	t.Run("numbers descending", func(t *testing.T) {
		out, _, err := run(t, "", "sort", "--numeric", "--max", "4", "2", "9", "11")
		require.NoError(t, err)
		assert.Equal(t, lines("11", "9", "4", "2"), out)
	})

	t.Run("numbers from stdin", func(t *testing.T) {
		out, _, err := run(t, "4\n2\n\n 9 \n11\n0.5\n", "sort", "--numeric")
		require.NoError(t, err)
		assert.Equal(t, lines("0.5", "2", "4", "9", "11"), out)
	})

	t.Run("empty input", func(t *testing.T) {
		out, _, err := run(t, "", "sort")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("invalid number", func(t *testing.T) {
		_, _, err := run(t, "", "sort", "--numeric", "4", "four")
		assert.ErrorContains(t, err, `invalid number "four"`)
	})

	t.Run("rejects NaN", func(t *testing.T) {
		_, _, err := run(t, "", "sort", "--numeric", "3", "NaN", "1")
		assert.ErrorContains(t, err, `invalid number "NaN"`)
	})

	t.Run("verbose", func(t *testing.T) {
		_, errOut, err := run(t, "", "--verbose", "sort", "b", "a")
		require.NoError(t, err)
		assert.Contains(t, errOut, "sorted values")
		assert.Contains(t, errOut, "command=sort")
		assert.Contains(t, errOut, "count=2")
	})

	t.Run("quiet by default", func(t *testing.T) {
		_, errOut, err := run(t, "", "sort", "b", "a")
		require.NoError(t, err)
		assert.Empty(t, errOut)
	})
}

func TestTopK(t *testing.T) {
	t.Parallel()

	t.Run("numbers", func(t *testing.T) {
		out, _, err := run(t, "", "topk", "--numeric", "--k", "2", "4", "2", "9", "11")
		require.NoError(t, err)
		assert.Equal(t, lines("11", "9"), out)
	})

	t.Run("strings compare lexically", func(t *testing.T) {
		out, _, err := run(t, "", "topk", "--k", "2", "4", "2", "9", "11")
		require.NoError(t, err)
		assert.Equal(t, lines("9", "4"), out)
	})

	t.Run("k larger than input", func(t *testing.T) {
		out, _, err := run(t, "b\na\n", "topk")
		require.NoError(t, err)
		assert.Equal(t, lines("b", "a"), out)
	})

	t.Run("zero k", func(t *testing.T) {
		_, _, err := run(t, "", "topk", "--k", "0", "1")
		assert.ErrorContains(t, err, "k must be positive")
	})

	t.Run("k beyond int range", func(t *testing.T) {
		out, _, err := run(t, "", "topk", "--k", "18446744073709551615", "3", "1", "2")
		assert.ErrorContains(t, err, "k must be at most")
		assert.Empty(t, out)
	})

	t.Run("rejects NaN", func(t *testing.T) {
		_, _, err := run(t, "", "topk", "--numeric", "--k", "2", "nan", "1")
		assert.ErrorContains(t, err, `invalid number "nan"`)
	})
}

func TestMerge(t *testing.T) {
	t.Parallel()

	dir, cleanup := testing_util.MkdirTemp(t, "TestMerge")
	defer cleanup()

	src1 := filepath.Join(dir, "src1.txt")
	src2 := filepath.Join(dir, "src2.txt")
	unsorted := filepath.Join(dir, "unsorted.txt")
	testing_util.WriteLines(t, src1, "apple", "cherry", "fig")
	testing_util.WriteLines(t, src2, "banana", "cherry", "grape")
	testing_util.WriteLines(t, unsorted, "pear", "apple")

	t.Run("stdout", func(t *testing.T) {
		out, _, err := run(t, "", "merge", src1, src2)
		require.NoError(t, err)
		assert.Equal(t, lines("apple", "banana", "cherry", "cherry", "fig", "grape"), out)
	})

	t.Run("unique", func(t *testing.T) {
		out, _, err := run(t, "", "merge", "--unique", src1, src2)
		require.NoError(t, err)
		assert.Equal(t, lines("apple", "banana", "cherry", "fig", "grape"), out)
	})

	t.Run("output file", func(t *testing.T) {
		dest := filepath.Join(dir, "merged.txt")
		out, _, err := run(t, "", "merge", "--output", dest, src1, src2)
		require.NoError(t, err)
		assert.Empty(t, out)

		content, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, lines("apple", "banana", "cherry", "cherry", "fig", "grape"), string(content))
	})

	t.Run("replaces existing output", func(t *testing.T) {
		dest := filepath.Join(dir, "existing.txt")
		testing_util.WriteLines(t, dest, "stale")

		_, errOut, err := run(t, "", "--verbose", "merge", "--output", dest, src1)
		require.NoError(t, err)
		assert.Contains(t, errOut, "replacing existing file")

		content, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, lines("apple", "cherry", "fig"), string(content))
	})

	t.Run("no clobber keeps existing output", func(t *testing.T) {
		dest := filepath.Join(dir, "kept.txt")
		testing_util.WriteLines(t, dest, "kept")

		_, _, err := run(t, "", "merge", "--no-clobber", "--output", dest, src1, src2)
		assert.ErrorIs(t, err, os.ErrExist)

		content, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, lines("kept"), string(content))
	})

	t.Run("unsorted source leaves no output file", func(t *testing.T) {
		dest := filepath.Join(dir, "unsorted_merged.txt")
		_, _, err := run(t, "", "merge", "-o", dest, src1, unsorted)
		assert.ErrorIs(t, err, stream.ErrUnsortedSource)
		assert.NoFileExists(t, dest)
	})

	t.Run("missing source", func(t *testing.T) {
		_, _, err := run(t, "", "merge", src1, filepath.Join(dir, "missing.txt"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("no sources", func(t *testing.T) {
		_, _, err := run(t, "", "merge")
		assert.ErrorContains(t, err, "usage: merge")
	})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasSuffix(entry.Name(), ".tmp"), "leftover temp file %s", entry.Name())
	}
}
