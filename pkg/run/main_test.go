package run_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"splitowned/pkg/config"
	"splitowned/pkg/run"

	"github.com/stretchr/testify/assert"
)

func TestMain(t *testing.T) {
	setup := func(c *config.Config) *bytes.Buffer {
		var out bytes.Buffer
		c.Writer = &out
		c.Debug = true
		c.SetupLogger(os.Stderr)
		return &out
	}

	t.Run("defaults to stdout", func(t *testing.T) {
		c := config.NewConfig(nil, nil, "bash", "", "split", nil)
		out := setup(c)
		if !assert.Nil(t, c.Init()) {
			return
		}
		assert.Nil(t, run.Main(c))
		got := out.String()
		assert.Contains(t, got, "// Code generated by splitgen. DO NOT EDIT.")
		assert.Contains(t, got, "func Split0x0[T any](src *[0]T)")
		assert.Contains(t, got, "func Split8x8[T any](src *[16]T)")
		assert.Contains(t, got, "func Split16x0[T any](src *[16]T)")
	})

	t.Run("single size to file", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "split_gen.go")
		c := config.NewConfig(nil, nil, "bash", output, "split", []int{7})
		out := setup(c)
		if !assert.Nil(t, c.Init()) {
			return
		}
		assert.Nil(t, run.Main(c))
		assert.Empty(t, out.String())

		b, err := os.ReadFile(output)
		if !assert.Nil(t, err) {
			return
		}
		assert.Contains(t, string(b), "func Split3x4[T any](src *[7]T) (left [3]T, right [4]T) {")
		assert.NotContains(t, string(b), "*[16]T")
	})

	t.Run("preprocess keeps output intact", func(t *testing.T) {
		c := config.NewConfig(nil, nil, "bash", "", "split", []int{7})
		want := setup(c)
		if !assert.Nil(t, c.Init()) {
			return
		}
		assert.Nil(t, run.Main(c))

		c2 := config.NewConfig(nil, []string{"cat"}, "bash", "", "split", []int{7})
		got := setup(c2)
		if !assert.Nil(t, c2.Init()) {
			return
		}
		assert.Nil(t, run.Main(c2))
		assert.Equal(t, want.String(), got.String())
	})

	t.Run("preprocess pipeline", func(t *testing.T) {
		c := config.NewConfig(nil, []string{
			`grep "^func "`,
			`wc -l`,
		}, "bash", "", "split", []int{7})
		out := setup(c)
		if !assert.Nil(t, c.Init()) {
			return
		}
		assert.Nil(t, run.Main(c))
		assert.Equal(t, "8", string(bytes.TrimSpace(out.Bytes())))
	})

	t.Run("preprocess fail", func(t *testing.T) {
		c := config.NewConfig(nil, []string{"exit 1"}, "bash", "", "split", []int{7})
		_ = setup(c)
		if !assert.Nil(t, c.Init()) {
			return
		}
		err := run.Main(c)
		assert.ErrorContains(t, err, "run preprocess")
	})

	t.Run("init rejects negative size", func(t *testing.T) {
		c := config.NewConfig(nil, nil, "bash", "", "split", []int{-1})
		assert.ErrorContains(t, c.Init(), "negative size")
	})

	t.Run("init rejects empty package", func(t *testing.T) {
		c := config.NewConfig(nil, nil, "bash", "", "", []int{7})
		assert.ErrorContains(t, c.Init(), "no package name")
	})
}
