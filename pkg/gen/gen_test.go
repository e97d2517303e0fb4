package gen_test

import (
	"bytes"
	"go/format"
	"strings"
	"testing"

	"splitowned/pkg/gen"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		title string
		c     *gen.Config
	}{
		{
			title: "no package",
			c:     &gen.Config{Sizes: []int{7}},
		},
		{
			title: "no sizes",
			c:     &gen.Config{Package: "split"},
		},
		{
			title: "negative size",
			c:     &gen.Config{Package: "split", Sizes: []int{7, -1}},
		},
	} {
		t.Run(tc.title, func(t *testing.T) {
			_, err := gen.New(tc.c)
			assert.ErrorIs(t, err, gen.ErrGenerate)
		})
	}
}

func TestGenerate(t *testing.T) {
	generate := func(t *testing.T, sizes ...int) string {
		t.Helper()
		g, err := gen.New(&gen.Config{
			Package: "split",
			Sizes:   sizes,
		})
		if !assert.Nil(t, err) {
			t.FailNow()
		}
		var buf bytes.Buffer
		if !assert.Nil(t, g.Generate(&buf)) {
			t.FailNow()
		}
		return buf.String()
	}

	t.Run("single size", func(t *testing.T) {
		got := generate(t, 7)
		assert.True(t, strings.HasPrefix(got, "// Code generated by splitgen. DO NOT EDIT."))
		assert.Contains(t, got, "package split")
		assert.Contains(t, got, "func Split0x7[T any](src *[7]T) (left [0]T, right [7]T) {")
		assert.Contains(t, got, "func Split3x4[T any](src *[7]T) (left [3]T, right [4]T) {")
		assert.Contains(t, got, "func Split7x0[T any](src *[7]T) (left [7]T, right [0]T) {")
		assert.Equal(t, 8, strings.Count(got, "\nfunc Split"), "one function per (K, L) pair")
	})

	t.Run("duplicate sizes collapse", func(t *testing.T) {
		assert.Equal(t, generate(t, 7), generate(t, 7, 7, 7))
	})

	t.Run("sizes are ordered", func(t *testing.T) {
		got := generate(t, 7, 2)
		assert.Less(t,
			strings.Index(got, "func Split0x2"),
			strings.Index(got, "func Split0x7"),
		)
	})

	t.Run("gofmt clean", func(t *testing.T) {
		got := generate(t, 0, 1, 7)
		formatted, err := format.Source([]byte(got))
		assert.Nil(t, err)
		assert.Equal(t, got, string(formatted))
	})
}
