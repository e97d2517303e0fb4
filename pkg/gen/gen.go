// Package gen renders the SplitKxL function family.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"text/template"

	"github.com/emirpasic/gods/sets/treeset"
)

var ErrGenerate = errors.New("Generate")

type Config struct {
	// Package is the package clause of the generated file.
	Package string
	// Sizes are the source array lengths N to generate splits for.
	// Duplicates are ignored; every (K, N-K) pair of each N is emitted.
	Sizes []int
}

type Generator struct {
	pkg   string
	sizes *treeset.Set
}

func New(c *Config) (*Generator, error) {
	if c.Package == "" {
		return nil, fmt.Errorf("%w: no package name", ErrGenerate)
	}
	sizes := treeset.NewWithIntComparator()
	for _, n := range c.Sizes {
		if n < 0 {
			return nil, fmt.Errorf("%w: negative size %d", ErrGenerate, n)
		}
		sizes.Add(n)
	}
	if sizes.Empty() {
		return nil, fmt.Errorf("%w: no sizes", ErrGenerate)
	}
	return &Generator{
		pkg:   c.Package,
		sizes: sizes,
	}, nil
}

var (
	headerTemplate = template.Must(template.New("header").Parse(`// Code generated by splitgen. DO NOT EDIT.

package {{.}}
`))
	funcTemplate = template.Must(template.New("func").Parse(`
// Split{{.K}}x{{.L}} splits the {{.N}} elements of src into the first {{.K}} and the remaining {{.L}}, zeroing src.
func Split{{.K}}x{{.L}}[T any](src *[{{.N}}]T) (left [{{.K}}]T, right [{{.L}}]T) {
	moveSplit(src[:], left[:], right[:])
	return
}
`))
)

type pair struct {
	N, K, L int
}

// Generate writes the gofmt-formatted source of all split functions to w.
func (g *Generator) Generate(w io.Writer) error {
	var buf bytes.Buffer
	if err := headerTemplate.Execute(&buf, g.pkg); err != nil {
		return fmt.Errorf("%w: render header", err)
	}
	for _, v := range g.sizes.Values() {
		n := v.(int)
		for k := 0; k <= n; k++ {
			if err := funcTemplate.Execute(&buf, pair{N: n, K: k, L: n - k}); err != nil {
				return fmt.Errorf("%w: render size %d", err, n)
			}
		}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("%w: format generated source", err)
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("%w: write generated source", err)
	}
	return nil
}
