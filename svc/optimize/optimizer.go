package optimize

import (
	"context"
	"regexp"
	"strings"
	"sync"
)

// Optimizer rewrites an SVG document into a smaller equivalent form.
type Optimizer interface {
	Optimize(ctx context.Context, doc string) (string, error)
}

// OptimizerFunc adapts a plain function to the Optimizer interface.
type OptimizerFunc func(ctx context.Context, doc string) (string, error)

func (f OptimizerFunc) Optimize(ctx context.Context, doc string) (string, error) {
	return f(ctx, doc)
}

// LazyOptimizer defers construction of the underlying optimizer until the
// first document arrives. Construction runs at most once; if it fails the
// error is returned to every caller and never retried.
type LazyOptimizer struct {
	init func() (Optimizer, error)
	once sync.Once

	opt Optimizer
	err error
}

// NewLazyOptimizer panics if init is nil.
func NewLazyOptimizer(init func() (Optimizer, error)) *LazyOptimizer {
	if init == nil {
		panic("optimize: lazy optimizer requires an init function")
	}
	return &LazyOptimizer{init: init}
}

func (l *LazyOptimizer) Optimize(ctx context.Context, doc string) (string, error) {
	l.once.Do(func() {
		l.opt, l.err = l.init()
	})
	if l.err != nil {
		return "", l.err
	}
	return l.opt.Optimize(ctx, doc)
}

var (
	commentPattern   = regexp.MustCompile(`(?s)<!--.*?-->`)
	interTagSpace    = regexp.MustCompile(`>\s+<`)
	redundantSpace   = regexp.MustCompile(`\s{2,}`)
	spaceBeforeClose = regexp.MustCompile(`\s+(/?)>`)
)

// Minifier is the built-in optimizer. It strips comments and collapses
// whitespace without reinterpreting the document structure.
type Minifier struct{}

func NewMinifier() *Minifier { return &Minifier{} }

func (m *Minifier) Optimize(ctx context.Context, doc string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	out := commentPattern.ReplaceAllString(doc, "")
	out = interTagSpace.ReplaceAllString(out, "><")
	out = redundantSpace.ReplaceAllString(out, " ")
	out = spaceBeforeClose.ReplaceAllString(out, "$1>")
	return strings.TrimSpace(out), nil
}
