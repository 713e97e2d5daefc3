// Package yamlblock adds directive blocks to goldmark. A block starts with a
// line ":: name ---", carries YAML until a closing "---" line, and is
// rendered by the Directive registered for name. A bare ":: name" line uses
// the directive's defaults.
package yamlblock

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Directive renders one kind of block. New returns the value the YAML body
// is decoded into.
type Directive interface {
	Name() string
	New(pc parser.Context) interface{}
	Render(w util.BufWriter, value interface{}) error
}

type extension struct {
	directives map[string]Directive
}

func New(directives ...Directive) goldmark.Extender {
	byName := make(map[string]Directive, len(directives))
	for _, d := range directives {
		byName[d.Name()] = d
	}

	return &extension{directives: byName}
}

func (e *extension) lookup(name string) (Directive, bool) {
	d, ok := e.directives[name]
	return d, ok
}

func (e *extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(
			util.Prioritized(&blockParser{ext: e}, 999),
		),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(&blockRenderer{}, 500),
		),
	)
}

type blockRenderer struct{}

func (r *blockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(blockKind, r.render)
}

func (r *blockRenderer) render(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	node := n.(*blockNode)
	if node.err != nil {
		return ast.WalkStop, node.err
	}

	if err := node.directive.Render(w, node.value); err != nil {
		return ast.WalkStop, err
	}

	return ast.WalkSkipChildren, nil
}
