package yamlblock

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v2"
)

var blockKind = ast.NewNodeKind("YAMLDirectiveBlock")

type blockNode struct {
	ast.BaseBlock
	directive Directive
	value     interface{}
	err       error
	bare      bool
}

func (n *blockNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"directive": n.directive.Name()}, nil)
}

func (n *blockNode) Kind() ast.NodeKind {
	return blockKind
}

type blockParser struct {
	ext *extension
}

func (b *blockParser) Trigger() []byte {
	return []byte{':'}
}

func (b *blockParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()
	fields := strings.Fields(string(line))

	if len(fields) < 2 || len(fields) > 3 || fields[0] != "::" {
		return nil, parser.NoChildren
	}
	if len(fields) == 3 && fields[2] != "---" {
		return nil, parser.NoChildren
	}

	directive, ok := b.ext.lookup(strings.ToLower(fields[1]))
	if !ok {
		return nil, parser.NoChildren
	}

	reader.Advance(segment.Len() - 1)

	return &blockNode{
		directive: directive,
		bare:      len(fields) == 2,
	}, parser.NoChildren
}

func (b *blockParser) Continue(n ast.Node, reader text.Reader, pc parser.Context) parser.State {
	if n.(*blockNode).bare {
		return parser.Close
	}

	line, segment := reader.PeekLine()
	if strings.TrimSpace(string(line)) == "---" {
		reader.Advance(segment.Len())
		return parser.Close
	}

	n.Lines().Append(segment)

	return parser.Continue | parser.NoChildren
}

func (b *blockParser) Close(n ast.Node, reader text.Reader, pc parser.Context) {
	node := n.(*blockNode)

	var buf bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		buf.Write(segment.Value(reader.Source()))
	}

	node.value = node.directive.New(pc)
	if buf.Len() == 0 {
		return
	}

	if err := yaml.UnmarshalStrict(buf.Bytes(), node.value); err != nil {
		if path, ok := SourcePath(pc); ok {
			node.err = fmt.Errorf("%s: directive %q: %w", path, node.directive.Name(), err)
		} else {
			node.err = fmt.Errorf("directive %q: %w", node.directive.Name(), err)
		}
	}
}

func (b *blockParser) CanInterruptParagraph() bool {
	return false
}

func (b *blockParser) CanAcceptIndentedLine() bool {
	return false
}
