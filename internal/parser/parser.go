// Package parser extracts a replacement block from piped content.
package parser

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ExtractBlock returns the replacement block contained in content. If the
// content holds fenced code blocks, the body of the first one is used;
// otherwise the content itself is returned unchanged. A single trailing
// newline is stripped so the block can replace the located region, which
// never includes one.
func ExtractBlock(content string) (string, error) {
	source := []byte(content)
	block, found, err := firstFencedBlock(source)
	if err != nil {
		return "", err
	}
	if !found {
		block = content
	}
	return trimOneNewline(block), nil
}

// firstFencedBlock walks the markdown AST and returns the body of the
// first fenced code block, regardless of its language tag.
func firstFencedBlock(source []byte) (string, bool, error) {
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader(source))

	var body string
	var found bool

	walker := func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || found {
			return ast.WalkContinue, nil
		}

		fenced, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		var content bytes.Buffer
		lines := fenced.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			content.Write(line.Value(source))
		}
		body = content.String()
		found = true
		return ast.WalkStop, nil
	}

	if err := ast.Walk(root, walker); err != nil {
		return "", false, err
	}
	return body, found, nil
}

func trimOneNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		return s[:len(s)-1]
	}
	return s
}
