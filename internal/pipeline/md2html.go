package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	stdhtml "html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// Fragment is the result of converting one markdown document.
type Fragment struct {
	HTML  string // HTML snippet with no surrounding document structure
	Title string // text of the first level-1 heading; empty if none
}

// DocumentConverter abstracts Markdown to HTML fragment conversion.
type DocumentConverter interface {
	Convert(ctx context.Context, source string) (*Fragment, error)
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions,
// footnotes, smart punctuation, and syntax highlighting.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,         // Tables, strikethrough, autolinks, task lists
			extension.Footnote,    // [^1] footnotes
			extension.Typographer, // Typographic quote/dash substitution
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes instead of inline styles
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
			// Note: WithUnsafe() intentionally NOT used; raw HTML in the
			// source renders escaped, so fragments are safe to substitute
			// into the page template verbatim.
		),
	)
	return &GoldmarkConverter{md: md}
}

// Convert parses markdown once, extracts the title from the first
// level-1 heading of the AST, and renders the same AST to an HTML
// fragment. Malformed markdown never hard-fails: goldmark renders
// unrecognized constructs as literal text.
//
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (c *GoldmarkConverter) Convert(ctx context.Context, source string) (*Fragment, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		frag *Fragment
		err  error
	}

	done := make(chan result, 1)

	go func() {
		src := []byte(source)
		root := c.md.Parser().Parse(text.NewReader(src))
		title := firstHeadingText(root, src)

		var buf bytes.Buffer
		if err := c.md.Renderer().Render(&buf, src, root); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{frag: &Fragment{HTML: buf.String(), Title: title}}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.frag, r.err
	}
}

// firstHeadingText returns the plain text of the first level-1 heading
// in document order, or "" if the document has none.
func firstHeadingText(root ast.Node, src []byte) string {
	var title string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 1 {
			return ast.WalkContinue, nil
		}
		// Typographer substitutions are stored as HTML entities; unescape
		// so titles carry no markup artifacts.
		title = strings.TrimSpace(stdhtml.UnescapeString(nodeText(heading, src)))
		return ast.WalkStop, nil
	})
	return title
}

// nodeText collects the text content of a node's subtree, dropping any
// inline markup so extracted titles carry no markup artifacts.
func nodeText(node ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
		case *ast.String:
			// Typographer substitutions land here
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}
