// Package pipeline implements the Markdown-to-HTML rendering stages:
//   - Markdown to HTML fragment conversion via Goldmark
//   - title extraction from the first level-1 heading of the parsed AST
//   - page assembly (style asset + fragment into the page template)
//   - index assembly (ordered page links into the index template)
//
// Discovery and ordering of source documents is handled separately by
// the collector package; the root blogen package drives the stages and
// owns the failure policy (soft per-document errors, fatal template
// errors).
package pipeline
