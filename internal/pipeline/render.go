package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
)

// Sentinel errors for template rendering.
var (
	ErrPageRender  = errors.New("page template rendering failed")
	ErrIndexRender = errors.New("index template rendering failed")
)

// Link is one index entry: a page title and its URL.
type Link struct {
	Title string
	URL   string
}

// pageData is the substitution payload for the page template. Style and
// Body are typed so the template engine substitutes them verbatim; the
// fragment is already escaped by goldmark and the style asset belongs
// inside the <style> block as-is.
type pageData struct {
	Style template.CSS
	Body  template.HTML
}

// indexData is the substitution payload for the index template.
type indexData struct {
	Pages []Link
}

// PageRenderer assembles a complete page document from a style asset and
// an HTML fragment.
type PageRenderer struct {
	tmpl *template.Template
}

// NewPageRenderer parses the page template content.
// Returns an error if the template cannot be parsed.
func NewPageRenderer(tmplContent string) (*PageRenderer, error) {
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing: %v", ErrPageRender, err)
	}
	return &PageRenderer{tmpl: tmpl}, nil
}

// Render substitutes the style asset and fragment into the page template.
func (r *PageRenderer) Render(style, fragment string) (string, error) {
	var buf bytes.Buffer
	data := pageData{
		Style: template.CSS(style),     // #nosec G203 -- verbatim style asset by contract
		Body:  template.HTML(fragment), // #nosec G203 -- goldmark output, raw HTML escaped
	}
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}

// IndexRenderer assembles the index document from ordered page links.
type IndexRenderer struct {
	tmpl *template.Template
}

// NewIndexRenderer parses the index template content.
// Returns an error if the template cannot be parsed.
func NewIndexRenderer(tmplContent string) (*IndexRenderer, error) {
	tmpl, err := template.New("index").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing: %v", ErrIndexRender, err)
	}
	return &IndexRenderer{tmpl: tmpl}, nil
}

// Render substitutes the links into the index template, in the order
// given. An empty slice renders a valid index with zero links.
func (r *IndexRenderer) Render(links []Link) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, indexData{Pages: links}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrIndexRender, err)
	}
	return buf.String(), nil
}
