// Package assets provides the page and index HTML templates and the
// built-in CSS styles. Assets can be loaded from embedded files or from
// a custom filesystem path.
package assets

// Template names consumed by the rendering pipeline.
const (
	PageTemplateName  = "page"
	IndexTemplateName = "index"
)

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a built-in CSS style by name using the embedded loader.
// The name should not include the .css extension or path components.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads an HTML template by name using the embedded loader.
// The name should not include the .html extension or path components.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}
