package assets_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-blogen/internal/assets"
)

// ---------------------------------------------------------------------------
// TestValidateAssetName - Asset name validation
// ---------------------------------------------------------------------------

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		assetName string
		wantErr   error
	}{
		{name: "valid name", assetName: "retro", wantErr: nil},
		{name: "hyphenated name", assetName: "my-style", wantErr: nil},
		{name: "empty name", assetName: "", wantErr: assets.ErrInvalidAssetName},
		{name: "path separator", assetName: "a/b", wantErr: assets.ErrInvalidAssetName},
		{name: "backslash", assetName: `a\b`, wantErr: assets.ErrInvalidAssetName},
		{name: "traversal", assetName: "../etc", wantErr: assets.ErrInvalidAssetName},
		{name: "extension", assetName: "retro.css", wantErr: assets.ErrInvalidAssetName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := assets.ValidateAssetName(tt.assetName)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) = %v, want %v", tt.assetName, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEmbeddedLoader - Embedded templates and styles
// ---------------------------------------------------------------------------

func TestEmbeddedLoaderLoadTemplate(t *testing.T) {
	t.Parallel()

	loader := assets.NewEmbeddedLoader()

	t.Run("page template", func(t *testing.T) {
		t.Parallel()

		content, err := loader.LoadTemplate(assets.PageTemplateName)
		if err != nil {
			t.Fatalf("LoadTemplate(page) = %v, want nil", err)
		}
		if !strings.Contains(content, "{{ .Style }}") {
			t.Error("page template missing {{ .Style }} placeholder")
		}
		if !strings.Contains(content, "{{ .Body }}") {
			t.Error("page template missing {{ .Body }} placeholder")
		}
	})

	t.Run("index template", func(t *testing.T) {
		t.Parallel()

		content, err := loader.LoadTemplate(assets.IndexTemplateName)
		if err != nil {
			t.Fatalf("LoadTemplate(index) = %v, want nil", err)
		}
		if !strings.Contains(content, "range .Pages") {
			t.Error("index template missing range over .Pages")
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplate("nope")
		if !errors.Is(err, assets.ErrTemplateNotFound) {
			t.Errorf("LoadTemplate(nope) = %v, want ErrTemplateNotFound", err)
		}
	})
}

func TestEmbeddedLoaderLoadStyle(t *testing.T) {
	t.Parallel()

	loader := assets.NewEmbeddedLoader()

	for _, style := range []string{"retro", "plain"} {
		style := style
		t.Run(style, func(t *testing.T) {
			t.Parallel()

			content, err := loader.LoadStyle(style)
			if err != nil {
				t.Fatalf("LoadStyle(%q) = %v, want nil", style, err)
			}
			if !strings.Contains(content, "body") {
				t.Errorf("style %q has no body rule", style)
			}
		})
	}

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadStyle("nope")
		if !errors.Is(err, assets.ErrStyleNotFound) {
			t.Errorf("LoadStyle(nope) = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadStyle("../styles/retro")
		if !errors.Is(err, assets.ErrInvalidAssetName) {
			t.Errorf("LoadStyle(traversal) = %v, want ErrInvalidAssetName", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestFilesystemLoader - Filesystem overrides
// ---------------------------------------------------------------------------

func TestFilesystemLoader(t *testing.T) {
	t.Parallel()

	newAssetDir := func(t *testing.T) string {
		t.Helper()
		base := t.TempDir()
		for _, sub := range []string{"styles", "templates"} {
			if err := os.MkdirAll(filepath.Join(base, sub), 0o750); err != nil {
				t.Fatal(err)
			}
		}
		files := map[string]string{
			filepath.Join(base, "styles", "custom.css"):    "body { color: teal; }",
			filepath.Join(base, "templates", "page.html"):  "<style>{{ .Style }}</style>{{ .Body }}",
			filepath.Join(base, "templates", "index.html"): "{{ range .Pages }}<a href=\"{{ .URL }}\">{{ .Title }}</a>{{ end }}",
		}
		for path, content := range files {
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
		}
		return base
	}

	t.Run("loads style and templates", func(t *testing.T) {
		t.Parallel()

		loader, err := assets.NewFilesystemLoader(newAssetDir(t))
		if err != nil {
			t.Fatalf("NewFilesystemLoader() = %v, want nil", err)
		}

		css, err := loader.LoadStyle("custom")
		if err != nil {
			t.Fatalf("LoadStyle(custom) = %v, want nil", err)
		}
		if !strings.Contains(css, "teal") {
			t.Errorf("style content = %q, want teal rule", css)
		}

		if _, err := loader.LoadTemplate("page"); err != nil {
			t.Errorf("LoadTemplate(page) = %v, want nil", err)
		}
	})

	t.Run("missing style", func(t *testing.T) {
		t.Parallel()

		loader, err := assets.NewFilesystemLoader(newAssetDir(t))
		if err != nil {
			t.Fatal(err)
		}

		_, err = loader.LoadStyle("nope")
		if !errors.Is(err, assets.ErrStyleNotFound) {
			t.Errorf("LoadStyle(nope) = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("invalid base path", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			path string
		}{
			{name: "empty", path: ""},
			{name: "missing", path: filepath.Join(t.TempDir(), "nope")},
		}

		for _, tt := range tests {
			if _, err := assets.NewFilesystemLoader(tt.path); !errors.Is(err, assets.ErrInvalidBasePath) {
				t.Errorf("NewFilesystemLoader(%s) = %v, want ErrInvalidBasePath", tt.name, err)
			}
		}
	})
}

// ---------------------------------------------------------------------------
// TestPackageLevelLoaders - Default embedded loader
// ---------------------------------------------------------------------------

func TestPackageLevelLoaders(t *testing.T) {
	t.Parallel()

	if _, err := assets.LoadTemplate(assets.PageTemplateName); err != nil {
		t.Errorf("LoadTemplate(page) = %v, want nil", err)
	}
	if _, err := assets.LoadStyle("retro"); err != nil {
		t.Errorf("LoadStyle(retro) = %v, want nil", err)
	}
}
