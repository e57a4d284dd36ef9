package blogen_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	blogen "github.com/alnah/go-blogen"
)

// Example demonstrates generating a site from one markdown document.
func Example() {
	srcDir, err := os.MkdirTemp("", "blogen-src")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(srcDir)
	outDir, err := os.MkdirTemp("", "blogen-out")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(outDir)

	post := filepath.Join(srcDir, "hello.md")
	if err := os.WriteFile(post, []byte("# Hello\nWorld"), 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}

	gen, err := blogen.NewGenerator()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := gen.Generate(context.Background(), blogen.Input{
		CSS:       "body{color:red}",
		SourceDir: srcDir,
		OutputDir: outDir,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%d page(s): %s -> %s\n", len(result.Pages), result.Pages[0].Title, result.Pages[0].URL)
	// Output: 1 page(s): Hello -> ./hello.html
}

// ExampleNewGenerator_withTitlePolicy demonstrates skipping documents
// that have no level-1 heading instead of deriving a title from the
// file name.
func ExampleNewGenerator_withTitlePolicy() {
	srcDir, err := os.MkdirTemp("", "blogen-src")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(srcDir)
	outDir, err := os.MkdirTemp("", "blogen-out")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(outDir)

	untitled := filepath.Join(srcDir, "untitled.md")
	if err := os.WriteFile(untitled, []byte("no heading here"), 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}

	gen, err := blogen.NewGenerator(blogen.WithTitlePolicy(blogen.TitlePolicySkip))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := gen.Generate(context.Background(), blogen.Input{
		CSS:       "body{color:red}",
		SourceDir: srcDir,
		OutputDir: outDir,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%d rendered, %d skipped\n", len(result.Pages), len(result.Skipped))
	// Output: 0 rendered, 1 skipped
}

// ExampleNewGenerator_withOrderKey demonstrates replacing the ordering
// strategy, useful on filesystems without reliable creation times.
func ExampleNewGenerator_withOrderKey() {
	srcDir, err := os.MkdirTemp("", "blogen-src")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(srcDir)
	outDir, err := os.MkdirTemp("", "blogen-out")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(outDir)

	for _, name := range []string{"old.md", "new.md"} {
		path := filepath.Join(srcDir, name)
		if err := os.WriteFile(path, []byte("# "+name), 0o644); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	// Order by a fixed timestamp per file instead of birth time.
	stamps := map[string]time.Time{
		"old.md": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		"new.md": time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	gen, err := blogen.NewGenerator(blogen.WithOrderKey(func(path string) (time.Time, error) {
		return stamps[filepath.Base(path)], nil
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := gen.Generate(context.Background(), blogen.Input{
		CSS:       "body{color:red}",
		SourceDir: srcDir,
		OutputDir: outDir,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, p := range result.Pages {
		fmt.Println(p.Title)
	}
	// Output:
	// old.md
	// new.md
}

// ExampleTitleFromFilename demonstrates the fallback title synthesis.
func ExampleTitleFromFilename() {
	fmt.Println(blogen.TitleFromFilename("my-first-post.md"))
	fmt.Println(blogen.TitleFromFilename("release_notes.md"))
	// Output:
	// My First Post
	// Release Notes
}
