// Package collector discovers markdown source documents and orders them
// by creation time.
package collector

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/djherbis/times"
)

// MarkdownExt is the source file extension the collector matches.
const MarkdownExt = ".md"

// Sentinel errors for discovery.
var (
	// ErrReadDir indicates the source directory itself could not be read.
	// This is fatal to the run.
	ErrReadDir = errors.New("failed to read source directory")
)

// SourceDoc represents one discovered markdown file. The creation
// timestamp is assigned once, at discovery, and never recomputed.
type SourceDoc struct {
	Name    string    // base name, no directory
	Path    string    // full source path
	Created time.Time // ordering key, UTC
}

// OrderKey produces the ordering timestamp for one source file.
type OrderKey func(path string) (time.Time, error)

// BirthTime returns the file's creation (birth) time where the platform
// and filesystem report one, falling back to the modification time.
// Timestamps are normalized to UTC.
func BirthTime(path string) (time.Time, error) {
	ts, err := times.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	if ts.HasBirthTime() {
		return ts.BirthTime().UTC(), nil
	}
	return ts.ModTime().UTC(), nil
}

// Collector enumerates markdown files in a directory.
type Collector struct {
	orderKey OrderKey
	logger   *slog.Logger
}

// New creates a Collector. A nil orderKey selects BirthTime; a nil
// logger selects slog.Default().
func New(orderKey OrderKey, logger *slog.Logger) *Collector {
	if orderKey == nil {
		orderKey = BirthTime
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{orderKey: orderKey, logger: logger}
}

// Discover returns the markdown files directly inside dir (non-recursive),
// sorted ascending by creation timestamp with a byte-wise file-name
// tie-break for determinism.
//
// A file whose metadata cannot be read is logged and dropped from the
// run; a directory that cannot be read at all returns ErrReadDir.
func (c *Collector) Discover(dir string) ([]SourceDoc, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadDir, dir, err)
	}

	var docs []SourceDoc
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != MarkdownExt {
			continue
		}

		path := filepath.Join(dir, name)
		created, err := c.orderKey(path)
		if err != nil {
			c.logger.Warn("skipping markdown file: cannot read metadata",
				"path", path, "error", err)
			continue
		}

		docs = append(docs, SourceDoc{
			Name:    name,
			Path:    path,
			Created: created,
		})
	}

	sort.Slice(docs, func(i, j int) bool {
		if docs[i].Created.Equal(docs[j].Created) {
			return docs[i].Name < docs[j].Name
		}
		return docs[i].Created.Before(docs[j].Created)
	})

	return docs, nil
}
