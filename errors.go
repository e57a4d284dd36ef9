package blogen

import "errors"

// Sentinel errors for library operations.
var (
	// Input validation errors.
	ErrNoCSS      = errors.New("no CSS source specified")
	ErrNoSource   = errors.New("no markdown source directory specified")
	ErrNoOutput   = errors.New("no output directory specified")
	ErrBadPolicy  = errors.New("invalid title policy")
	ErrBadWorkers = errors.New("invalid worker count")

	// Fatal run errors. These abort the whole run.
	ErrReadCSS    = errors.New("failed to read CSS source")
	ErrReadSource = errors.New("failed to read markdown source directory")
	ErrOutputDir  = errors.New("output directory is not usable")
	ErrWriteIndex = errors.New("failed to write index page")

	// Template errors are fatal: a broken template affects every page.
	ErrPageTemplate  = errors.New("page template failed")
	ErrIndexTemplate = errors.New("index template failed")

	// Per-document soft errors. These exclude one document from the run
	// and the index without aborting; they appear in Result.Skipped.
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrConvert      = errors.New("markdown conversion failed")
	ErrMissingTitle = errors.New("document has no level-1 heading")
	ErrWritePage    = errors.New("failed to write rendered page")
)
