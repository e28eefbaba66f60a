package doctor

import (
	"fmt"
	"io/fs"

	"github.com/thoreinstein/pono/internal/config"
	"github.com/thoreinstein/pono/internal/errors"
	"github.com/thoreinstein/pono/internal/link"
	"github.com/thoreinstein/pono/pkg/fileutil"
)

// DocumentCheck validates that the link document exists and decodes.
// Checks added after it read the decoded entries through Entries.
type DocumentCheck struct {
	path string
	doc  *config.Document
}

var _ Check = (*DocumentCheck)(nil)

// NewDocumentCheck creates a check for the link document at path.
func NewDocumentCheck(path string) *DocumentCheck {
	return &DocumentCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *DocumentCheck) Name() string {
	return "link-document"
}

// Category returns the grouping for this check.
func (c *DocumentCheck) Category() string {
	return "config"
}

// Run reads and decodes the document.
func (c *DocumentCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.path},
	}

	data, err := fileutil.ReadFileWithLimit(c.path)
	if err != nil {
		result.Status = SeverityError
		if errors.Is(err, fs.ErrNotExist) {
			result.Message = "link document not found"
			result.FixHint = "Run: pono init"
			return result
		}
		result.Message = fmt.Sprintf("cannot read link document: %v", err)
		return result
	}

	doc, err := config.ParseDocument(c.path, data)
	if err != nil {
		result.Status = SeverityError
		result.Message = documentProblem(err)
		result.FixHint = "Run: pono edit"
		return result
	}

	c.doc = doc
	result.Details["entries"] = len(doc.Names())
	if len(doc.Names()) == 0 {
		result.Status = SeverityWarning
		result.Message = "link document declares no entries"
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("%d entries declared", len(doc.Names()))
	return result
}

// Entries returns the decoded entries. ok is false until Run has
// succeeded.
func (c *DocumentCheck) Entries() (entries []link.Entry, ok bool) {
	if c.doc == nil {
		return nil, false
	}
	return c.doc.All(), true
}

// documentProblem strips the document path already shown in Details.
func documentProblem(err error) string {
	var le *link.Error
	if errors.As(err, &le) && le.Err != nil {
		return le.Err.Error()
	}
	return err.Error()
}

// entrySource is implemented by DocumentCheck.
type entrySource interface {
	Entries() ([]link.Entry, bool)
}

// skipped is the result of a check whose input is unavailable.
func skipped(c Check) *CheckResult {
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityInfo,
		Message:  "skipped: link document not loaded",
	}
}
