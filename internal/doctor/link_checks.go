package doctor

import (
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/thoreinstein/pono/internal/errors"
	"github.com/thoreinstein/pono/internal/fsys"
	"github.com/thoreinstein/pono/internal/link"
	"github.com/thoreinstein/pono/internal/paths"
)

// SourceCheck verifies that every declared source exists.
type SourceCheck struct {
	entries entrySource
	fs      fsys.FS
	resolve link.Resolver
}

var _ Check = (*SourceCheck)(nil)

// NewSourceCheck creates a check over the entries decoded by doc. Nil
// fs and resolve use the real filesystem and paths.Resolve.
func NewSourceCheck(doc *DocumentCheck, f fsys.FS, resolve link.Resolver) *SourceCheck {
	if f == nil {
		f = fsys.OS()
	}
	if resolve == nil {
		resolve = paths.Resolve
	}
	return &SourceCheck{entries: doc, fs: f, resolve: resolve}
}

// Name returns the unique identifier for this check.
func (c *SourceCheck) Name() string {
	return "sources"
}

// Category returns the grouping for this check.
func (c *SourceCheck) Category() string {
	return "links"
}

// Run stats each resolved source.
func (c *SourceCheck) Run() *CheckResult {
	entries, ok := c.entries.Entries()
	if !ok {
		return skipped(c)
	}

	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Details:  make(map[string]any),
	}

	var missing, broken []string
	for _, e := range entries {
		source, err := c.resolve(e.Source)
		if err != nil {
			broken = append(broken, fmt.Sprintf("%s: %v", e.Name, err))
			continue
		}
		if _, err := c.fs.Stat(source); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				missing = append(missing, e.Name)
				continue
			}
			broken = append(broken, fmt.Sprintf("%s: %v", e.Name, err))
		}
	}

	result.Details["checked"] = len(entries)
	if len(missing) > 0 {
		result.Details["missing"] = missing
	}
	if len(broken) > 0 {
		result.Details["errors"] = broken
	}

	switch {
	case len(missing)+len(broken) > 0:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("%d source(s) unusable: %s", len(missing)+len(broken), strings.Join(slices.Concat(missing, names(broken)), ", "))
		result.FixHint = "fix the source paths in the link document; enable and disable refuse to run until they exist"
	default:
		result.Message = fmt.Sprintf("all %d sources exist", len(entries))
	}
	return result
}

// TargetCheck reports the link state of every entry.
type TargetCheck struct {
	entries   entrySource
	inspector *link.Inspector
}

var _ Check = (*TargetCheck)(nil)

// NewTargetCheck creates a check over the entries decoded by doc.
func NewTargetCheck(doc *DocumentCheck, inspector *link.Inspector) *TargetCheck {
	if inspector == nil {
		inspector = link.NewInspector(nil, nil, nil)
	}
	return &TargetCheck{entries: doc, inspector: inspector}
}

// Name returns the unique identifier for this check.
func (c *TargetCheck) Name() string {
	return "targets"
}

// Category returns the grouping for this check.
func (c *TargetCheck) Category() string {
	return "links"
}

// Run inspects each entry. Absent targets are informational; broken,
// mismatched and occupied targets are warnings; inspection failures are
// errors.
func (c *TargetCheck) Run() *CheckResult {
	entries, ok := c.entries.Entries()
	if !ok {
		return skipped(c)
	}

	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Details:  make(map[string]any),
	}

	states := make(map[string]string, len(entries))
	var absent, attention, findings, failed []string
	for _, e := range entries {
		insp, err := c.inspector.Inspect(e)
		if err != nil {
			failed = append(failed, err.Error())
			states[e.Name] = "error"
			continue
		}
		states[e.Name] = insp.State.String()

		switch {
		case insp.State == link.Absent:
			absent = append(absent, e.Name)
		case !insp.State.Healthy():
			attention = append(attention, fmt.Sprintf("%s (%s)", e.Name, insp.State))
			if finding := insp.Finding(); finding != nil {
				findings = append(findings, finding.Error())
			}
		}
	}
	result.Details["states"] = states

	switch {
	case len(failed) > 0:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("%d target(s) could not be inspected", len(failed))
		result.Details["errors"] = failed
	case len(attention) > 0:
		result.Status = SeverityWarning
		result.Message = "needs attention: " + strings.Join(attention, ", ")
		result.Details["findings"] = findings
		result.FixHint = "Run: pono status"
	case len(absent) > 0:
		result.Status = SeverityInfo
		result.Message = fmt.Sprintf("%d of %d entries not linked: %s", len(absent), len(entries), strings.Join(absent, ", "))
		result.FixHint = "Run: pono enable"
	default:
		result.Message = fmt.Sprintf("all %d entries linked", len(entries))
	}
	return result
}

// names returns the entry names of "name: problem" strings.
func names(problems []string) []string {
	out := make([]string, len(problems))
	for i, p := range problems {
		name, _, _ := strings.Cut(p, ":")
		out[i] = name
	}
	return out
}
