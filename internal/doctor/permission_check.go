package doctor

import (
	"fmt"
	"os"
	"strings"

	"github.com/thoreinstein/pono/internal/errors"
)

// PermissionCheck flags pono's own files that other users could modify.
// A writable link document lets anyone redirect links in your home
// directory.
type PermissionCheck struct {
	PermissionFixer
	files []permissionTarget
}

type permissionTarget struct {
	path string
	want os.FileMode
}

// pathIssue represents a single permission problem.
type pathIssue struct {
	Path     string
	Problem  string
	Severity Severity
	// Want is the permission --fix applies.
	Want    os.FileMode
	Fixable bool
	FixHint string
}

var (
	_ Check = (*PermissionCheck)(nil)
	_ Fixer = (*PermissionCheck)(nil)
)

// NewPermissionCheck checks the link document and the settings file.
// Missing files are skipped.
func NewPermissionCheck(documentPath, settingsPath string) *PermissionCheck {
	return &PermissionCheck{files: []permissionTarget{
		{path: documentPath, want: 0o644},
		{path: settingsPath, want: 0o600},
	}}
}

// Name returns the unique identifier for this check.
func (c *PermissionCheck) Name() string {
	return "permissions"
}

// Category returns the grouping for this check.
func (c *PermissionCheck) Category() string {
	return "filesystem"
}

// Run stats each file and records group- or world-writable ones.
func (c *PermissionCheck) Run() *CheckResult {
	var issues []pathIssue
	checked := 0

	for _, f := range c.files {
		if f.path == "" {
			continue
		}
		info, err := os.Stat(f.path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			issues = append(issues, pathIssue{
				Path:     f.path,
				Problem:  fmt.Sprintf("cannot stat file: %v", err),
				Severity: SeverityError,
			})
			continue
		}
		checked++

		if perm := info.Mode().Perm(); perm&0o022 != 0 {
			issues = append(issues, pathIssue{
				Path:     f.path,
				Problem:  fmt.Sprintf("writable by other users (%s)", formatPermissions(info.Mode())),
				Severity: SeverityWarning,
				Want:     f.want,
				Fixable:  true,
				FixHint:  fmt.Sprintf("chmod %04o %s", f.want, f.path),
			})
		}
	}

	c.setIssues(issues)
	return c.buildResult(issues, checked)
}

// buildResult constructs the final CheckResult from accumulated issues.
func (c *PermissionCheck) buildResult(issues []pathIssue, checked int) *CheckResult {
	if len(issues) == 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityPass,
			Message:  fmt.Sprintf("all %d files have safe permissions", checked),
		}
	}

	status := SeverityWarning
	issueDetails := make([]map[string]any, 0, len(issues))
	var fixHints []string
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			status = SeverityError
		}
		m := map[string]any{
			"path":     issue.Path,
			"problem":  issue.Problem,
			"severity": issue.Severity.String(),
		}
		if issue.FixHint != "" {
			m["fix_hint"] = issue.FixHint
			fixHints = append(fixHints, issue.FixHint)
		}
		issueDetails = append(issueDetails, m)
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   status,
		Message:  fmt.Sprintf("found %d permission issue(s) across %d files", len(issues), checked),
		Details: map[string]any{
			"checked_paths": checked,
			"issues":        issueDetails,
		},
		Fixable: c.CanFix(),
		FixHint: strings.Join(fixHints, "; "),
	}
}

// formatPermissions returns a human-readable permission string (e.g., "0644").
func formatPermissions(mode os.FileMode) string {
	return fmt.Sprintf("%04o", mode.Perm())
}
