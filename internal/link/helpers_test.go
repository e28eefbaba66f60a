package link_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/pono/internal/link"
)

// fixture lays out <dir>/from and <dir>/to and builds entries whose
// source is from/<name> and target is to/<name>.
type fixture struct {
	t    *testing.T
	from string
	to   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	f := &fixture{t: t, from: filepath.Join(dir, "from"), to: filepath.Join(dir, "to")}
	require.NoError(t, os.MkdirAll(f.from, 0o755))
	require.NoError(t, os.MkdirAll(f.to, 0o755))
	return f
}

func (f *fixture) entry(name string) link.Entry {
	return link.Entry{
		Name:   name,
		Source: filepath.Join(f.from, name),
		Target: filepath.Join(f.to, name),
	}
}

// source writes the source file of name with content and returns its entry.
func (f *fixture) source(name, content string) link.Entry {
	f.t.Helper()
	e := f.entry(name)
	require.NoError(f.t, os.WriteFile(e.Source, []byte(content), 0o644))
	return e
}

func (f *fixture) symlink(dest, target string) {
	f.t.Helper()
	require.NoError(f.t, os.Symlink(dest, target))
}

func exists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return false
	}
	require.NoError(t, err)
	return true
}

// recorder is a Reporter that keeps everything it receives.
type recorder struct {
	begins   []link.Op
	outcomes []link.Outcome
	warnings []error
}

func (r *recorder) Begin(op link.Op, _ int) { r.begins = append(r.begins, op) }
func (r *recorder) Outcome(o link.Outcome)  { r.outcomes = append(r.outcomes, o) }
func (r *recorder) Warn(err error)          { r.warnings = append(r.warnings, err) }

func (r *recorder) names() []string {
	names := make([]string, len(r.outcomes))
	for i, o := range r.outcomes {
		names[i] = o.Inspection.Entry.Name
	}
	return names
}
