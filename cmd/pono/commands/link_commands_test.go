package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/pono/internal/errors"
	"github.com/thoreinstein/pono/internal/link"
)

const zshDocument = `[ponos.zsh]
source = "dotfiles/zshrc"
target = "home/.zshrc"
`

func TestEnableStatusDisable_RoundTrip(t *testing.T) {
	env := setup(t)
	env.writeDocument(t, zshDocument)
	source := env.writeFile(t, "dotfiles/zshrc", "export EDITOR=vi\n")
	require.NoError(t, os.MkdirAll(filepath.Join(env.dir, "home"), 0o755))
	target := filepath.Join(env.dir, "home", ".zshrc")

	// Before enabling, the target is absent and status exits 1.
	stdout, _, err := execute(t, "status")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.Contains(t, stdout, "absent")
	assert.Contains(t, stdout, "Some entries need attention")

	stdout, _, err = execute(t, "enable")
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ zsh:")
	assert.Contains(t, stdout, "(new link)")

	dest, err := os.Readlink(target)
	require.NoError(t, err)
	assert.Equal(t, source, dest)

	stdout, _, err = execute(t, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "linked")

	stdout, _, err = execute(t, "disable", "zsh")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Unlinked zsh")

	_, err = os.Lstat(target)
	assert.True(t, os.IsNotExist(err), "target should be removed")
	_, err = os.Stat(source)
	assert.NoError(t, err, "source must survive disable")
}

func TestEnable_AliasAndIdempotence(t *testing.T) {
	env := setup(t)
	env.writeDocument(t, zshDocument)
	env.writeFile(t, "dotfiles/zshrc", "x")
	require.NoError(t, os.MkdirAll(filepath.Join(env.dir, "home"), 0o755))

	_, _, err := execute(t, "link")
	require.NoError(t, err)

	stdout, _, err := execute(t, "enable")
	require.NoError(t, err)
	assert.Contains(t, stdout, "(linked)")
}

func TestEnable_MissingSourceChangesNothing(t *testing.T) {
	env := setup(t)
	env.writeDocument(t, `[ponos.a]
source = "dotfiles/a"
target = "a.link"

[ponos.b]
source = "dotfiles/missing"
target = "b.link"
`)
	env.writeFile(t, "dotfiles/a", "a")

	_, _, err := execute(t, "enable")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.Equal(t, link.KindSourceNotFound, mustKind(t, err))

	_, statErr := os.Lstat(filepath.Join(env.dir, "a.link"))
	assert.True(t, os.IsNotExist(statErr), "a must not be linked when b fails validation")
}

func TestEnable_OccupiedTarget(t *testing.T) {
	env := setup(t)
	env.writeDocument(t, zshDocument)
	env.writeFile(t, "dotfiles/zshrc", "x")
	env.writeFile(t, "home/.zshrc", "local edits")

	_, _, err := execute(t, "enable")
	require.Error(t, err)
	assert.Equal(t, link.KindTargetOccupied, mustKind(t, err))

	var buf strings.Builder
	code := HandleError(&buf, err)
	assert.Equal(t, errors.ExitUser, code)
	assert.Contains(t, buf.String(), "Error: zsh:")
	assert.Contains(t, buf.String(), "is a file, not a link")
	assert.Contains(t, buf.String(), "Move the existing file away")
}

func TestDisable_OccupiedTargetWarnsAndRemoves(t *testing.T) {
	env := setup(t)
	env.writeDocument(t, zshDocument)
	env.writeFile(t, "dotfiles/zshrc", "x")
	target := env.writeFile(t, "home/.zshrc", "local edits")

	_, stderr, err := execute(t, "disable")
	require.NoError(t, err)
	assert.Contains(t, stderr, "⚠")

	_, statErr := os.Lstat(target)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDisable_MissingTargetFails(t *testing.T) {
	env := setup(t)
	env.writeDocument(t, zshDocument)
	env.writeFile(t, "dotfiles/zshrc", "x")

	_, _, err := execute(t, "disable")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestEnable_UnknownNamesAreIgnored(t *testing.T) {
	env := setup(t)
	env.writeDocument(t, zshDocument)
	env.writeFile(t, "dotfiles/zshrc", "x")

	stdout, _, err := execute(t, "enable", "nope")
	require.NoError(t, err)
	assert.Equal(t, "Nothing to enable\n", stdout)
}

func TestEnable_MissingDocument(t *testing.T) {
	setup(t)

	_, _, err := execute(t, "enable")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.Equal(t, link.KindConfig, mustKind(t, err))

	var buf strings.Builder
	HandleError(&buf, err)
	assert.Contains(t, buf.String(), "Run: pono doctor")
}

func TestEnable_ConfigFlag(t *testing.T) {
	env := setup(t)
	env.writeFile(t, "dotfiles/zshrc", "x")
	require.NoError(t, os.MkdirAll(filepath.Join(env.dir, "home"), 0o755))
	doc := env.writeFile(t, "elsewhere/links.toml", zshDocument)

	_, _, err := execute(t, "enable", "--config", doc)
	require.NoError(t, err)

	_, err = os.Readlink(filepath.Join(env.dir, "home", ".zshrc"))
	assert.NoError(t, err)
}

func TestEnable_Quiet(t *testing.T) {
	env := setup(t)
	env.writeDocument(t, zshDocument)
	env.writeFile(t, "dotfiles/zshrc", "x")
	require.NoError(t, os.MkdirAll(filepath.Join(env.dir, "home"), 0o755))

	stdout, _, err := execute(t, "enable", "-q")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestQuietAndVerboseConflict(t *testing.T) {
	setup(t)

	_, _, err := execute(t, "list", "-q", "-v")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestStatus_JSON(t *testing.T) {
	env := setup(t)
	env.writeDocument(t, zshDocument)
	env.writeFile(t, "dotfiles/zshrc", "x")
	env.writeFile(t, "home/.zshrc", "in the way")

	stdout, _, err := execute(t, "status", "-o", "json")
	require.Error(t, err)

	var got struct {
		Entries []struct {
			Name     string `json:"name"`
			State    string `json:"state"`
			Occupant string `json:"occupant"`
		} `json:"entries"`
		Unhealthy bool `json:"unhealthy"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "zsh", got.Entries[0].Name)
	assert.Equal(t, "occupied", got.Entries[0].State)
	assert.True(t, got.Unhealthy)

	// Status findings are already on screen.
	var buf strings.Builder
	code := HandleError(&buf, err)
	assert.Equal(t, errors.ExitUser, code)
	assert.Empty(t, buf.String())
}

func TestStatus_TextFindings(t *testing.T) {
	env := setup(t)
	env.writeDocument(t, zshDocument)
	env.writeFile(t, "dotfiles/zshrc", "x")
	env.writeFile(t, "home/.zshrc", "in the way")

	stdout, _, err := execute(t, "status")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.Contains(t, stdout, "⚠ zsh:")
	assert.Contains(t, stdout, "is a file, not a link")
	assert.Contains(t, stdout, "Move the existing file away")
}

func TestStatus_InvalidOutputFormat(t *testing.T) {
	env := setup(t)
	env.writeDocument(t, zshDocument)

	_, _, err := execute(t, "status", "-o", "xml")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestList(t *testing.T) {
	env := setup(t)
	env.writeDocument(t, `[ponos.zsh]
source = "~/dotfiles/zshrc"
target = "~/.zshrc"

[ponos.git]
source = "~/dotfiles/gitconfig"
target = "~/.gitconfig"
`)

	stdout, _, err := execute(t, "list")
	require.NoError(t, err)
	assert.Equal(t,
		"git: ~/dotfiles/gitconfig → ~/.gitconfig\nzsh: ~/dotfiles/zshrc → ~/.zshrc\n",
		stdout)

	stdout, _, err = execute(t, "ls", "-o", "json")
	require.NoError(t, err)
	var entries []link.Entry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "git", entries[0].Name)
}

func TestList_InvalidDocument(t *testing.T) {
	env := setup(t)
	env.writeDocument(t, `[ponos.zsh]
source = "~/dotfiles/zshrc"
`)

	_, _, err := execute(t, "list")
	require.Error(t, err)
	assert.Equal(t, link.KindConfig, mustKind(t, err))
}

func TestInteractiveSelection(t *testing.T) {
	env := setup(t)
	env.writeDocument(t, `[ponos.a]
source = "dotfiles/a"
target = "a.link"

[ponos.b]
source = "dotfiles/b"
target = "b.link"
`)
	env.writeFile(t, "dotfiles/a", "a")
	env.writeFile(t, "dotfiles/b", "b")

	orig := findMulti
	t.Cleanup(func() { findMulti = orig })

	findMulti = func(entries []link.Entry, itemFunc func(int) string, _ ...fuzzyfinder.Option) ([]int, error) {
		for i := range entries {
			if itemFunc(i) == "b" {
				return []int{i}, nil
			}
		}
		return nil, nil
	}

	_, _, err := execute(t, "enable", "-i")
	require.NoError(t, err)

	_, err = os.Lstat(filepath.Join(env.dir, "a.link"))
	assert.True(t, os.IsNotExist(err), "a was not picked")
	_, err = os.Readlink(filepath.Join(env.dir, "b.link"))
	assert.NoError(t, err)

	// Aborting the finder selects nothing.
	findMulti = func([]link.Entry, func(int) string, ...fuzzyfinder.Option) ([]int, error) {
		return nil, fuzzyfinder.ErrAbort
	}
	stdout, _, err := execute(t, "enable", "-i")
	require.NoError(t, err)
	assert.Equal(t, "Nothing to enable\n", stdout)

	// Names and -i are mutually exclusive.
	_, _, err = execute(t, "enable", "-i", "a")
	require.Error(t, err)
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{"nil", nil, errors.ExitSuccess, ""},
		{"plain", errors.New("disk on fire"), errors.ExitSystem, "Error: disk on fire\n"},
		{
			"user with suggestion",
			errors.NewUserError(errors.New("bad input"), "try again"),
			errors.ExitUser,
			"Error: bad input\n  try again\n",
		},
		{"reported", errors.NewReportedError(errors.New("shown")), errors.ExitUser, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			code := HandleError(&buf, tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantOut, buf.String())
		})
	}
}

func mustKind(t *testing.T, err error) link.Kind {
	t.Helper()
	kind, ok := link.KindOf(err)
	require.True(t, ok, "expected a link error, got %v", err)
	return kind
}
