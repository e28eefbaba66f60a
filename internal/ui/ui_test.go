package ui

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/pono/internal/errors"
	"github.com/thoreinstein/pono/internal/link"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

var zsh = link.Entry{Name: "zsh", Source: "./examples/from/zshrc", Target: "./examples/to/.zshrc"}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.True(t, errors.Is(err, ErrUnknownFormat), tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestTextReporter_Outcomes(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		name    string
		outcome link.Outcome
		want    string
	}{
		{
			name: "created",
			outcome: link.Outcome{Op: link.OpEnable, Action: link.ActionCreated,
				Inspection: link.Inspection{Entry: zsh, Target: "./examples/to/.zshrc", State: link.LinkedCorrectly}},
			want: "✓ zsh: ./examples/to/.zshrc (new link)\n",
		},
		{
			name: "already linked",
			outcome: link.Outcome{Op: link.OpEnable, Action: link.ActionAlreadyLinked,
				Inspection: link.Inspection{Entry: zsh, Target: "/home/tester/.zshrc", State: link.LinkedCorrectly}},
			want: "• zsh: ~/.zshrc (linked)\n",
		},
		{
			name: "existing broken link",
			outcome: link.Outcome{Op: link.OpEnable, Action: link.ActionAlreadyLinked,
				Inspection: link.Inspection{Entry: zsh, Target: "/etc/zshrc", State: link.BrokenLink}},
			want: "• zsh: /etc/zshrc (existing link, broken)\n",
		},
		{
			name: "removed",
			outcome: link.Outcome{Op: link.OpDisable, Action: link.ActionRemoved,
				Inspection: link.Inspection{Entry: zsh, Target: "/home/tester/.zshrc"}},
			want: "✓ Unlinked zsh: ~/.zshrc\n",
		},
		{
			name: "inspected",
			outcome: link.Outcome{Op: link.OpStatus, Action: link.ActionInspected,
				Inspection: link.Inspection{Entry: zsh, Target: "/tmp/.zshrc", State: link.Absent}},
			want: "zsh: absent /tmp/.zshrc\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			r := NewTextReporter(&out, &errOut)
			r.Outcome(tt.outcome)
			assert.Equal(t, tt.want, out.String())
			assert.Empty(t, errOut.String())
		})
	}
}

func TestTextReporter_Quiet(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewTextReporter(&out, &errOut, Quiet(true))
	r.Begin(link.OpEnable, 0)
	r.Outcome(link.Outcome{Action: link.ActionCreated, Inspection: link.Inspection{Entry: zsh}})
	r.Warn(&link.Error{Kind: link.KindTargetOccupied, Entry: "zsh", Path: "/tmp/.zshrc", Occupant: link.OccupantFile})

	assert.Empty(t, out.String())
	assert.Equal(t, "⚠ zsh: /tmp/.zshrc is a file, not a link\n", errOut.String())

	r = NewTextReporter(&out, &errOut)
	r.Begin(link.OpStatus, 0)
	assert.Empty(t, out.String())
	r.Begin(link.OpDisable, 0)
	assert.Equal(t, "Nothing to disable\n", out.String())
}

func TestDescribe(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "source not found",
			err:  &link.Error{Kind: link.KindSourceNotFound, Entry: "zsh", Path: "/home/tester/dots/zshrc"},
			want: "zsh: source ~/dots/zshrc does not exist",
		},
		{
			name: "wrapped mismatch",
			err:  errors.Wrap(&link.Error{Kind: link.KindLinkMismatch, Entry: "zsh", Path: "/tmp/t", Destination: "/tmp/x"}, "status"),
			want: "zsh: /tmp/t points to /tmp/x instead of the source",
		},
		{
			name: "config",
			err:  &link.Error{Kind: link.KindConfig, Path: "pono.toml", Err: errors.New("missing [ponos] table")},
			want: "link document pono.toml: missing [ponos] table",
		},
		{
			name: "plain",
			err:  errors.New("boom"),
			want: "boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.err))
		})
	}
}

func TestSuggestion(t *testing.T) {
	assert.Equal(t, "Run: pono doctor", Suggestion(&link.Error{Kind: link.KindConfig}))
	assert.NotEmpty(t, Suggestion(&link.Error{Kind: link.KindTargetOccupied}))
	assert.Empty(t, Suggestion(&link.Error{Kind: link.KindUnhandled}))
	assert.Empty(t, Suggestion(errors.New("plain")))
}

func TestRenderEntries(t *testing.T) {
	entries := []link.Entry{
		{Name: "git", Source: "~/dots/gitconfig", Target: "~/.gitconfig"},
		zsh,
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderEntries(&buf, FormatText, entries))
		assert.Equal(t, "git: ~/dots/gitconfig → ~/.gitconfig\nzsh: ./examples/from/zshrc → ./examples/to/.zshrc\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderEntries(&buf, FormatJSON, entries))
		var got []link.Entry
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, entries, got)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderEntries(&buf, FormatYAML, entries))
		assert.Contains(t, buf.String(), "- name: git\n  source: ~/dots/gitconfig\n")
	})

	t.Run("empty json is an array", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderEntries(&buf, FormatJSON, nil))
		assert.Equal(t, "[]\n", buf.String())
	})
}

func TestRenderStatus(t *testing.T) {
	report := link.StatusReport{
		Inspections: []link.Inspection{
			{Entry: link.Entry{Name: "git"}, State: link.OccupiedByOther, Target: "/tmp/.gitconfig", Occupant: link.OccupantFile},
			{Entry: zsh, State: link.LinkedCorrectly, Source: "/d/zshrc", Target: "/tmp/.zshrc", Destination: "/d/zshrc"},
		},
		Unhealthy: true,
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderStatus(&buf, FormatText, report))
		out := buf.String()
		assert.Contains(t, out, "NAME")
		assert.Contains(t, out, "file in the way")
		assert.Contains(t, out, "→ /d/zshrc")
		assert.Contains(t, out, "Some entries need attention")
		assert.Contains(t, out, "⚠ git: /tmp/.gitconfig is a file, not a link")
		assert.Contains(t, out, "Move the existing file away")
		assert.NotContains(t, out, "zsh: ")
	})

	t.Run("text findings", func(t *testing.T) {
		findings := link.StatusReport{
			Inspections: []link.Inspection{
				{Entry: link.Entry{Name: "absent"}, State: link.Absent, Target: "/tmp/.absent"},
				{Entry: link.Entry{Name: "broken"}, State: link.BrokenLink, Target: "/tmp/.broken", Destination: "/d/gone"},
				{Entry: link.Entry{Name: "other"}, State: link.LinkedMismatched, Target: "/tmp/.other", Destination: "/d/elsewhere"},
			},
			Unhealthy: true,
		}
		var buf bytes.Buffer
		require.NoError(t, RenderStatus(&buf, FormatText, findings))
		out := buf.String()
		assert.Contains(t, out, "⚠ broken: /tmp/.broken points to /d/gone, which does not exist")
		assert.Contains(t, out, "⚠ other: /tmp/.other points to /d/elsewhere instead of the source")
		assert.Equal(t, 2, strings.Count(out, "pono disable NAME && pono enable NAME"))
		assert.NotContains(t, out, "⚠ absent")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderStatus(&buf, FormatJSON, report))

		var got map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, true, got["unhealthy"])
		entries := got["entries"].([]any)
		require.Len(t, entries, 2)
		first := entries[0].(map[string]any)
		assert.Equal(t, "occupied", first["state"])
		assert.Equal(t, "file", first["occupant"])
		second := entries[1].(map[string]any)
		assert.Equal(t, "linked", second["state"])
		assert.NotContains(t, second, "occupant")
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderStatus(&buf, FormatYAML, report))

		var got struct {
			Entries []struct {
				Name  string `yaml:"name"`
				State string `yaml:"state"`
			} `yaml:"entries"`
			Unhealthy bool `yaml:"unhealthy"`
		}
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.True(t, got.Unhealthy)
		require.Len(t, got.Entries, 2)
		assert.Equal(t, "linked", got.Entries[1].State)
	})
}
