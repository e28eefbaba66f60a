package config

import (
	"bytes"
	"cmp"
	"io/fs"
	"slices"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/pono/internal/errors"
	"github.com/thoreinstein/pono/internal/link"
	"github.com/thoreinstein/pono/pkg/fileutil"
)

// Document is a decoded and validated link document.
type Document struct {
	// Path is the file the document was read from.
	Path string
	// entries is sorted by name.
	entries []link.Entry
}

// rawDocument mirrors the TOML layout.
type rawDocument struct {
	Ponos map[string]rawEntry `toml:"ponos"`
}

type rawEntry struct {
	Source string `toml:"source"`
	Target string `toml:"target"`
}

// LoadDocument reads and validates the link document at path. Every
// failure is a *link.Error of kind KindConfig.
func LoadDocument(path string) (*Document, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = errors.Wrap(errors.ErrNotFound, "no link document")
		}
		return nil, &link.Error{Kind: link.KindConfig, Path: path, Err: err}
	}
	return ParseDocument(path, data)
}

// ParseDocument decodes and validates data. path is only used in errors.
func ParseDocument(path string, data []byte) (*Document, error) {
	var raw rawDocument
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, &link.Error{Kind: link.KindConfig, Path: path, Err: decodeError(err)}
	}

	if err := validateDocument(&raw); err != nil {
		return nil, &link.Error{Kind: link.KindConfig, Path: path, Err: err}
	}

	doc := &Document{Path: path, entries: make([]link.Entry, 0, len(raw.Ponos))}
	for name, e := range raw.Ponos {
		doc.entries = append(doc.entries, link.Entry{Name: name, Source: e.Source, Target: e.Target})
	}
	slices.SortFunc(doc.entries, func(a, b link.Entry) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return doc, nil
}

// Names returns the declared entry names in sorted order.
func (d *Document) Names() []string {
	names := make([]string, len(d.entries))
	for i, e := range d.entries {
		names[i] = e.Name
	}
	return names
}

// All returns every entry in name order.
func (d *Document) All() []link.Entry {
	return slices.Clone(d.entries)
}

// Entries returns the entries with the given names in name order. Names
// that are not declared are skipped.
func (d *Document) Entries(names []string) []link.Entry {
	out := make([]link.Entry, 0, len(names))
	for _, e := range d.entries {
		if slices.Contains(names, e.Name) {
			out = append(out, e)
		}
	}
	return out
}

// decodeError adds the position of syntax errors and the key of strict
// mode violations to the decoder error.
func decodeError(err error) error {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return errors.Newf("syntax error at line %d, column %d: %s", row, col, decodeErr.Error())
	}

	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) {
		return errors.Newf("unknown keys:\n%s", strictErr.String())
	}

	return errors.Wrap(err, "decoding TOML")
}

// StarterDocument returns a commented link document for pono init.
func StarterDocument() ([]byte, error) {
	raw := rawDocument{Ponos: map[string]rawEntry{
		"zsh": {Source: "~/dotfiles/zshrc", Target: "~/.zshrc"},
	}}
	body, err := toml.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(err, "encoding starter document")
	}

	var buf bytes.Buffer
	buf.WriteString("# pono link document.\n")
	buf.WriteString("# Each [ponos.<name>] table declares one symlink from target to source.\n")
	buf.WriteString("# Paths may start with ~ or reference environment variables like $HOME.\n\n")
	buf.Write(body)
	return buf.Bytes(), nil
}
