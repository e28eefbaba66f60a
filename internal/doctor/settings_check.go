package doctor

import (
	"fmt"
	"io/fs"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/pono/internal/config"
	"github.com/thoreinstein/pono/internal/errors"
	"github.com/thoreinstein/pono/pkg/fileutil"
)

// SettingsCheck validates the optional settings file.
type SettingsCheck struct {
	path string
}

var _ Check = (*SettingsCheck)(nil)

// NewSettingsCheck creates a check for the settings file at path.
func NewSettingsCheck(path string) *SettingsCheck {
	return &SettingsCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *SettingsCheck) Name() string {
	return "settings"
}

// Category returns the grouping for this check.
func (c *SettingsCheck) Category() string {
	return "config"
}

// Run parses the settings file and validates each key.
func (c *SettingsCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.path},
	}

	data, err := fileutil.ReadFileWithLimit(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Status = SeverityInfo
			result.Message = "no settings file (using defaults)"
			return result
		}
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot read settings file: %v", err)
		return result
	}

	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("YAML syntax error: %v", err)
		result.FixHint = "Run: pono config edit"
		return result
	}

	var unknown, invalid []string
	for key, v := range values {
		if !slices.Contains(config.Keys, key) {
			unknown = append(unknown, key)
			continue
		}
		if err := config.ValidateSetting(key, fmt.Sprint(v)); err != nil {
			invalid = append(invalid, fmt.Sprintf("%s: %v", key, err))
		}
	}
	sort.Strings(unknown)
	sort.Strings(invalid)

	switch {
	case len(invalid) > 0:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("%d invalid setting(s)", len(invalid))
		result.Details["invalid"] = invalid
		result.FixHint = "Run: pono config set KEY VALUE"
	case len(unknown) > 0:
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%d unknown setting(s)", len(unknown))
		result.Details["unknown"] = unknown
	default:
		result.Status = SeverityPass
		result.Message = "settings file is valid"
	}
	return result
}
