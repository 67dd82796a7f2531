package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxOverridesSize is the maximum allowed size for an overrides YAML file.
const maxOverridesSize = 1 * 1024 * 1024 // 1MB

// knownKinds lists the project kinds that accept layout overrides. The
// systems-package kind is absent: it has no fallback scaffold to extend.
var knownKinds = []string{"symfony", "flask", "django"}

// LayoutOverrides extends the built-in fallback scaffolds. Keys are kind
// names ("symfony", "flask", "django"); values list extra directories to
// create relative to the project root.
type LayoutOverrides struct {
	Layouts map[string]KindOverride `yaml:"layouts"`
}

// KindOverride holds the per-kind additions.
type KindOverride struct {
	ExtraDirs []string `yaml:"extra_dirs"`
}

// ExtraDirs returns the additional directories configured for the given kind
// name, or nil. A nil receiver is valid and yields no additions.
func (o *LayoutOverrides) ExtraDirs(kind string) []string {
	if o == nil || o.Layouts == nil {
		return nil
	}
	return o.Layouts[kind].ExtraDirs
}

// LoadLayoutOverrides reads and validates an overrides file.
func LoadLayoutOverrides(path string) (*LayoutOverrides, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrOverridesNotFound, path)
		}
		return nil, fmt.Errorf("stat overrides file: %w", err)
	}
	if info.Size() > maxOverridesSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidOverrides, maxOverridesSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides file: %w", err)
	}

	var overrides LayoutOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	if err := overrides.validate(); err != nil {
		return nil, err
	}
	return &overrides, nil
}

// validate rejects unknown kinds and unsafe paths. Extra directories must
// stay inside the project root, so absolute paths and ".." segments are
// refused.
func (o *LayoutOverrides) validate() error {
	for kind, ov := range o.Layouts {
		if !isKnownKind(kind) {
			return &ValidationError{
				Field:   "layouts",
				Message: fmt.Sprintf("unknown kind, must be one of: %s", strings.Join(knownKinds, ", ")),
				Value:   kind,
			}
		}
		for _, dir := range ov.ExtraDirs {
			if dir == "" {
				return &ValidationError{
					Field:   kind + ".extra_dirs",
					Message: "directory must not be empty",
				}
			}
			if filepath.IsAbs(dir) {
				return &ValidationError{
					Field:   kind + ".extra_dirs",
					Message: "directory must be relative to the project root",
					Value:   dir,
				}
			}
			if hasDotDot(dir) {
				return &ValidationError{
					Field:   kind + ".extra_dirs",
					Message: "directory must not contain \"..\" segments",
					Value:   dir,
				}
			}
		}
	}
	return nil
}

func isKnownKind(kind string) bool {
	for _, k := range knownKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func hasDotDot(dir string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(dir), "/") {
		if seg == ".." {
			return true
		}
	}
	return false
}
