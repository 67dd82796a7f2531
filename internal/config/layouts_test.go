package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeOverrides(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layouts.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}
	return path
}

func TestLoadLayoutOverrides_Valid(t *testing.T) {
	path := writeOverrides(t, `layouts:
  symfony:
    extra_dirs:
      - docker
      - docs/adr
  flask:
    extra_dirs:
      - migrations
`)

	o, err := LoadLayoutOverrides(path)
	if err != nil {
		t.Fatalf("LoadLayoutOverrides() error = %v", err)
	}

	got := o.ExtraDirs("symfony")
	if len(got) != 2 || got[0] != "docker" || got[1] != "docs/adr" {
		t.Errorf("ExtraDirs(symfony) = %v", got)
	}
	if len(o.ExtraDirs("django")) != 0 {
		t.Errorf("ExtraDirs(django) = %v, want empty", o.ExtraDirs("django"))
	}
}

func TestLoadLayoutOverrides_MissingFile(t *testing.T) {
	_, err := LoadLayoutOverrides(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrOverridesNotFound) {
		t.Errorf("error = %v, want ErrOverridesNotFound", err)
	}
}

func TestLoadLayoutOverrides_InvalidYAML(t *testing.T) {
	path := writeOverrides(t, "layouts: [unbalanced")
	_, err := LoadLayoutOverrides(path)
	if !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("error = %v, want ErrInvalidYAML", err)
	}
}

func TestLoadLayoutOverrides_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unknown kind",
			content: `layouts:
  rails:
    extra_dirs: [db]
`,
		},
		{
			name: "absolute path",
			content: `layouts:
  flask:
    extra_dirs: [/etc/flask]
`,
		},
		{
			name: "dotdot segment",
			content: `layouts:
  django:
    extra_dirs: [../outside]
`,
		},
		{
			name: "empty dir",
			content: `layouts:
  django:
    extra_dirs: [""]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeOverrides(t, tt.content)
			_, err := LoadLayoutOverrides(path)
			if !errors.Is(err, ErrInvalidOverrides) {
				t.Errorf("error = %v, want ErrInvalidOverrides", err)
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("error = %v, want *ValidationError", err)
			}
		})
	}
}

func TestExtraDirs_NilReceiver(t *testing.T) {
	var o *LayoutOverrides
	if dirs := o.ExtraDirs("flask"); dirs != nil {
		t.Errorf("ExtraDirs on nil = %v, want nil", dirs)
	}
}
