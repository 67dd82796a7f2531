package scaffold

import (
	"bytes"
	"path"
	"strings"
	"testing"

	"github.com/projgen-io/projgen/internal/config"
)

func TestBuildLayout_Deterministic(t *testing.T) {
	kinds := []Kind{KindSymfony, KindFlask, KindDjango}

	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			first, err := BuildLayout(kind, "demo", nil)
			if err != nil {
				t.Fatalf("BuildLayout() error = %v", err)
			}
			second, err := BuildLayout(kind, "demo", nil)
			if err != nil {
				t.Fatalf("BuildLayout() error = %v", err)
			}

			if len(first.Dirs) != len(second.Dirs) {
				t.Fatalf("dir count differs: %d vs %d", len(first.Dirs), len(second.Dirs))
			}
			for i := range first.Dirs {
				if first.Dirs[i] != second.Dirs[i] {
					t.Errorf("dir[%d] = %q, want %q", i, second.Dirs[i], first.Dirs[i])
				}
			}

			if len(first.Files) != len(second.Files) {
				t.Fatalf("file count differs: %d vs %d", len(first.Files), len(second.Files))
			}
			for i := range first.Files {
				if first.Files[i].Path != second.Files[i].Path {
					t.Errorf("file[%d].Path = %q, want %q", i, second.Files[i].Path, first.Files[i].Path)
				}
				if !bytes.Equal(first.Files[i].Content, second.Files[i].Content) {
					t.Errorf("file %s content differs between calls", first.Files[i].Path)
				}
			}
		})
	}
}

func TestBuildLayout_DirPrefixesPresent(t *testing.T) {
	for _, kind := range []Kind{KindSymfony, KindFlask, KindDjango} {
		layout, err := BuildLayout(kind, "demo", nil)
		if err != nil {
			t.Fatalf("BuildLayout(%s) error = %v", kind, err)
		}

		dirs := make(map[string]bool)
		for _, d := range layout.Dirs {
			dirs[d] = true
		}

		for _, f := range layout.Files {
			parent := path.Dir(f.Path)
			if parent == "." {
				continue
			}
			if !dirs[parent] {
				t.Errorf("%s: file %s has no parent dir %s in layout", kind, f.Path, parent)
			}
		}
	}
}

func TestBuildLayout_FlaskContent(t *testing.T) {
	layout, err := BuildLayout(KindFlask, "demo", nil)
	if err != nil {
		t.Fatalf("BuildLayout() error = %v", err)
	}

	wantDirs := []string{"app", "venv", "static", "templates"}
	if len(layout.Dirs) != len(wantDirs) {
		t.Fatalf("Dirs = %v, want %v", layout.Dirs, wantDirs)
	}
	for i, d := range wantDirs {
		if layout.Dirs[i] != d {
			t.Errorf("Dirs[%d] = %q, want %q", i, layout.Dirs[i], d)
		}
	}

	if len(layout.Files) != 1 || layout.Files[0].Path != "app/app.py" {
		t.Fatalf("Files = %+v, want single app/app.py", layout.Files)
	}
	content := string(layout.Files[0].Content)
	if !strings.Contains(content, "@app.route('/')") {
		t.Errorf("app.py missing route handler:\n%s", content)
	}
}

func TestBuildLayout_Overrides(t *testing.T) {
	overrides := &config.LayoutOverrides{
		Layouts: map[string]config.KindOverride{
			"symfony": {ExtraDirs: []string{"docker", "tests"}},
		},
	}

	layout, err := BuildLayout(KindSymfony, "demo", overrides)
	if err != nil {
		t.Fatalf("BuildLayout() error = %v", err)
	}

	last := layout.Dirs[len(layout.Dirs)-2:]
	if last[0] != "docker" || last[1] != "tests" {
		t.Errorf("extra dirs not appended, got %v", layout.Dirs)
	}

	// Overrides for another kind must not leak.
	flask, err := BuildLayout(KindFlask, "demo", overrides)
	if err != nil {
		t.Fatalf("BuildLayout() error = %v", err)
	}
	if len(flask.Dirs) != 4 {
		t.Errorf("flask dirs affected by symfony overrides: %v", flask.Dirs)
	}
}

func TestBuildLayout_Errors(t *testing.T) {
	if _, err := BuildLayout(KindCargo, "demo", nil); err == nil {
		t.Error("expected error for cargo layout")
	}
	if _, err := BuildLayout(KindSymfony, "", nil); err == nil {
		t.Error("expected error for empty project name")
	}
	if _, err := BuildLayout(Kind("nope"), "demo", nil); err == nil {
		t.Error("expected error for unknown kind")
	}
}
