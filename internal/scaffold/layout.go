package scaffold

import (
	"fmt"
	"os"

	"github.com/projgen-io/projgen/internal/config"
	"github.com/projgen-io/projgen/internal/defs"
)

// FileSpec is one file of a fallback layout.
type FileSpec struct {
	Path    string // Relative to the project root.
	Content []byte
	Mode    os.FileMode
}

// Layout is the fallback scaffold for one kind: directories to create and
// files to write, both in order. Every directory prefix of a file path is
// present in Dirs, and no file references another, so files can be written
// in any order once the directories exist.
type Layout struct {
	Dirs  []string
	Files []FileSpec
}

const symfonyIndexPHP = `<?php
// Front controller placeholder. Replace with the real Symfony entry point
// once dependencies are installed.
`

const flaskAppPy = `from flask import Flask

app = Flask(__name__)

@app.route('/')
def index():
    return "Hello, World!"

if __name__ == '__main__':
    app.run(debug=True)
`

const djangoManagePy = `#!/usr/bin/env python
import os
import sys

if __name__ == '__main__':
    os.environ.setdefault('DJANGO_SETTINGS_MODULE', 'project.settings')
    try:
        from django.core.management import execute_from_command_line
    except ImportError as exc:
        raise ImportError("Couldn't import Django.") from exc
    execute_from_command_line(sys.argv)
`

const djangoSettingsPy = `SECRET_KEY = 'your-secret-key'
DEBUG = True
ALLOWED_HOSTS = []
INSTALLED_APPS = [
    'django.contrib.admin',
    'django.contrib.auth',
    'django.contrib.contenttypes',
    'django.contrib.sessions',
    'django.contrib.messages',
    'django.contrib.staticfiles',
    'app',
]
MIDDLEWARE = [
    'django.middleware.security.SecurityMiddleware',
    'django.contrib.sessions.middleware.SessionMiddleware',
    'django.middleware.common.CommonMiddleware',
]
ROOT_URLCONF = 'project.urls'
`

// BuildLayout returns the fallback layout for the given kind and project
// name. It is pure: identical inputs always produce identical dir lists and
// file contents, so layouts are testable without touching a filesystem.
// Overrides may append extra directories (never files) per kind.
func BuildLayout(kind Kind, name string, overrides *config.LayoutOverrides) (*Layout, error) {
	if name == "" {
		return nil, fmt.Errorf("project name must not be empty")
	}

	var layout *Layout
	switch kind {
	case KindSymfony:
		layout = &Layout{
			Dirs: []string{"config", "public", "src", "templates", "var", "vendor"},
			Files: []FileSpec{
				{Path: "public/" + defs.IndexPHP, Content: []byte(symfonyIndexPHP), Mode: defs.FilePerm},
			},
		}
	case KindFlask:
		layout = &Layout{
			Dirs: []string{"app", defs.VenvDir, "static", "templates"},
			Files: []FileSpec{
				{Path: "app/" + defs.AppPy, Content: []byte(flaskAppPy), Mode: defs.FilePerm},
			},
		}
	case KindDjango:
		layout = &Layout{
			Dirs: []string{"project", "app", defs.VenvDir},
			Files: []FileSpec{
				{Path: defs.ManagePy, Content: []byte(djangoManagePy), Mode: defs.ScriptPerm},
				{Path: "project/" + defs.SettingsPy, Content: []byte(djangoSettingsPy), Mode: defs.FilePerm},
			},
		}
	case KindCargo:
		return nil, fmt.Errorf("kind %q has no fallback layout", kind)
	default:
		return nil, fmt.Errorf("unknown project kind %q", kind)
	}

	layout.Dirs = append(layout.Dirs, overrides.ExtraDirs(string(kind))...)
	return layout, nil
}
