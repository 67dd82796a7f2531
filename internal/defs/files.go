// Package defs holds file names and permissions shared across the project.
package defs

import "os"

// Permissions for scaffolded directories and files.
const (
	// DirPerm is the mode for created directories.
	DirPerm os.FileMode = 0o755

	// FilePerm is the mode for regular scaffold files.
	FilePerm os.FileMode = 0o644

	// ScriptPerm is the mode for executable entry scripts.
	ScriptPerm os.FileMode = 0o755
)

// Scaffold file names.
const (
	// IndexPHP is the Symfony front-controller placeholder.
	IndexPHP = "index.php"

	// AppPy is the Flask application entry point.
	AppPy = "app.py"

	// ManagePy is the Django management entry script.
	ManagePy = "manage.py"

	// SettingsPy is the Django settings module file.
	SettingsPy = "settings.py"

	// VenvDir is the virtual environment directory inside a Python project.
	VenvDir = "venv"
)
