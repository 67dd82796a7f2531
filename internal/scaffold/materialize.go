package scaffold

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/projgen-io/projgen/internal/defs"
)

// materialize writes a layout beneath root on fs. Directories are created
// first (create-if-absent, so re-running over an existing tree never fails),
// then files are written. The first failure aborts the remainder and names
// the exact path; entries already written stay in place.
func materialize(fs billy.Filesystem, root string, layout *Layout, result *Result) error {
	for _, dir := range layout.Dirs {
		path := fs.Join(root, dir)
		if err := fs.MkdirAll(path, defs.DirPerm); err != nil {
			return &PathError{Op: "mkdir", Path: path, Err: err}
		}
		result.CreatedDirs = append(result.CreatedDirs, path)
	}

	for _, f := range layout.Files {
		path := fs.Join(root, f.Path)
		if err := util.WriteFile(fs, path, f.Content, f.Mode); err != nil {
			return &PathError{Op: "write", Path: path, Err: err}
		}
		result.CreatedFiles = append(result.CreatedFiles, path)
	}

	return nil
}
