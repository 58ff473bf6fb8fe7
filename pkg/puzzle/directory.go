package puzzle

import "path/filepath"

// Directory is the path of a folder believed to hold one puzzle.
type Directory string

// RequiredFile pairs a role with its resolved path inside a directory.
type RequiredFile struct {
	Role Role   `json:"role" yaml:"role"`
	Path string `json:"path" yaml:"path"`
}

// Path returns the directory path as a string.
func (d Directory) Path() string {
	return string(d)
}

// Name returns the last path element, used as the puzzle's display name.
func (d Directory) Name() string {
	return filepath.Base(string(d))
}

// File returns the path of the file playing role in this directory.
func (d Directory) File(role Role) string {
	return filepath.Join(string(d), role.FileName())
}

// RequiredFiles returns one entry per role, in Roles() order.
func (d Directory) RequiredFiles() []RequiredFile {
	roles := Roles()
	files := make([]RequiredFile, 0, len(roles))
	for _, r := range roles {
		files = append(files, RequiredFile{Role: r, Path: d.File(r)})
	}
	return files
}
