package main

import (
	"os"
	"path/filepath"
	"strings"
)

// PathFinder resolves student executables through PATH.
type PathFinder struct {
	paths []string
}

// NewPathFinder creates a new PathFinder with the system PATH
func NewPathFinder() *PathFinder {
	return NewPathFinderFrom(filepath.SplitList(os.Getenv("PATH")))
}

// NewPathFinderFrom creates a PathFinder searching only the given directories.
func NewPathFinderFrom(paths []string) *PathFinder {
	return &PathFinder{paths: paths}
}

// FindExecutable returns the full path of name, or "" if it cannot be found.
// Names containing a path separator are checked as given.
func (pf *PathFinder) FindExecutable(name string) string {
	if name == "" {
		return ""
	}
	if strings.ContainsRune(name, filepath.Separator) {
		if isExecutable(name) {
			return name
		}
		return ""
	}

	for _, p := range pf.paths {
		fp := filepath.Join(p, name)
		if isExecutable(fp) {
			return fp
		}
	}
	return ""
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Mode()&0111 != 0
}
