// Package levels provides maze discovery and loading. Mazes are plain text
// files with the .board extension, read either from a directory or from the
// set embedded in the binary.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/maze"
)

// Extension is the file extension of maze files.
const Extension = ".board"

// ErrMissingMaze is returned when a requested maze name does not exist.
var ErrMissingMaze = errors.New("levels: maze not found")

//go:embed mazes/*.board
var embedded embed.FS

// Level is a named maze ready to start a session with.
type Level struct {
	Name string
	Grid *maze.Grid
}

// Library lists and loads mazes from a file system.
type Library struct {
	fsys fs.FS
}

// New creates a library over the given file system. Mazes are looked up
// at its root and in any subdirectory.
func New(fsys fs.FS) *Library {
	return &Library{fsys: fsys}
}

// Embedded returns the library of mazes shipped with the binary.
func Embedded() *Library {
	sub, err := fs.Sub(embedded, "mazes")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return New(sub)
}

// Dir returns a library over a directory on disk.
func Dir(root string) *Library {
	return New(os.DirFS(root))
}

// paths maps maze names to their file paths.
func (l *Library) paths() (map[string]string, error) {
	found := make(map[string]string)

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(path.Ext(p), Extension) {
			return nil
		}
		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		// First match wins so that shallow files shadow nested ones.
		if _, dup := found[name]; !dup {
			found[name] = p
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: scanning mazes: %w", err)
	}

	return found, nil
}

// Names returns all maze names in sorted order.
func (l *Library) Names() ([]string, error) {
	found, err := l.paths()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether a maze with the given name is available.
func (l *Library) Exists(name string) bool {
	found, err := l.paths()
	if err != nil {
		return false
	}
	_, ok := found[name]
	return ok
}

// Load reads and parses the maze with the given name.
// Returns ErrMissingMaze for unknown names and maze.ErrMalformedGrid for
// files that do not parse.
func (l *Library) Load(name string) (Level, error) {
	found, err := l.paths()
	if err != nil {
		return Level{}, err
	}

	p, ok := found[name]
	if !ok {
		return Level{}, fmt.Errorf("%w: %q", ErrMissingMaze, name)
	}

	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading %s: %w", p, err)
	}

	grid, err := maze.Parse(string(data))
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing %s: %w", p, err)
	}

	return Level{Name: name, Grid: grid}, nil
}
