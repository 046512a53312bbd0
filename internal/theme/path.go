package theme

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

type pathKind int

const (
	mainBundle pathKind = iota
	sandbox
)

// Path says where theme documents and their images live: either the main
// bundle (the manager's embedded resource set) or a directory on disk.
type Path struct {
	kind pathKind
	dir  string
}

// MainBundle is the Path for bundled theme resources.
func MainBundle() Path {
	return Path{kind: mainBundle}
}

// Sandbox is the Path for theme resources stored under dir.
func Sandbox(dir string) Path {
	return Path{kind: sandbox, dir: dir}
}

func (p Path) IsBundle() bool {
	return p.kind == mainBundle
}

// Dir returns the directory of a sandbox path.
func (p Path) Dir() (string, bool) {
	if p.kind != sandbox {
		return "", false
	}
	return p.dir, true
}

func (p Path) String() string {
	if p.kind == sandbox {
		return fmt.Sprintf("sandbox(%s)", p.dir)
	}
	return "main bundle"
}

// PathFor resolves a logical document name to a file. In the main bundle the
// name must exist with one of the supported extensions. In a sandbox the
// first existing candidate wins, falling back to <dir>/<name>.yaml.
func (p Path) PathFor(bundle fs.FS, name string) (string, bool) {
	if name == "" {
		return "", false
	}

	switch p.kind {
	case sandbox:
		for _, ext := range documentExtensions {
			candidate := filepath.Join(p.dir, name+ext)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true
			}
		}
		return filepath.Join(p.dir, name+documentExtensions[0]), true

	default:
		if bundle == nil {
			return "", false
		}
		for _, ext := range documentExtensions {
			candidate := name + ext
			if _, err := fs.Stat(bundle, candidate); err == nil {
				return candidate, true
			}
		}
		return "", false
	}
}

// ResourcePath joins a resource identifier onto the path's location.
func (p Path) ResourcePath(id string) string {
	if p.kind == sandbox {
		return filepath.Join(p.dir, id)
	}
	return path.Clean(id)
}

// ReadFile reads a file resolved by PathFor or ResourcePath.
func (p Path) ReadFile(bundle fs.FS, file string) ([]byte, error) {
	f, err := p.Open(bundle, file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// Open opens a resolved file from the backing store of the path.
func (p Path) Open(bundle fs.FS, file string) (io.ReadCloser, error) {
	if p.kind == sandbox {
		return os.Open(file)
	}
	if bundle == nil {
		return nil, errors.New("no bundle configured")
	}
	return bundle.Open(file)
}
