// This file is part of GameGL.
//
// GameGL is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GameGL is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GameGL.  If not, see <https://www.gnu.org/licenses/>.

package assets

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Dir is a Source backed by a directory in the host filesystem.
type Dir struct {
	root string
}

// NewDir is the preferred method of initialisation for the Dir type. The
// directory is not checked for existence.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

func (d *Dir) String() string {
	return d.root
}

func (d *Dir) resolve(name string) string {
	// path.Clean() with a leading separator prevents names from escaping the
	// root directory
	return filepath.Join(d.root, filepath.FromSlash(path.Clean("/"+name)))
}

// Open implements the Source interface.
func (d *Dir) Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(d.resolve(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(name)
		}
		return nil, readFailure(name, err)
	}
	return f, nil
}

// List implements the Source interface.
func (d *Dir) List(dir string) ([]Node, error) {
	pth := d.resolve(dir)

	entries, err := os.ReadDir(pth)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(dir)
		}
		return nil, readFailure(dir, err)
	}

	var ent []Node
	for _, e := range entries {
		// using os.Stat() to get file information otherwise links to
		// directories do not have the IsDir() property
		fi, err := os.Stat(filepath.Join(pth, e.Name()))
		if err != nil {
			continue
		}
		ent = append(ent, Node{
			Name:  e.Name(),
			IsDir: fi.IsDir(),
		})
	}

	sortNodes(ent)

	return ent, nil
}
