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
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/gamegl/curated"
)

// Sentinal error patterns.
const (
	NotFound    = "assets: not found: %s"
	ReadFailure = "assets: %s: %v"
)

// Node represents a single entry in an assets directory.
type Node struct {
	Name  string
	IsDir bool
}

func (n Node) String() string {
	return n.Name
}

// Source is implemented by any type that can supply asset files. Names are
// always slash separated and relative to the root of the source.
type Source interface {
	Open(name string) (io.ReadCloser, error)
	List(dir string) ([]Node, error)
}

// NewSource returns a Source for the path. A path to a zip file is opened as
// a packaged archive with the "assets" prefix, as used by APK files. Any
// other path is treated as a directory.
func NewSource(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip", ".apk":
		return OpenArchive(path, "assets")
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, curated.Errorf(NotFound, path)
	}
	if !fi.IsDir() {
		return nil, curated.Errorf(ReadFailure, path, "not a directory")
	}

	return NewDir(path), nil
}

// LoadBytes reads the entire named asset.
func LoadBytes(src Source, name string) ([]byte, error) {
	f, err := src.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, readFailure(name, err)
	}

	return b, nil
}

// LoadString reads the entire named asset and returns it as a string.
func LoadString(src Source, name string) (string, error) {
	b, err := LoadBytes(src, name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// sort so that directories are at the start of the list and then
// alphabetically (case insensitive)
func sortNodes(ent []Node) {
	sort.SliceStable(ent, func(i int, j int) bool {
		if ent[i].IsDir != ent[j].IsDir {
			return ent[i].IsDir
		}
		return strings.ToLower(ent[i].Name) < strings.ToLower(ent[j].Name)
	})
}

func notFound(name string) error {
	return curated.Errorf(NotFound, name)
}

func readFailure(name string, err error) error {
	return curated.Errorf(ReadFailure, name, err)
}
