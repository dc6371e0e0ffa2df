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
	"archive/zip"
	"io"
	"path"
	"strings"
)

// Archive is a Source backed by a zip file. Assets are found under a prefix
// directory inside the archive.
type Archive struct {
	zf     *zip.ReadCloser
	prefix string
}

// OpenArchive opens the zip file. The prefix is the directory inside the
// archive that contains the assets and can be empty.
func OpenArchive(filename string, prefix string) (*Archive, error) {
	zf, err := zip.OpenReader(filename)
	if err != nil {
		return nil, readFailure(filename, err)
	}
	return &Archive{
		zf:     zf,
		prefix: strings.Trim(prefix, "/"),
	}, nil
}

// Close the underlying zip file.
func (a *Archive) Close() error {
	if a.zf == nil {
		return nil
	}
	err := a.zf.Close()
	a.zf = nil
	return err
}

func (a *Archive) resolve(name string) string {
	return strings.TrimPrefix(path.Join(a.prefix, path.Clean("/"+name)), "/")
}

// Open implements the Source interface.
func (a *Archive) Open(name string) (io.ReadCloser, error) {
	if a.zf == nil {
		return nil, notFound(name)
	}
	f, err := a.zf.Open(a.resolve(name))
	if err != nil {
		return nil, notFound(name)
	}
	return f, nil
}

// List implements the Source interface.
func (a *Archive) List(dir string) ([]Node, error) {
	if a.zf == nil {
		return nil, notFound(dir)
	}

	pth := a.resolve(dir)

	seen := make(map[string]bool)
	var ent []Node
	found := pth == ""

	for _, f := range a.zf.File {
		name := strings.TrimSuffix(f.Name, "/")

		var rest string
		if pth == "" {
			rest = name
		} else if strings.HasPrefix(name, pth+"/") {
			rest = strings.TrimPrefix(name, pth+"/")
		} else {
			continue
		}
		found = true

		if rest == "" {
			continue
		}

		// entries in sub-directories are listed by the name of the first
		// sub-directory. zip files are not required to have explicit
		// directory entries
		child, _, isDir := strings.Cut(rest, "/")
		isDir = isDir || f.FileInfo().IsDir()
		if seen[child] {
			continue
		}
		seen[child] = true

		ent = append(ent, Node{
			Name:  child,
			IsDir: isDir,
		})
	}

	if !found {
		return nil, notFound(dir)
	}

	sortNodes(ent)

	return ent, nil
}
