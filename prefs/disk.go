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

package prefs

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences.toml"

// WarningBoilerPlate is written to the top of every prefs file.
const WarningBoilerPlate = "# *** do not edit this file by hand while the application is running ***"

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used as the key in the TOML file.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("prefs: key cannot be empty")
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already added (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// Keys returns the keys of every value added to the Disk, in sorted order.
func (dsk *Disk) Keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.Keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dsk.entries[k]))
	}
	return s.String()
}

// Reset all preference values to their zero value. Default values should be
// applied again after a Reset().
func (dsk *Disk) Reset() error {
	for _, k := range dsk.Keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

func (dsk *Disk) read() (map[string]any, error) {
	data, err := os.ReadFile(dsk.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]any), nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}

	m := make(map[string]any)
	err = toml.Unmarshal(data, &m)
	if err != nil {
		return nil, fmt.Errorf("prefs: %s: %w", dsk.path, err)
	}

	return m, nil
}

// Save current preference values to disk. Values in the file that have not
// been added to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	m, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		m[k] = p.Get()
	}

	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s\n%s", WarningBoilerPlate, data)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. A missing prefs file is not an error.
// Values in the top command line group take precedence over values on disk.
func (dsk *Disk) Load() error {
	m, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			err = p.Set(v)
		} else if v, ok := m[k]; ok {
			err = p.Set(v)
		} else {
			continue
		}
		if err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}

	return nil
}
