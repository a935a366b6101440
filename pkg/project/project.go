// Copyright 2024 The PackMySeal Authors. All rights reserved.

package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	orderedmap "github.com/elliotchance/orderedmap/v2"

	"packmyseal.io/pms/pkg/constants"
	"packmyseal.io/pms/pkg/errors"
)

// Manifest is the per-project record of installed modules, persisted as
// 'pms_project.json' at the project root. The module map keeps insertion
// order so rewrites do not shuffle the file.
type Manifest struct {
	Name    string     `json:"name"`
	Modules *ModuleMap `json:"modules"`
}

// ModuleMap is the ordered name-to-version map of a manifest.
// encoding/json knows nothing about the underlying ordered map, so the
// type carries its own codec: emission walks the keys in insertion
// order, loading replays the object's tokens in file order.
type ModuleMap struct {
	*orderedmap.OrderedMap[string, string]
}

func NewModuleMap() *ModuleMap {
	return &ModuleMap{orderedmap.NewOrderedMap[string, string]()}
}

func (mm *ModuleMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range mm.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		version, _ := mm.Get(name)
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(version)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (mm *ModuleMap) UnmarshalJSON(data []byte) error {
	if mm.OrderedMap == nil {
		mm.OrderedMap = orderedmap.NewOrderedMap[string, string]()
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("modules: expected an object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		// after a valid '{' every key token is a string
		name := keyTok.(string)
		var version string
		if err := dec.Decode(&version); err != nil {
			return err
		}
		mm.Set(name, version)
	}
	_, err = dec.Token()
	return err
}

// NewManifest returns an empty manifest for the project 'name'.
func NewManifest(name string) *Manifest {
	return &Manifest{
		Name:    name,
		Modules: NewModuleMap(),
	}
}

// ManifestPath returns the manifest file path for the project directory.
func ManifestPath(projectDir string) string {
	return filepath.Join(projectDir, constants.ProjectFileName)
}

// ModulesDir returns the module storage folder of the project directory.
func ModulesDir(projectDir string) string {
	return filepath.Join(projectDir, constants.ModulesDirName)
}

// ModuleDir returns the on-disk directory of an installed module.
func ModuleDir(projectDir, moduleName string) string {
	return filepath.Join(ModulesDir(projectDir), moduleName)
}

// LoadManifest reads the manifest of the project directory.
func LoadManifest(projectDir string) (*Manifest, error) {
	data, err := os.ReadFile(ManifestPath(projectDir))
	if err != nil {
		return nil, errors.ProjectNotInitialized
	}

	manifest := Manifest{
		Modules: NewModuleMap(),
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, errors.ProjectNotInitialized
	}
	if manifest.Modules == nil {
		manifest.Modules = NewModuleMap()
	}

	return &manifest, nil
}

// Save writes the manifest to the project directory, pretty-printed.
func (m *Manifest) Save(projectDir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.MetadataWriteFailed
	}
	if err := os.WriteFile(ManifestPath(projectDir), data, 0644); err != nil {
		return errors.MetadataWriteFailed
	}
	return nil
}

// SetModule records the installed version of a module, inserting or
// overwriting the entry.
func (m *Manifest) SetModule(name, version string) {
	m.Modules.Set(name, version)
}

// RemoveModule deletes the manifest entry of a module.
func (m *Manifest) RemoveModule(name string) {
	m.Modules.Delete(name)
}

// Version returns the recorded version of a module.
func (m *Manifest) Version(name string) (string, bool) {
	return m.Modules.Get(name)
}

// ModuleNames returns the installed module names in manifest order.
func (m *Manifest) ModuleNames() []string {
	return m.Modules.Keys()
}
