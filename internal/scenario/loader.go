package scenario

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtins returns the scenarios shipped with the binary, sorted by ID.
func Builtins() ([]Scenario, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("scenario: cannot read built-ins: %w", err)
	}

	var out []Scenario
	for _, e := range entries {
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("scenario: cannot read %s: %w", e.Name(), err)
		}
		sc, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("scenario: built-in %s: %w", e.Name(), err)
		}
		out = append(out, sc)
	}

	sortByID(out)
	return out, nil
}

// Loader reads scenario files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader for root.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll loads every .yaml/.yml file under Root. Files that fail to parse
// are skipped. The result is sorted by ID.
func (l *Loader) LoadAll() ([]Scenario, error) {
	var out []Scenario

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		sc, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		out = append(out, sc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scenario: walking directory %s: %w", l.Root, err)
	}

	sortByID(out)
	return out, nil
}

// LoadFile loads a single scenario file.
func (l *Loader) LoadFile(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: reading file %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: parsing file %s: %w", path, err)
	}
	sc.FilePath = path
	return sc, nil
}

// Catalog returns the built-ins merged with the scenarios found in dir. A file
// whose ID matches a built-in replaces it. An empty dir yields the built-ins.
func Catalog(dir string) ([]Scenario, error) {
	list, err := Builtins()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return list, nil
	}

	extra, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(list))
	for i, sc := range list {
		byID[sc.ID] = i
	}
	for _, sc := range extra {
		if i, ok := byID[sc.ID]; ok {
			list[i] = sc
			continue
		}
		byID[sc.ID] = len(list)
		list = append(list, sc)
	}

	sortByID(list)
	return list, nil
}

// Find returns the scenario with the given ID.
func Find(list []Scenario, id string) (Scenario, error) {
	for _, sc := range list {
		if sc.ID == id {
			return sc, nil
		}
	}
	ids := make([]string, len(list))
	for i, sc := range list {
		ids[i] = sc.ID
	}
	return Scenario{}, fmt.Errorf("scenario: unknown scenario %q (available: %s)", id, strings.Join(ids, ", "))
}

func sortByID(list []Scenario) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
}
