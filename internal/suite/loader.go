package suite

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Parse decodes and validates a single YAML suite.
// Keys that are not part of the suite format are rejected.
func Parse(data []byte) (Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Suite{}, fmt.Errorf("%w: %v", ErrInvalidSuite, err)
	}
	if err := s.Validate(); err != nil {
		return Suite{}, err
	}
	return s, nil
}

// Load reads and parses a suite file
func Load(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, err
	}

	s, err := Parse(data)
	if err != nil {
		return Suite{}, fmt.Errorf("%s: %w", path, err)
	}
	s.File = path
	return s, nil
}

func isSuiteFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}

// LoadDir walks dir and loads every .yaml or .yml file, in lexical path order
func LoadDir(dir string) ([]Suite, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSuiteFile(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	suites := make([]Suite, 0, len(paths))
	for _, path := range paths {
		s, err := Load(path)
		if err != nil {
			return nil, err
		}
		suites = append(suites, s)
	}
	return suites, nil
}

// LoadPaths loads each path as a file or, for directories, with LoadDir
func LoadPaths(paths []string) ([]Suite, error) {
	var suites []Suite
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			loaded, err := LoadDir(path)
			if err != nil {
				return nil, err
			}
			suites = append(suites, loaded...)
			continue
		}
		s, err := Load(path)
		if err != nil {
			return nil, err
		}
		suites = append(suites, s)
	}
	return suites, nil
}
