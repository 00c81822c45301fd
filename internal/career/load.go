package career

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// LoadFile reads entries from a single JSON export. The file may hold either
// an array of entries or one entry object.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	entries, err := decodeEntries(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return entries, nil
}

// LoadDir reads every .json file in dir and concatenates their entries in
// lexical filename order, so repeated loads of the same directory yield the
// same slice. Files are parsed concurrently; files that fail to parse are
// skipped. A missing directory yields no entries.
func LoadDir(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() || filepath.Ext(de.Name()) != ".json" {
			continue
		}
		names = append(names, de.Name())
	}
	sort.Strings(names)

	parsed := make([][]Entry, len(names))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				return fmt.Errorf("read %s: %w", name, err)
			}
			// Malformed exports are skipped rather than failing the load.
			if entries, err := decodeEntries(data); err == nil {
				parsed[i] = entries
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Entry
	for _, entries := range parsed {
		all = append(all, entries...)
	}
	return all, nil
}

// decodeEntries accepts either a JSON array of entries or a single entry
// object.
func decodeEntries(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err == nil {
		return entries, nil
	}
	var single Entry
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, err
	}
	return []Entry{single}, nil
}
