package broadcast

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// Entry is one chain's deployment record. The record is kept as raw JSON so
// that object key order and number literals pass through untouched.
type Entry struct {
	ChainID string
	Record  json.RawMessage
}

// Set accumulates per-chain deployment records, preserving the order in
// which chains were added.
type Set struct {
	entries []Entry
	index   map[string]int
}

// NewSet creates a new empty set
func NewSet() *Set {
	return &Set{
		index: make(map[string]int),
	}
}

// Add stores a record under the given chain id. Adding an id twice replaces
// the record but keeps the original position.
func (s *Set) Add(chainID string, record json.RawMessage) {
	if i, ok := s.index[chainID]; ok {
		s.entries[i].Record = record
		return
	}
	s.index[chainID] = len(s.entries)
	s.entries = append(s.entries, Entry{ChainID: chainID, Record: record})
}

// Get retrieves a record by chain id
func (s *Set) Get(chainID string) (json.RawMessage, bool) {
	i, ok := s.index[chainID]
	if !ok {
		return nil, false
	}
	return s.entries[i].Record, true
}

// Len returns the number of chains in the set
func (s *Set) Len() int {
	return len(s.entries)
}

// Entries returns the records in iteration order
func (s *Set) Entries() []Entry {
	return s.entries
}

// SortNumeric reorders the set so that numeric chain ids come first in
// ascending numeric order, followed by non-numeric ids in lexical order.
func (s *Set) SortNumeric() {
	sort.SliceStable(s.entries, func(i, j int) bool {
		a, aerr := strconv.ParseUint(s.entries[i].ChainID, 10, 64)
		b, berr := strconv.ParseUint(s.entries[j].ChainID, 10, 64)
		switch {
		case aerr == nil && berr == nil:
			return a < b
		case aerr == nil:
			return true
		case berr == nil:
			return false
		default:
			return s.entries[i].ChainID < s.entries[j].ChainID
		}
	})
	for i, entry := range s.entries {
		s.index[entry.ChainID] = i
	}
}

// Collect reads the deployment record of every chain subdirectory under
// root, skipping the ids in skip. Entries that are not directories are
// ignored. The first missing, unreadable or invalid file aborts the pass;
// no partial set is returned.
func Collect(root, deploymentFile string, skip []string) (*Set, error) {
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading broadcast directory %s: %w", root, err)
	}

	skipped := make(map[string]bool, len(skip))
	for _, id := range skip {
		skipped[id] = true
	}

	set := NewSet()
	for _, dirEntry := range dirEntries {
		if !dirEntry.IsDir() || skipped[dirEntry.Name()] {
			continue
		}

		path := filepath.Join(root, dirEntry.Name(), deploymentFile)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading deployment for chain %s: %w", dirEntry.Name(), err)
		}

		var record json.RawMessage
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		set.Add(dirEntry.Name(), record)
	}

	return set, nil
}
