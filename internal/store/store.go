package store

import (
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	keyPrefix = "search:"
	appName   = "chesscore"
)

// DefaultDir returns the platform directory this module's badger log lives
// in when the host doesn't pass an explicit -store path: a single
// "<app data dir>/chesscore/db" rather than the teacher's split
// data-dir/db-dir/nnue-dir layout, since this module only ever opens one
// database and never downloads model weights.
//   - macOS: ~/Library/Application Support/chesscore/db
//   - Windows: %APPDATA%/chesscore/db
//   - everything else: $XDG_DATA_HOME/chesscore/db, or ~/.local/share/chesscore/db
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	var base string
	switch runtime.GOOS {
	case "darwin":
		base = filepath.Join(home, "Library", "Application Support")
	case "windows":
		if base = os.Getenv("APPDATA"); base == "" {
			base = filepath.Join(home, "AppData", "Roaming")
		}
	default:
		if base = os.Getenv("XDG_DATA_HOME"); base == "" {
			base = filepath.Join(home, ".local", "share")
		}
	}

	dir := filepath.Join(base, appName, "db")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// SearchRecord is one entry in the diagnostics log: what best_move chose,
// how good it thought that was, how deep it looked, and how long it took.
type SearchRecord struct {
	Notation string        `json:"notation"`
	Score    int           `json:"score"`
	Depth    int           `json:"depth"`
	Duration time.Duration `json:"duration"`
	At       time.Time     `json:"at"`
}

// Store wraps a badger database holding the search diagnostics log. It is
// opened by the host, not by internal/board or internal/engine — the core
// stays stateless.
type Store struct {
	db      *badger.DB
	counter uint64
}

// Open opens (creating if necessary) the diagnostics database at dir.
// Grounded on internal/storage/storage.go's NewStorage: badger.DefaultOptions
// with logging disabled.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	s.counter, err = s.nextCounter()
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordSearch appends one record to the log, keyed by an incrementing
// counter so badger's LSM-tree key ordering gives chronological iteration.
func (s *Store) RecordSearch(rec SearchRecord) error {
	rec.At = time.Now()

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	s.counter++
	key := searchKey(s.counter)

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// RecentSearches returns up to n of the most recently recorded searches,
// newest first.
func (s *Store) RecentSearches(n int) ([]SearchRecord, error) {
	var all []SearchRecord

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var rec SearchRecord
				if err := json.Unmarshal(val, &rec); err != nil {
					return err
				}
				all = append(all, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(all) > n {
		all = all[len(all)-n:]
	}
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	return all, nil
}

// nextCounter scans the existing log to resume the counter after reopening
// an existing database, rather than restarting at zero and risking key
// collisions with a prior run's records.
func (s *Store) nextCounter() (uint64, error) {
	var last uint64

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(keyPrefix)
		seekFrom := append(append([]byte{}, prefix...), 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF)
		it.Seek(seekFrom)
		if it.ValidForPrefix(prefix) {
			key := it.Item().KeyCopy(nil)
			last = binary.BigEndian.Uint64(key[len(prefix):])
		}
		return nil
	})
	return last, err
}

func searchKey(counter uint64) []byte {
	key := make([]byte, len(keyPrefix)+8)
	copy(key, keyPrefix)
	binary.BigEndian.PutUint64(key[len(keyPrefix):], counter)
	return key
}
