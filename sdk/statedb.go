//go:build !wasm

package sdk

import (
	"time"

	bolt "go.etcd.io/bbolt"
)

var stateBucket = []byte("state")

// StateDB persists local host contract state in a bbolt file so a simulated
// contract keeps its state across process restarts.
type StateDB struct {
	db *bolt.DB
}

// OpenStateDB opens (or creates) the bbolt file backing the contract state.
func OpenStateDB(path string) (*StateDB, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(stateBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &StateDB{db: db}, nil
}

// Close releases the underlying bbolt handle.
func (s *StateDB) Close() error {
	return s.db.Close()
}

// Load reads the full key/value state into a map.
func (s *StateDB) Load() (map[string]string, error) {
	kv := map[string]string{}
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(stateBucket)
		return b.ForEach(func(k, v []byte) error {
			kv[string(k)] = string(v)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return kv, nil
}

// Replace atomically swaps the stored state for the given map. Called once per
// committed contract call, so a crash never leaves a half-written call behind.
func (s *StateDB) Replace(kv map[string]string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(stateBucket); err != nil {
			return err
		}
		b, err := tx.CreateBucket(stateBucket)
		if err != nil {
			return err
		}
		for k, v := range kv {
			if err := b.Put([]byte(k), []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
}
