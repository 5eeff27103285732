// Package catalog persists generated and solved puzzles in an embedded
// key-value store, deduplicated by canonical signature.
//
// Key layout:
//
//	s/<signature key>  => puzzle ID (uuid text)
//	p/<puzzle ID>      => Entry (JSON)
//
// An empty Options.Path opens an in-memory store that vanishes on Close.
package catalog

import (
	"encoding/json"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/katalvlaran/splitgrow/core"
)

var (
	// ErrNotFound is returned when no entry matches the requested ID or graph.
	ErrNotFound = errors.New("catalog: puzzle not found")

	// ErrBadParam is returned for unusable Options.
	ErrBadParam = errors.New("catalog: bad parameter")

	// ErrBadPuzzle is returned when Add or Lookup is given no graph.
	ErrBadPuzzle = errors.New("catalog: puzzle has no graph")

	// ErrClosed is returned by every method called after Close.
	ErrClosed = errors.New("catalog: closed")
)

var (
	sigPrefix    = []byte("s/")
	puzzlePrefix = []byte("p/")
)

// Options configures Open.
type Options struct {
	// Path is the database directory; empty means in-memory.
	Path string
	// ReadOnly opens an existing database without write access.
	ReadOnly bool
}

// Entry is one stored puzzle.
type Entry struct {
	ID        uuid.UUID      `json:"id"`
	Signature core.Signature `json:"signature"`
	Nodes     int            `json:"nodes"`
	Steps     int            `json:"steps"`
	CreatedAt time.Time      `json:"created_at"`
	Puzzle    *core.Puzzle   `json:"puzzle"`
}

// Catalog is a badger-backed puzzle store. It is safe for concurrent use.
type Catalog struct {
	db     *badger.DB
	closed atomic.Bool
}

// Open opens or creates the catalog described by opts.
func Open(opts Options) (*Catalog, error) {
	dbOpts := badger.DefaultOptions(opts.Path)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	// Badger for windows does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	if opts.Path == "" {
		if opts.ReadOnly {
			return nil, errors.Wrap(ErrBadParam, "path must be specified for a read-only catalog")
		}
		dbOpts.InMemory = true
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: open %q", opts.Path)
	}

	return &Catalog{db: db}, nil
}

// Close releases the underlying database.
// Closing twice is a no-op.
func (c *Catalog) Close() error {
	if c.closed.Swap(true) {
		return nil
	}

	return errors.Wrap(c.db.Close(), "catalog: close")
}

// Add stores p unless a puzzle with the same signature already exists.
// It returns the stored entry and whether it was newly added.
func (c *Catalog) Add(p *core.Puzzle) (Entry, bool, error) {
	if c.closed.Load() {
		return Entry{}, false, ErrClosed
	}
	if p == nil || p.Graph == nil {
		return Entry{}, false, ErrBadPuzzle
	}
	sig := p.Graph.Signature()
	var (
		entry Entry
		added bool
	)
	err := c.db.Update(func(txn *badger.Txn) error {
		existing, err := lookupTxn(txn, sig)
		if err == nil {
			entry = existing
			return nil
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}

		entry = Entry{
			ID:        uuid.New(),
			Signature: sig,
			Nodes:     p.Graph.Len(),
			Steps:     p.Steps(),
			CreatedAt: time.Now().UTC(),
			Puzzle:    p,
		}
		buf, err := json.Marshal(entry)
		if err != nil {
			return errors.Wrap(err, "catalog: encode entry")
		}
		if err := txn.Set(puzzleKey(entry.ID), buf); err != nil {
			return err
		}
		if err := txn.Set(sigKey(sig), []byte(entry.ID.String())); err != nil {
			return err
		}
		added = true

		return nil
	})
	if err != nil {
		return Entry{}, false, errors.Wrap(err, "catalog: add")
	}

	return entry, added, nil
}

// Get returns the entry stored under id.
func (c *Catalog) Get(id uuid.UUID) (Entry, error) {
	if c.closed.Load() {
		return Entry{}, ErrClosed
	}
	var entry Entry
	err := c.db.View(func(txn *badger.Txn) error {
		var err error
		entry, err = getTxn(txn, id)
		return err
	})

	return entry, err
}

// Lookup returns the entry whose signature matches g, regardless of the
// tree's translation or node IDs.
func (c *Catalog) Lookup(g *core.Graph) (Entry, error) {
	if c.closed.Load() {
		return Entry{}, ErrClosed
	}
	if g == nil {
		return Entry{}, ErrBadPuzzle
	}
	var entry Entry
	err := c.db.View(func(txn *badger.Txn) error {
		var err error
		entry, err = lookupTxn(txn, g.Signature())
		return err
	})

	return entry, err
}

// Each calls fn for every stored entry in ID order, stopping at the first
// error fn returns.
func (c *Catalog) Each(fn func(Entry) error) error {
	if c.closed.Load() {
		return ErrClosed
	}
	return c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   100,
			Prefix:         puzzlePrefix,
		})
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var entry Entry
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			})
			if err != nil {
				return errors.Wrapf(err, "catalog: decode %s", it.Item().Key())
			}
			if err := fn(entry); err != nil {
				return err
			}
		}

		return nil
	})
}

// Len returns the number of stored puzzles.
func (c *Catalog) Len() (int, error) {
	if c.closed.Load() {
		return 0, ErrClosed
	}
	n := 0
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: sigPrefix})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})

	return n, err
}

func sigKey(sig core.Signature) []byte {
	return append(append([]byte{}, sigPrefix...), sig.Key()...)
}

func puzzleKey(id uuid.UUID) []byte {
	return append(append([]byte{}, puzzlePrefix...), id.String()...)
}

func lookupTxn(txn *badger.Txn, sig core.Signature) (Entry, error) {
	item, err := txn.Get(sigKey(sig))
	if err == badger.ErrKeyNotFound {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, err
	}
	var id uuid.UUID
	err = item.Value(func(val []byte) error {
		id, err = uuid.ParseBytes(val)
		return err
	})
	if err != nil {
		return Entry{}, errors.Wrap(err, "catalog: bad signature index")
	}

	return getTxn(txn, id)
}

func getTxn(txn *badger.Txn, id uuid.UUID) (Entry, error) {
	item, err := txn.Get(puzzleKey(id))
	if err == badger.ErrKeyNotFound {
		return Entry{}, errors.Wrapf(ErrNotFound, "id %s", id)
	}
	if err != nil {
		return Entry{}, err
	}
	var entry Entry
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &entry)
	})
	if err != nil {
		return Entry{}, errors.Wrapf(err, "catalog: decode %s", id)
	}

	return entry, nil
}
