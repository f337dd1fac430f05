// Package storage keeps a library of levels in a pebble database, stored in
// their file encoding and keyed by KSUID.
package storage

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/elmalev/pkg/codec"
)

// ErrLevelNotFound is returned for ids that are not in the library.
var ErrLevelNotFound = errors.New("level not found")

// Entry describes a stored level without decoding all of it.
type Entry struct {
	ID   ksuid.KSUID
	Name string
	Link int32
	Size int
}

// LevelLibrary stores encoded levels.
type LevelLibrary struct {
	db    *pebble.DB
	codec *codec.LevelCodec
}

// NewLevelLibrary opens or creates a library at path.
func NewLevelLibrary(path string, c *codec.LevelCodec) (*LevelLibrary, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open level library %s", path)
	}
	if c == nil {
		c = codec.NewLevelCodec()
	}
	return &LevelLibrary{db: db, codec: c}, nil
}

// Create encodes l and stores it under a new id.
func (s *LevelLibrary) Create(l *codec.Level) (ksuid.KSUID, error) {
	data, err := s.codec.Encode(l)
	if err != nil {
		return ksuid.Nil, err
	}
	return s.CreateRaw(data)
}

// CreateRaw stores an already encoded level after checking that it decodes.
func (s *LevelLibrary) CreateRaw(data []byte) (ksuid.KSUID, error) {
	if _, err := s.codec.Decode(data); err != nil {
		return ksuid.Nil, err
	}
	id := ksuid.New()
	if err := s.db.Set(id.Bytes(), data, pebble.Sync); err != nil {
		return ksuid.Nil, err
	}
	return id, nil
}

// ReadRaw returns the stored bytes of a level.
func (s *LevelLibrary) ReadRaw(id ksuid.KSUID) ([]byte, error) {
	data, closer, err := s.db.Get(id.Bytes())
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, errors.Wrapf(ErrLevelNotFound, "%s", id)
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	return append([]byte(nil), data...), nil
}

// Read decodes a stored level.
func (s *LevelLibrary) Read(id ksuid.KSUID) (*codec.Level, error) {
	data, err := s.ReadRaw(id)
	if err != nil {
		return nil, err
	}
	return s.codec.Decode(data)
}

// Update replaces a stored level.
func (s *LevelLibrary) Update(id ksuid.KSUID, l *codec.Level) error {
	if _, err := s.ReadRaw(id); err != nil {
		return err
	}
	data, err := s.codec.Encode(l)
	if err != nil {
		return err
	}
	return s.db.Set(id.Bytes(), data, pebble.Sync)
}

// Delete removes a level.
func (s *LevelLibrary) Delete(id ksuid.KSUID) error {
	if _, err := s.ReadRaw(id); err != nil {
		return err
	}
	return s.db.Delete(id.Bytes(), pebble.Sync)
}

// List returns every stored level in id order, which is creation order.
func (s *LevelLibrary) List() ([]Entry, error) {
	iter, err := s.db.NewIter(nil)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var entries []Entry
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key())
		if err != nil {
			return nil, errors.Wrap(err, "corrupt library key")
		}
		l, err := s.codec.Decode(iter.Value())
		if err != nil {
			return nil, errors.Wrapf(err, "level %s", id)
		}
		entries = append(entries, Entry{ID: id, Name: l.Name, Link: l.Link, Size: len(iter.Value())})
	}
	return entries, iter.Error()
}

// Close closes the underlying database.
func (s *LevelLibrary) Close() error {
	return s.db.Close()
}
