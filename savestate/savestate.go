// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package savestate

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/logger"
	"golang.org/x/crypto/blake2b"
)

// Sentinel error patterns.
const (
	StoreError    = "savestate: %v"
	NoSlot        = "savestate: no slot named %s"
	Corrupted     = "savestate: slot %s is corrupted"
	InvalidSlot   = "savestate: invalid slot name (%s)"
	AlreadyClosed = "savestate: store is closed"
)

// all keys begin with slotPrefix. slotLimit is the upper bound of the key
// space when iterating
const (
	slotPrefix = "slot/"
	slotLimit  = "slot0"
)

// length of the header before the blob in a stored value
const headerLen = blake2b.Size256 + 8

// Entry describes a save state in the store.
type Entry struct {
	Slot     string
	Size     int
	Checksum [blake2b.Size256]byte
	Created  time.Time
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %d bytes, %s (%x)", e.Slot, e.Size, e.Created.Format(time.DateTime), e.Checksum[:4])
}

// Store of save states.
type Store struct {
	db *pebble.DB

	Permission logger.Permission
}

// Open the store in the directory. The directory is created if it does not
// exist.
func Open(dir string) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, curated.Errorf(StoreError, err)
	}
	return &Store{db: db, Permission: logger.Allow}, nil
}

// Close the store.
func (s *Store) Close() error {
	if s.db == nil {
		return curated.Errorf(AlreadyClosed)
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return curated.Errorf(StoreError, err)
	}
	return nil
}

func key(slot string) ([]byte, error) {
	if slot == "" || strings.ContainsAny(slot, "/\x00") {
		return nil, curated.Errorf(InvalidSlot, slot)
	}
	return []byte(slotPrefix + slot), nil
}

// Save the blob in the named slot. An existing save state in the slot is
// replaced.
func (s *Store) Save(slot string, blob []byte) error {
	if s.db == nil {
		return curated.Errorf(AlreadyClosed)
	}
	k, err := key(slot)
	if err != nil {
		return err
	}

	sum := blake2b.Sum256(blob)
	v := make([]byte, headerLen+len(blob))
	copy(v, sum[:])
	binary.BigEndian.PutUint64(v[blake2b.Size256:], uint64(time.Now().UnixNano()))
	copy(v[headerLen:], blob)

	if err := s.db.Set(k, v, pebble.Sync); err != nil {
		return curated.Errorf(StoreError, err)
	}

	logger.Logf(s.Permission, "savestate", "saved %d bytes to %s", len(blob), slot)
	return nil
}

// Load the blob in the named slot. The checksum is verified.
func (s *Store) Load(slot string) ([]byte, error) {
	if s.db == nil {
		return nil, curated.Errorf(AlreadyClosed)
	}
	k, err := key(slot)
	if err != nil {
		return nil, err
	}

	v, closer, err := s.db.Get(k)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, curated.Errorf(NoSlot, slot)
		}
		return nil, curated.Errorf(StoreError, err)
	}
	defer closer.Close()

	e, err := entry(slot, v)
	if err != nil {
		return nil, err
	}

	blob := v[headerLen:]
	if sum := blake2b.Sum256(blob); !bytes.Equal(sum[:], e.Checksum[:]) {
		return nil, curated.Errorf(Corrupted, slot)
	}

	// the value returned by Get() is only valid until the closer is called
	b := make([]byte, len(blob))
	copy(b, blob)

	logger.Logf(s.Permission, "savestate", "loaded %d bytes from %s", len(b), slot)
	return b, nil
}

func entry(slot string, v []byte) (Entry, error) {
	if len(v) < headerLen {
		return Entry{}, curated.Errorf(Corrupted, slot)
	}
	e := Entry{
		Slot:    slot,
		Size:    len(v) - headerLen,
		Created: time.Unix(0, int64(binary.BigEndian.Uint64(v[blake2b.Size256:]))),
	}
	copy(e.Checksum[:], v)
	return e, nil
}

// List the save states in the store in slot name order.
func (s *Store) List() ([]Entry, error) {
	if s.db == nil {
		return nil, curated.Errorf(AlreadyClosed)
	}

	it, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(slotPrefix),
		UpperBound: []byte(slotLimit),
	})
	if err != nil {
		return nil, curated.Errorf(StoreError, err)
	}
	defer it.Close()

	var l []Entry
	for it.First(); it.Valid(); it.Next() {
		slot := strings.TrimPrefix(string(it.Key()), slotPrefix)
		e, err := entry(slot, it.Value())
		if err != nil {
			logger.Log(s.Permission, "savestate", err)
			continue
		}
		l = append(l, e)
	}

	if err := it.Error(); err != nil {
		return nil, curated.Errorf(StoreError, err)
	}

	return l, nil
}

// Delete the save state in the named slot.
func (s *Store) Delete(slot string) error {
	if s.db == nil {
		return curated.Errorf(AlreadyClosed)
	}
	k, err := key(slot)
	if err != nil {
		return err
	}

	_, closer, err := s.db.Get(k)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return curated.Errorf(NoSlot, slot)
		}
		return curated.Errorf(StoreError, err)
	}
	closer.Close()

	if err := s.db.Delete(k, pebble.Sync); err != nil {
		return curated.Errorf(StoreError, err)
	}

	logger.Logf(s.Permission, "savestate", "deleted %s", slot)
	return nil
}
