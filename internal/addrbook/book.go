// Package addrbook implements a local labeled address book.
//
// Entries map a short label to a bech32 address and live in a key-value
// store under the label as key, JSON-encoded. Addresses are validated
// against the configured prefix before they are stored, so everything read
// back is displayable as-is.
package addrbook

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/cosmoshaven/multisig-kit/config"
	"github.com/cosmoshaven/multisig-kit/internal/storage"
	"github.com/cosmoshaven/multisig-kit/pkg/display"
)

// Entry is one saved contact.
type Entry struct {
	Label   string `json:"label"`
	Address string `json:"address"`
}

// Book is a labeled address book over a key-value store.
type Book struct {
	db  storage.DB
	cfg *config.Config
}

// New creates an address book over db. Callers typically hand in a PrefixDB
// so the book shares a database with other state.
func New(db storage.DB, cfg *config.Config) *Book {
	return &Book{db: db, cfg: cfg}
}

// Put saves an entry, overwriting any existing entry with the same label.
// The address must validate against the configured prefix.
func (b *Book) Put(label, address string) error {
	if label == "" {
		return fmt.Errorf("label must not be empty")
	}
	if msg := display.CheckAddress(address, b.cfg); msg != "" {
		return fmt.Errorf("invalid address %q: %s", address, msg)
	}
	entry := Entry{Label: label, Address: address}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode entry: %w", err)
	}
	if err := b.db.Put([]byte(label), data); err != nil {
		return fmt.Errorf("store entry %q: %w", label, err)
	}
	return nil
}

// Get returns the entry with the given label.
func (b *Book) Get(label string) (Entry, error) {
	data, err := b.db.Get([]byte(label))
	if err != nil {
		return Entry{}, fmt.Errorf("label %q not found", label)
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry{}, fmt.Errorf("decode entry %q: %w", label, err)
	}
	return entry, nil
}

// List returns all entries sorted by label.
func (b *Book) List() ([]Entry, error) {
	var entries []Entry
	err := b.db.ForEach(nil, func(_, value []byte) error {
		var entry Entry
		if err := json.Unmarshal(value, &entry); err != nil {
			return fmt.Errorf("decode entry: %w", err)
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Label < entries[j].Label
	})
	return entries, nil
}

// Delete removes the entry with the given label.
func (b *Book) Delete(label string) error {
	ok, err := b.db.Has([]byte(label))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("label %q not found", label)
	}
	return b.db.Delete([]byte(label))
}
