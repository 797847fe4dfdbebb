package domain

import (
	"fmt"
	"sync"
)

// PlaceholderItemID is the bootstrap item the artist registry assigns
// itself at construction. It seeds the registry's own count bookkeeping,
// has no sub-ledger, and is never a real minted work.
const PlaceholderItemID ItemID = 0

// Artist is the creator registry: one privileged artist identity, a
// registry account that custodies freshly minted works, and the mapping
// from content id to the sub-ledger that represents it. A content id
// maps to a sub-ledger only after a successful mint; there is no path
// back to unminted.
type Artist struct {
	artist Account
	self   Account

	// bookkeeping is the registry's own ledger. It holds only the
	// bootstrap placeholder; minted works keep their state in their own
	// sub-ledgers.
	bookkeeping *Ledger

	mu    sync.Mutex
	works map[ItemID]*Artwork
}

// NewArtist binds the registry to its privileged artist account and to
// its own registry account (the custodian identity for minted works).
func NewArtist(artist, self Account) (*Artist, error) {
	if artist.IsNull() || self.IsNull() {
		return nil, fmt.Errorf("%w: artist registry needs non-null accounts", ErrInvalidState)
	}
	if artist == self {
		return nil, fmt.Errorf("%w: artist and registry accounts must differ", ErrInvalidState)
	}
	bookkeeping := NewLedger()
	if err := bookkeeping.Mint(PlaceholderItemID, artist); err != nil {
		return nil, err
	}
	return &Artist{
		artist:      artist,
		self:        self,
		bookkeeping: bookkeeping,
		works:       make(map[ItemID]*Artwork),
	}, nil
}

func (r *Artist) ArtistAccount() Account   { return r.artist }
func (r *Artist) RegistryAccount() Account { return r.self }

// Bookkeeping exposes the registry's own ledger (placeholder included).
func (r *Artist) Bookkeeping() *Ledger { return r.bookkeeping }

// Mint creates the sub-ledger for contentID with the registry itself as
// initial owner and custodian. Minting the same content id twice fails;
// idempotency is deliberately not provided.
func (r *Artist) Mint(contentID ItemID, displayName string, caller Account) (*Artwork, error) {
	if caller != r.artist {
		return nil, fmt.Errorf("%w: only the artist may mint", ErrUnauthorized)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.works[contentID]; ok {
		return nil, fmt.Errorf("%w: content id %d", ErrAlreadyExists, contentID)
	}
	work, err := NewArtwork(contentID, displayName, r.self)
	if err != nil {
		return nil, err
	}
	r.works[contentID] = work
	return work, nil
}

// Exists reports whether a sub-ledger has been minted for contentID.
// Only the artist may ask.
func (r *Artist) Exists(contentID ItemID, caller Account) (bool, error) {
	if caller != r.artist {
		return false, fmt.Errorf("%w: only the artist may query the mint registry", ErrUnauthorized)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.works[contentID]
	return ok, nil
}

// Work resolves the sub-ledger for contentID.
func (r *Artist) Work(contentID ItemID) (*Artwork, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	work, ok := r.works[contentID]
	if !ok {
		return nil, fmt.Errorf("%w: content id %d is not minted", ErrNotFound, contentID)
	}
	return work, nil
}
