package domain

import (
	"fmt"
	"sync"
)

// Artwork is a one-item sub-ledger for a single minted piece. The
// embedded ledger is authoritative; Owner is a denormalized convenience
// mirror kept in lockstep by the resale workflow.
type Artwork struct {
	contentID   ItemID
	displayName string
	creator     Account

	mu    sync.Mutex
	owner Account

	ledger *Ledger
}

// NewArtwork records the single item as owned by its creator. The
// caller becomes the creator; the artist registry passes its own
// account here so freshly minted works start in registry custody.
func NewArtwork(contentID ItemID, displayName string, caller Account) (*Artwork, error) {
	if caller.IsNull() {
		return nil, fmt.Errorf("%w: artwork creator is the null account", ErrInvalidState)
	}
	ledger := NewLedger()
	if err := ledger.Mint(contentID, caller); err != nil {
		return nil, err
	}
	return &Artwork{
		contentID:   contentID,
		displayName: displayName,
		creator:     caller,
		owner:       caller,
		ledger:      ledger,
	}, nil
}

func (a *Artwork) ContentID() ItemID   { return a.contentID }
func (a *Artwork) DisplayName() string { return a.displayName }
func (a *Artwork) Creator() Account    { return a.creator }
func (a *Artwork) Ledger() *Ledger     { return a.ledger }

// Owner returns the denormalized owner mirror. The ledger's OwnerOf is
// the authoritative record; divergence between the two is a bug.
func (a *Artwork) Owner() Account {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.owner
}

// SetOwner updates the mirror. A caller that is not the current mirror
// owner is ignored: no state change and no error.
func (a *Artwork) SetOwner(newOwner, caller Account) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if caller != a.owner {
		return
	}
	a.owner = newOwner
}
