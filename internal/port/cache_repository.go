package port

import (
	"context"

	"github.com/lqhuy182/art-registry/internal/core/domain"
)

type CacheRepository interface {
	// SetOwner unconditionally writes the owner mirror for an item.
	SetOwner(ctx context.Context, itemID domain.ItemID, owner domain.Account) error

	// ReplaceOwner updates the mirror only if it currently reads from,
	// returning false on mismatch (the mirror is left untouched).
	ReplaceOwner(ctx context.Context, itemID domain.ItemID, from, to domain.Account) (bool, error)

	// GetOwner reads the mirror; ok is false when no entry exists.
	GetOwner(ctx context.Context, itemID domain.ItemID) (owner domain.Account, ok bool, err error)

	// DeleteOwner drops the mirror entry so readers fall back to the
	// authoritative ledger.
	DeleteOwner(ctx context.Context, itemID domain.ItemID) error
}
