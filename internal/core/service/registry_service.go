package service

import (
	"context"
	"fmt"
	"log"

	"github.com/lqhuy182/art-registry/internal/core/domain"
	"github.com/lqhuy182/art-registry/internal/port"
)

// RegistryService is the single facade over the artist registry and its
// sub-ledgers. Item-scoped operations are addressed by content id: each
// artwork's single item key is its content id.
//
// Successful mutations push notifications onto a bounded event queue
// drained by the audit workers, and keep a write-through owner mirror
// for out-of-process readers. Neither feeds back into authorization;
// the sub-ledgers stay authoritative.
type RegistryService struct {
	artist     *domain.Artist
	receivers  port.ReceiverRegistry
	cache      port.CacheRepository
	eventQueue chan domain.Event
}

func NewRegistryService(artist *domain.Artist, receivers port.ReceiverRegistry, cache port.CacheRepository, queueSize int) *RegistryService {
	return &RegistryService{
		artist:     artist,
		receivers:  receivers,
		cache:      cache,
		eventQueue: make(chan domain.Event, queueSize),
	}
}

// Mint creates the sub-ledger for contentID in registry custody. No
// Transfer notification is emitted for the mint itself.
func (s *RegistryService) Mint(ctx context.Context, contentID domain.ItemID, displayName string, caller domain.Account) (*domain.Artwork, error) {
	work, err := s.artist.Mint(contentID, displayName, caller)
	if err != nil {
		return nil, fmt.Errorf("mint content id %d: %w", contentID, err)
	}
	s.syncOwner(ctx, contentID, domain.NullAccount, s.artist.RegistryAccount())
	return work, nil
}

func (s *RegistryService) Exists(ctx context.Context, contentID domain.ItemID, caller domain.Account) (bool, error) {
	return s.artist.Exists(contentID, caller)
}

// Sell releases a work from registry custody to newOwner through the
// safe-transfer handshake, then updates the artwork's owner mirror.
// Custody moves without any payment leg; settlement is reconciled
// off-system against the audit trail.
func (s *RegistryService) Sell(ctx context.Context, contentID domain.ItemID, newOwner, caller domain.Account) error {
	if caller != s.artist.ArtistAccount() {
		return fmt.Errorf("sell content id %d: %w: only the artist may sell", contentID, domain.ErrUnauthorized)
	}
	work, err := s.artist.Work(contentID)
	if err != nil {
		return fmt.Errorf("sell content id %d: %w", contentID, err)
	}
	self := s.artist.RegistryAccount()
	owner, err := work.Ledger().OwnerOf(contentID)
	if err != nil {
		return fmt.Errorf("sell content id %d: %w", contentID, err)
	}
	if owner != self {
		return fmt.Errorf("sell content id %d: %w: registry is not the custodian", contentID, domain.ErrInvalidState)
	}

	recv, _ := s.receivers.Resolve(newOwner)
	if err := work.Ledger().SafeTransfer(ctx, self, newOwner, contentID, self, nil, recv); err != nil {
		return fmt.Errorf("sell content id %d: %w", contentID, err)
	}
	work.SetOwner(newOwner, self)

	s.syncOwner(ctx, contentID, self, newOwner)
	s.eventQueue <- domain.NewTransferEvent(self, newOwner, contentID)
	return nil
}

// OwnerOf returns the authoritative owner from the sub-ledger.
func (s *RegistryService) OwnerOf(ctx context.Context, contentID domain.ItemID) (domain.Account, error) {
	work, err := s.artist.Work(contentID)
	if err != nil {
		return domain.NullAccount, err
	}
	return work.Ledger().OwnerOf(contentID)
}

// MirroredOwner reads the owner mirror. ok is false when the mirror has
// no entry and the caller should fall back to OwnerOf.
func (s *RegistryService) MirroredOwner(ctx context.Context, contentID domain.ItemID) (domain.Account, bool, error) {
	return s.cache.GetOwner(ctx, contentID)
}

func (s *RegistryService) OwnerCount(ctx context.Context, contentID domain.ItemID, account domain.Account) (uint64, error) {
	work, err := s.artist.Work(contentID)
	if err != nil {
		return 0, err
	}
	return work.Ledger().OwnerCount(account)
}

func (s *RegistryService) GetApproved(ctx context.Context, contentID domain.ItemID) (domain.Account, error) {
	work, err := s.artist.Work(contentID)
	if err != nil {
		return domain.NullAccount, err
	}
	return work.Ledger().GetApproved(contentID)
}

func (s *RegistryService) IsOperator(ctx context.Context, contentID domain.ItemID, owner, operator domain.Account) (bool, error) {
	work, err := s.artist.Work(contentID)
	if err != nil {
		return false, err
	}
	return work.Ledger().IsOperator(owner, operator)
}

func (s *RegistryService) Approve(ctx context.Context, contentID domain.ItemID, delegate, caller domain.Account) error {
	work, err := s.artist.Work(contentID)
	if err != nil {
		return err
	}
	owner, err := work.Ledger().Approve(contentID, delegate, caller)
	if err != nil {
		return fmt.Errorf("approve on content id %d: %w", contentID, err)
	}
	s.eventQueue <- domain.NewApprovalEvent(owner, delegate, contentID)
	return nil
}

// SetOperator grants or revokes operator over all of caller's items in
// the addressed sub-ledger.
func (s *RegistryService) SetOperator(ctx context.Context, contentID domain.ItemID, operator domain.Account, approved bool, caller domain.Account) error {
	work, err := s.artist.Work(contentID)
	if err != nil {
		return err
	}
	if err := work.Ledger().SetOperator(caller, operator, approved); err != nil {
		return fmt.Errorf("set operator on content id %d: %w", contentID, err)
	}
	s.eventQueue <- domain.NewOperatorEvent(caller, operator, approved)
	return nil
}

// DirectTransfer moves custody without the receiver handshake; the
// caller vouches for the target being able to hold the item.
func (s *RegistryService) DirectTransfer(ctx context.Context, contentID domain.ItemID, from, to, caller domain.Account) error {
	work, err := s.artist.Work(contentID)
	if err != nil {
		return err
	}
	if err := work.Ledger().Transfer(from, to, contentID, caller); err != nil {
		return fmt.Errorf("transfer of content id %d: %w", contentID, err)
	}
	s.syncOwner(ctx, contentID, from, to)
	s.eventQueue <- domain.NewTransferEvent(from, to, contentID)
	return nil
}

// SafeTransfer moves custody and runs the receiver handshake when the
// target is a contract-capable account.
func (s *RegistryService) SafeTransfer(ctx context.Context, contentID domain.ItemID, from, to, caller domain.Account, data []byte) error {
	work, err := s.artist.Work(contentID)
	if err != nil {
		return err
	}
	recv, _ := s.receivers.Resolve(to)
	if err := work.Ledger().SafeTransfer(ctx, from, to, contentID, caller, data, recv); err != nil {
		return fmt.Errorf("safe transfer of content id %d: %w", contentID, err)
	}
	s.syncOwner(ctx, contentID, from, to)
	s.eventQueue <- domain.NewTransferEvent(from, to, contentID)
	return nil
}

func (s *RegistryService) SupportsCapability(c domain.Capability) bool {
	return domain.SupportsCapability(c)
}

// Events exposes the notification queue for the audit workers.
func (s *RegistryService) Events() <-chan domain.Event {
	return s.eventQueue
}

func (s *RegistryService) Close() {
	close(s.eventQueue)
}

// syncOwner keeps the mirror in step after a committed mutation. Mirror
// failures are logged and never unwind ledger state; a mismatched CAS
// means an out-of-band write, so the mirror is overwritten.
func (s *RegistryService) syncOwner(ctx context.Context, contentID domain.ItemID, from, to domain.Account) {
	if from.IsNull() {
		if err := s.cache.SetOwner(ctx, contentID, to); err != nil {
			log.Printf("owner mirror: set content id %d: %v", contentID, err)
		}
		return
	}
	ok, err := s.cache.ReplaceOwner(ctx, contentID, from, to)
	if err != nil {
		log.Printf("owner mirror: replace content id %d: %v", contentID, err)
		if err := s.cache.DeleteOwner(ctx, contentID); err != nil {
			log.Printf("owner mirror: drop content id %d: %v", contentID, err)
		}
		return
	}
	if !ok {
		log.Printf("owner mirror: content id %d did not read %q, overwriting", contentID, from)
		if err := s.cache.SetOwner(ctx, contentID, to); err != nil {
			log.Printf("owner mirror: set content id %d: %v", contentID, err)
		}
	}
}
