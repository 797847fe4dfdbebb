package domain

import (
	"context"
	"fmt"
	"math"
	"sync"
)

// Ledger is the authoritative owner/approval/operator/count state for a
// set of items. Every operation runs as one serialized transaction
// under the ledger lock: all of its mutations commit together or not at
// all.
type Ledger struct {
	mu        sync.Mutex
	owners    map[ItemID]Account
	approved  map[ItemID]Account
	operators map[Account]map[Account]bool
	counts    map[Account]uint64
}

func NewLedger() *Ledger {
	return &Ledger{
		owners:    make(map[ItemID]Account),
		approved:  make(map[ItemID]Account),
		operators: make(map[Account]map[Account]bool),
		counts:    make(map[Account]uint64),
	}
}

// Mint records a brand-new item under owner. Items are created exactly
// once and never destroyed.
func (l *Ledger) Mint(itemID ItemID, owner Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if owner.IsNull() {
		return fmt.Errorf("%w: mint to null account", ErrInvalidState)
	}
	if _, ok := l.owners[itemID]; ok {
		return fmt.Errorf("%w: item %d", ErrAlreadyExists, itemID)
	}
	if l.counts[owner] == math.MaxUint64 {
		return fmt.Errorf("%w: account %q", ErrCountOverflow, owner)
	}

	l.owners[itemID] = owner
	l.counts[owner]++
	return nil
}

// OwnerCount returns how many items account currently owns, zero if it
// has never owned anything.
func (l *Ledger) OwnerCount(account Account) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if account.IsNull() {
		return 0, fmt.Errorf("%w: owner count of null account", ErrInvalidState)
	}
	return l.counts[account], nil
}

func (l *Ledger) OwnerOf(itemID ItemID) (Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	owner, ok := l.owners[itemID]
	if !ok {
		return NullAccount, fmt.Errorf("%w: item %d has no owner", ErrNotFound, itemID)
	}
	return owner, nil
}

// Approve names delegate as the single approved delegate for the item,
// overwriting any prior delegate. A null delegate clears the approval.
// Returns the item's owner, for the Approval notification.
func (l *Ledger) Approve(itemID ItemID, delegate, caller Account) (Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	owner, ok := l.owners[itemID]
	if !ok {
		return NullAccount, fmt.Errorf("%w: item %d has no owner", ErrNotFound, itemID)
	}
	if caller != owner && !l.operators[owner][caller] {
		return NullAccount, fmt.Errorf("%w: %q is neither owner nor operator of item %d", ErrUnauthorized, caller, itemID)
	}
	if delegate == owner {
		return NullAccount, fmt.Errorf("%w: %q already owns item %d", ErrInvalidState, delegate, itemID)
	}

	if delegate.IsNull() {
		delete(l.approved, itemID)
	} else {
		l.approved[itemID] = delegate
	}
	return owner, nil
}

// GetApproved returns the approved delegate for the item, the null
// account if none is set.
func (l *Ledger) GetApproved(itemID ItemID) (Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.owners[itemID]; !ok {
		return NullAccount, fmt.Errorf("%w: item %d has no owner", ErrNotFound, itemID)
	}
	return l.approved[itemID], nil
}

// SetOperator grants or revokes operator's blanket authority over all
// of owner's items. An owner may not name itself.
func (l *Ledger) SetOperator(owner, operator Account, approved bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if owner.IsNull() || operator.IsNull() {
		return fmt.Errorf("%w: null account in operator relation", ErrInvalidState)
	}
	if owner == operator {
		return fmt.Errorf("%w: %q cannot be its own operator", ErrInvalidState, owner)
	}

	if !approved {
		delete(l.operators[owner], operator)
		if len(l.operators[owner]) == 0 {
			delete(l.operators, owner)
		}
		return nil
	}
	if l.operators[owner] == nil {
		l.operators[owner] = make(map[Account]bool)
	}
	l.operators[owner][operator] = true
	return nil
}

// IsOperator reports whether operator may act on all of owner's items.
// Querying the self-relation is rejected, mirroring the no-self-operator
// invariant.
func (l *Ledger) IsOperator(owner, operator Account) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if owner == operator {
		return false, fmt.Errorf("%w: %q cannot be its own operator", ErrInvalidState, owner)
	}
	return l.operators[owner][operator], nil
}

// Transfer reassigns ownership without a receiver handshake; the caller
// bears responsibility for the target being able to hold the item.
func (l *Ledger) Transfer(from, to Account, itemID ItemID, caller Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, err := l.transferLocked(from, to, itemID, caller)
	return err
}

// SafeTransfer reassigns ownership, then runs the receiver handshake
// against recv if non-nil. A failed handshake undoes every mutation
// before the error is reported; there is no partial-commit state.
func (l *Ledger) SafeTransfer(ctx context.Context, from, to Account, itemID ItemID, caller Account, data []byte, recv Receiver) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	prevApproved, err := l.transferLocked(from, to, itemID, caller)
	if err != nil {
		return err
	}
	if recv == nil {
		return nil
	}

	ack, err := recv.OnItemReceived(ctx, caller, from, itemID, data)
	if err != nil || ack != AckItemReceived {
		l.owners[itemID] = from
		l.counts[from]++
		l.counts[to]--
		if l.counts[to] == 0 {
			delete(l.counts, to)
		}
		if prevApproved.IsNull() {
			delete(l.approved, itemID)
		} else {
			l.approved[itemID] = prevApproved
		}
		if err != nil {
			return fmt.Errorf("%w: item %d: %v", ErrReceiverRejected, itemID, err)
		}
		return fmt.Errorf("%w: item %d: bad acknowledgment %#x", ErrReceiverRejected, itemID, uint32(ack))
	}
	return nil
}

// transferLocked validates fully before touching state, then applies
// the owner reassignment, count moves, and approval clear as one unit.
// Returns the approval it cleared so SafeTransfer can restore it.
func (l *Ledger) transferLocked(from, to Account, itemID ItemID, caller Account) (Account, error) {
	owner, ok := l.owners[itemID]
	if !ok {
		return NullAccount, fmt.Errorf("%w: item %d has no owner", ErrInvalidState, itemID)
	}
	authorized := !caller.IsNull() &&
		(caller == owner || l.operators[from][caller] || l.approved[itemID] == caller)
	if !authorized {
		return NullAccount, fmt.Errorf("%w: %q may not transfer item %d", ErrUnauthorized, caller, itemID)
	}
	if from != owner {
		return NullAccount, fmt.Errorf("%w: %q is not the owner of item %d", ErrInvalidState, from, itemID)
	}
	if to.IsNull() {
		return NullAccount, fmt.Errorf("%w: transfer of item %d to null account", ErrInvalidState, itemID)
	}
	if from == to {
		return NullAccount, fmt.Errorf("%w: self-transfer of item %d", ErrInvalidState, itemID)
	}
	if l.counts[from] == 0 {
		return NullAccount, fmt.Errorf("%w: account %q", ErrCountUnderflow, from)
	}
	if l.counts[to] == math.MaxUint64 {
		return NullAccount, fmt.Errorf("%w: account %q", ErrCountOverflow, to)
	}

	prevApproved := l.approved[itemID]
	l.owners[itemID] = to
	l.counts[from]--
	if l.counts[from] == 0 {
		delete(l.counts, from)
	}
	l.counts[to]++
	delete(l.approved, itemID)
	return prevApproved, nil
}
