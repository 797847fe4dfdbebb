package domain

import "context"

// Ack is the acknowledgment value a receiver returns from the
// item-received callback.
type Ack uint32

// AckItemReceived is the only acknowledgment that completes a safe
// transfer. Anything else rolls the transfer back.
const AckItemReceived Ack = 0x150b7a02

// Receiver is implemented by contract-capable accounts that want a say
// in whether they accept custody of an item. Plain accounts have no
// Receiver and always accept.
//
// The callback runs while the ledger's operation lock is held: each
// operation is a serialized transaction, so a callback must not call
// back into the same ledger.
type Receiver interface {
	OnItemReceived(ctx context.Context, operator, from Account, itemID ItemID, data []byte) (Ack, error)
}
