package domain

import "errors"

var (
	// ErrUnauthorized: caller lacks the owner/operator/delegate/creator
	// relationship the operation requires.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound: query against an unminted content id or unowned item.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState: the operation is structurally invalid regardless
	// of who asks (self-transfer, null target, approving the owner,
	// self-operator, selling an item the registry does not custody).
	ErrInvalidState = errors.New("invalid state")

	// ErrAlreadyExists: re-minting a content id.
	ErrAlreadyExists = errors.New("already exists")

	// ErrCountOverflow / ErrCountUnderflow: owner-count arithmetic would
	// leave the representable range. Checked before any mutation.
	ErrCountOverflow  = errors.New("owner count overflow")
	ErrCountUnderflow = errors.New("owner count underflow")

	// ErrReceiverRejected: the receiver callback failed or returned the
	// wrong acknowledgment; the transfer was rolled back.
	ErrReceiverRejected = errors.New("receiver rejected transfer")
)
