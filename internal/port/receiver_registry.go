package port

import "github.com/lqhuy182/art-registry/internal/core/domain"

type ReceiverRegistry interface {
	// Resolve returns the receiver callback registered for account.
	// ok is false for plain accounts, which always accept custody.
	Resolve(account domain.Account) (recv domain.Receiver, ok bool)
}
