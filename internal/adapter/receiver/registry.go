// Package receiver holds the in-process registry of contract-capable
// accounts. An account with a registered Receiver gets the
// item-received callback during safe transfers; every other account is
// a plain account and accepts custody unconditionally.
package receiver

import (
	"sync"

	"github.com/lqhuy182/art-registry/internal/core/domain"
)

type Registry struct {
	mu        sync.RWMutex
	receivers map[domain.Account]domain.Receiver
}

func NewRegistry() *Registry {
	return &Registry{receivers: make(map[domain.Account]domain.Receiver)}
}

// Register binds a receiver callback to an account, replacing any
// previous one. A nil receiver removes the binding, demoting the
// account back to a plain account.
func (r *Registry) Register(account domain.Account, recv domain.Receiver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if recv == nil {
		delete(r.receivers, account)
		return
	}
	r.receivers[account] = recv
}

func (r *Registry) Resolve(account domain.Account) (domain.Receiver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recv, ok := r.receivers[account]
	return recv, ok
}
