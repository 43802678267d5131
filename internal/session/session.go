// Package session tracks which senders are in AI mode.
package session

import "sync"

// Registry maps sender JIDs to their AI-mode flag. A sender that never
// entered AI mode is absent and reads as false. State lives in process
// memory only and resets on restart.
type Registry struct {
	mu     sync.RWMutex
	active map[string]bool
}

func NewRegistry() *Registry {
	return &Registry{active: make(map[string]bool)}
}

func (r *Registry) Enable(sender string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active[sender] = true
}

func (r *Registry) Disable(sender string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active[sender] = false
}

func (r *Registry) Enabled(sender string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active[sender]
}
