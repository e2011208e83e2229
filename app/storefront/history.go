package storefront

import (
	"sync"

	"github.com/Rakhulsr/go-joias/app/search"
)

// History is the visitor's recent searches, most recent first.
type History interface {
	Get() []string
	Append(term string) []string
	Clear()
}

// MemoryHistory keeps history in process.
type MemoryHistory struct {
	mu    sync.Mutex
	terms []string
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{}
}

func (h *MemoryHistory) Get() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string{}, h.terms...)
}

func (h *MemoryHistory) Append(term string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.terms = search.PushHistory(h.terms, term)
	return append([]string{}, h.terms...)
}

func (h *MemoryHistory) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.terms = nil
}
