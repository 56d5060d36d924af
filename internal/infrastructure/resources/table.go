package resources

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
	"github.com/alexisbeaulieu97/stylepreview/internal/ports"
)

// MemoryTable holds the resources persisted with a style, keyed by token.
type MemoryTable struct {
	mu    sync.RWMutex
	items map[style.ResourceToken][]byte
}

// NewMemoryTable creates an empty MemoryTable.
func NewMemoryTable() *MemoryTable {
	return &MemoryTable{items: make(map[style.ResourceToken][]byte)}
}

// Put stores data under token, replacing any previous entry.
func (t *MemoryTable) Put(token style.ResourceToken, data []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items[token] = data
}

// LoadFile reads path from disk and stores its content under token.
func (t *MemoryTable) LoadFile(token style.ResourceToken, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read resource %d: %w", token, err)
	}
	t.Put(token, data)
	return nil
}

// ResourceBytes returns the data stored under token.
func (t *MemoryTable) ResourceBytes(token style.ResourceToken) ([]byte, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	data, ok := t.items[token]
	return data, ok
}

// Tokens lists the stored tokens in ascending order.
func (t *MemoryTable) Tokens() []style.ResourceToken {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tokens := make([]style.ResourceToken, 0, len(t.items))
	for token := range t.items {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i] < tokens[j] })
	return tokens
}

// Len reports the number of stored resources.
func (t *MemoryTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.items)
}

var _ ports.ResourceTable = (*MemoryTable)(nil)
