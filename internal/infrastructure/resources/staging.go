package resources

import (
	"sync"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
	"github.com/alexisbeaulieu97/stylepreview/internal/ports"
)

type stagingKey struct {
	token style.ResourceToken
	kind  style.ResourceKind
}

// StagingQueue records replacement files queued by an editing session but not
// yet persisted into the resource table.
type StagingQueue struct {
	mu    sync.RWMutex
	paths map[stagingKey]string
}

// NewStagingQueue creates an empty StagingQueue.
func NewStagingQueue() *StagingQueue {
	return &StagingQueue{paths: make(map[stagingKey]string)}
}

// Stage queues path as the replacement for the resource (token, kind). An
// empty path removes the entry.
func (q *StagingQueue) Stage(token style.ResourceToken, kind style.ResourceKind, path string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	key := stagingKey{token: token, kind: kind}
	if path == "" {
		delete(q.paths, key)
		return
	}
	q.paths[key] = path
}

// QueuedOverride returns the queued path for (token, kind).
func (q *StagingQueue) QueuedOverride(token style.ResourceToken, kind style.ResourceKind) (string, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	path, ok := q.paths[stagingKey{token: token, kind: kind}]
	return path, ok
}

// Len reports the number of queued replacements.
func (q *StagingQueue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return len(q.paths)
}

var _ ports.OverrideQueue = (*StagingQueue)(nil)
