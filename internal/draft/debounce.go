package draft

import (
	"context"
	"log"
	"sync"
	"time"

	"gantavya-backend/dto"
)

// DefaultDelay mirrors the keystroke quiescence window the form uses.
const DefaultDelay = 500 * time.Millisecond

// Debouncer coalesces per-key saves: each Save resets the key's timer, and
// only the last draft inside a quiescent window reaches the store.
type Debouncer struct {
	store        Store
	delay        time.Duration
	writeTimeout time.Duration

	mu      sync.Mutex
	pending map[string]*pendingSave
}

type pendingSave struct {
	timer *time.Timer
	draft dto.RegistrationDraft
}

func NewDebouncer(store Store, delay time.Duration, writeTimeout time.Duration) *Debouncer {
	return &Debouncer{
		store:        store,
		delay:        delay,
		writeTimeout: writeTimeout,
		pending:      make(map[string]*pendingSave),
	}
}

// Save schedules the draft for writing once the key has been quiet for the
// debounce window. A failed flush is only logged; the draft is best-effort.
func (d *Debouncer) Save(key string, draft dto.RegistrationDraft) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if p, ok := d.pending[key]; ok {
		p.draft = draft
		p.timer.Reset(d.delay)
		return
	}
	p := &pendingSave{draft: draft}
	p.timer = time.AfterFunc(d.delay, func() { d.flush(key) })
	d.pending[key] = p
}

func (d *Debouncer) flush(key string) {
	d.mu.Lock()
	p, ok := d.pending[key]
	if !ok {
		d.mu.Unlock()
		return
	}
	delete(d.pending, key)
	draft := p.draft
	d.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), d.writeTimeout)
	defer cancel()
	if err := d.store.Save(ctx, key, draft); err != nil {
		log.Printf("draft save failed for %s: %v", key, err)
	}
}

// Cancel drops any scheduled write for the key, used when the draft is
// deleted so a stale save cannot resurrect it.
func (d *Debouncer) Cancel(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p, ok := d.pending[key]; ok {
		p.timer.Stop()
		delete(d.pending, key)
	}
}

// FlushAll writes every pending draft immediately (shutdown path).
func (d *Debouncer) FlushAll() {
	d.mu.Lock()
	keys := make([]string, 0, len(d.pending))
	for key, p := range d.pending {
		p.timer.Stop()
		keys = append(keys, key)
	}
	d.mu.Unlock()

	for _, key := range keys {
		d.flush(key)
	}
}
