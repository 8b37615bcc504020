// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/broadcast.go
// Summary: Single-owner snapshot broadcaster for the enabled app list.

package registry

import "sync"

// broadcaster holds the current snapshot and fans replacements out to
// subscribers. Each subscriber channel holds at most one snapshot; a newer
// one replaces an unread older one, so publishing never blocks.
type broadcaster struct {
	mu      sync.RWMutex
	current []AppEntry
	subs    map[int]chan []AppEntry
	nextID  int
}

func newBroadcaster(initial []AppEntry) *broadcaster {
	return &broadcaster{
		current: cloneEntries(initial),
		subs:    make(map[int]chan []AppEntry),
	}
}

func (b *broadcaster) snapshot() []AppEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return cloneEntries(b.current)
}

func (b *broadcaster) publish(entries []AppEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = cloneEntries(entries)
	for _, ch := range b.subs {
		select {
		case <-ch:
		default:
		}
		ch <- cloneEntries(b.current)
	}
}

// subscribe registers a channel that immediately holds the current snapshot.
func (b *broadcaster) subscribe() (<-chan []AppEntry, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan []AppEntry, 1)
	ch <- cloneEntries(b.current)
	b.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (b *broadcaster) subscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
