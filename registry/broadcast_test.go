// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package registry

import "testing"

func TestBroadcasterLatestWins(t *testing.T) {
	b := newBroadcaster([]AppEntry{{ID: "a"}})
	ch, cancel := b.subscribe()
	defer cancel()

	b.publish([]AppEntry{{ID: "b"}})
	b.publish([]AppEntry{{ID: "c"}})

	got := <-ch
	if len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("got %v, want only the latest snapshot", got)
	}
	select {
	case extra := <-ch:
		t.Fatalf("unexpected extra snapshot %v", extra)
	default:
	}
}

func TestBroadcasterSnapshotIsCopy(t *testing.T) {
	b := newBroadcaster([]AppEntry{{ID: "a"}})
	snap := b.snapshot()
	snap[0].ID = "mutated"
	if b.snapshot()[0].ID != "a" {
		t.Fatalf("snapshot aliases internal state")
	}
}

func TestBroadcasterCancel(t *testing.T) {
	b := newBroadcaster(nil)
	ch, cancel := b.subscribe()
	if b.subscriberCount() != 1 {
		t.Fatalf("expected one subscriber")
	}
	<-ch

	cancel()
	cancel()
	if _, ok := <-ch; ok {
		t.Fatalf("channel should be closed after cancel")
	}
	if b.subscriberCount() != 0 {
		t.Fatalf("subscriber not removed")
	}
	b.publish([]AppEntry{{ID: "x"}})
}
