package reactive

import (
	"errors"
	"testing"
)

func TestWatchAppendsWithoutDedup(t *testing.T) {
	r := NewRegistry()
	var calls []string
	cb := func(prev, next any) error {
		calls = append(calls, "cb")
		return nil
	}

	r.Watch("k", cb)
	r.Watch("k", cb)
	r.Watch("k", func(prev, next any) error {
		calls = append(calls, "last")
		return nil
	})

	if r.Len("k") != 3 {
		t.Fatalf("Len = %d, want 3", r.Len("k"))
	}
	if err := r.Notify("k", 1, 2); err != nil {
		t.Fatal(err)
	}
	want := []string{"cb", "cb", "last"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v", calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestNotifyPassesValues(t *testing.T) {
	r := NewRegistry()
	var gotPrev, gotNext any
	r.Watch("k", func(prev, next any) error {
		gotPrev, gotNext = prev, next
		return nil
	})

	_ = r.Notify("k", "old", "new")
	if gotPrev != "old" || gotNext != "new" {
		t.Errorf("got (%v, %v)", gotPrev, gotNext)
	}
}

func TestNotifyUnknownKey(t *testing.T) {
	if err := NewRegistry().Notify("nobody", nil, nil); err != nil {
		t.Errorf("Notify on empty key: %v", err)
	}
}

func TestNotifyStopsOnFirstError(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	later := false

	r.Watch("k", func(prev, next any) error { return boom })
	r.Watch("k", func(prev, next any) error {
		later = true
		return nil
	})

	if err := r.Notify("k", 0, 1); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if later {
		t.Error("callbacks after a failing one must not run")
	}
}

func TestWatchCancelRemovesOnlyThatEntry(t *testing.T) {
	r := NewRegistry()
	count := 0
	cb := func(prev, next any) error {
		count++
		return nil
	}

	cancel := r.Watch("k", cb)
	r.Watch("k", cb)
	cancel()
	cancel()

	if r.Len("k") != 1 {
		t.Fatalf("Len = %d, want 1", r.Len("k"))
	}
	_ = r.Notify("k", nil, nil)
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestSubscribeDedupsByObserver(t *testing.T) {
	r := NewRegistry()
	id := NextID()
	count := 0
	cb := func(prev, next any) error {
		count++
		return nil
	}

	if !r.Subscribe("k", id, cb) {
		t.Fatal("first Subscribe should register")
	}
	for i := 0; i < 5; i++ {
		if r.Subscribe("k", id, cb) {
			t.Fatal("repeat Subscribe should be ignored")
		}
	}
	r.Subscribe("k", NextID(), cb)

	if r.Len("k") != 2 {
		t.Fatalf("Len = %d, want 2", r.Len("k"))
	}
	_ = r.Notify("k", nil, nil)
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestUnsubscribe(t *testing.T) {
	r := NewRegistry()
	id := NextID()
	r.Subscribe("a", id, func(prev, next any) error { return nil })
	r.Subscribe("b", id, func(prev, next any) error { return nil })
	r.Watch("b", func(prev, next any) error { return nil })

	r.Unsubscribe("a", id)
	r.Unsubscribe("b", id)
	r.Unsubscribe("missing", id)

	if r.Len("a") != 0 || r.Len("b") != 1 {
		t.Errorf("Len(a)=%d Len(b)=%d", r.Len("a"), r.Len("b"))
	}
	keys := r.Keys()
	if len(keys) != 1 || keys[0] != "b" {
		t.Errorf("Keys() = %v", keys)
	}
}

func TestNotifySnapshotsChain(t *testing.T) {
	r := NewRegistry()
	id := NextID()
	runs := 0
	var cb Callback
	cb = func(prev, next any) error {
		runs++
		// Re-registering during notification must not extend this round.
		r.Watch("k", cb)
		return nil
	}
	r.Subscribe("k", id, cb)

	_ = r.Notify("k", nil, nil)
	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
}
