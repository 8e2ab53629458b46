package reactive

import (
	stderrors "errors"
	"testing"

	"github.com/vango-dev/vmini/internal/errors"
)

func newTestStore() *Store {
	return NewStore(
		map[string]any{"count": 0, "name": "ada"},
		map[string]Method{
			"double": func(s *Store, args ...any) (any, error) {
				n, _ := Value[int](s, "count")
				return n * 2, nil
			},
			"add": func(s *Store, args ...any) (any, error) {
				n, _ := Value[int](s, "count")
				return nil, s.Set("count", n+args[0].(int))
			},
		},
		nil,
	)
}

func TestStoreCopiesBackingData(t *testing.T) {
	data := map[string]any{"a": 1}
	s := NewStore(data, nil, nil)
	data["a"] = 2
	data["b"] = 3

	if s.Get("a") != 1 || s.IsData("b") {
		t.Error("store must not observe caller mutations of the data map")
	}
}

func TestGetOrder(t *testing.T) {
	s := newTestStore()

	if s.Get("count") != 0 {
		t.Errorf("Get(count) = %v", s.Get("count"))
	}

	m, ok := s.Get("double").(BoundMethod)
	if !ok {
		t.Fatalf("Get(double) = %T, want BoundMethod", s.Get("double"))
	}
	_ = s.Set("count", 21)
	v, err := m()
	if err != nil || v != 42 {
		t.Errorf("double() = %v, %v", v, err)
	}

	if s.Get("unknown") != nil {
		t.Error("unset field should read nil")
	}
	_ = s.Set("unknown", "field")
	if s.Get("unknown") != "field" {
		t.Error("field should read back")
	}
}

func TestDataShadowsMethods(t *testing.T) {
	s := NewStore(map[string]any{"x": 1}, map[string]Method{
		"x": func(s *Store, args ...any) (any, error) { return "method", nil },
	}, nil)
	if s.Get("x") != 1 {
		t.Errorf("Get(x) = %v, data key should win", s.Get("x"))
	}
}

func TestSetNotifiesDataKeys(t *testing.T) {
	s := newTestStore()
	var got [][2]any
	s.Registry().Watch("count", func(prev, next any) error {
		got = append(got, [2]any{prev, next})
		return nil
	})

	_ = s.Set("count", 5)
	_ = s.Set("count", 5)
	_ = s.Set("other", 1)

	if len(got) != 2 {
		t.Fatalf("notifications = %d, want 2 (equal writes still notify)", len(got))
	}
	if got[0] != [2]any{0, 5} || got[1] != [2]any{5, 5} {
		t.Errorf("got %v", got)
	}
	if s.IsData("other") {
		t.Error("writing an unknown key must not create a data key")
	}
}

func TestSetPropagatesCallbackError(t *testing.T) {
	s := newTestStore()
	boom := stderrors.New("boom")
	s.Registry().Watch("name", func(prev, next any) error { return boom })

	if err := s.Set("name", "grace"); !stderrors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if s.Get("name") != "grace" {
		t.Error("value is stored before notification")
	}
}

func TestTrackRecordsDistinctDataKeys(t *testing.T) {
	s := newTestStore()

	keys, err := s.Track(func() error {
		s.Get("name")
		s.Get("count")
		s.Get("name")
		s.Get("double")
		s.Get("missing")
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 2 || keys[0] != "name" || keys[1] != "count" {
		t.Errorf("keys = %v, want [name count]", keys)
	}
	if s.Tracking() {
		t.Error("tracking must end with the pass")
	}
}

func TestReadsOutsidePassAreNotTracked(t *testing.T) {
	s := newTestStore()
	s.Get("count")

	keys, _ := s.Track(func() error { return nil })
	if len(keys) != 0 {
		t.Errorf("keys = %v, want none", keys)
	}
}

func TestTrackNests(t *testing.T) {
	s := newTestStore()
	var inner []string

	outer, _ := s.Track(func() error {
		s.Get("count")
		inner, _ = s.Track(func() error {
			s.Get("name")
			return nil
		})
		if !s.Tracking() {
			t.Error("outer pass should resume")
		}
		return nil
	})

	if len(outer) != 1 || outer[0] != "count" {
		t.Errorf("outer = %v", outer)
	}
	if len(inner) != 1 || inner[0] != "name" {
		t.Errorf("inner = %v", inner)
	}
}

func TestTrackReturnsError(t *testing.T) {
	s := newTestStore()
	boom := stderrors.New("boom")
	keys, err := s.Track(func() error {
		s.Get("count")
		return boom
	})
	if !stderrors.Is(err, boom) || len(keys) != 1 {
		t.Errorf("keys=%v err=%v", keys, err)
	}
}

func TestTrackRestoresAfterPanic(t *testing.T) {
	s := newTestStore()
	func() {
		defer func() { _ = recover() }()
		_, _ = s.Track(func() error { panic("render failed") })
	}()
	if s.Tracking() {
		t.Error("tracking must be cleared after a panic")
	}
}

func TestCall(t *testing.T) {
	s := newTestStore()
	if _, err := s.Call("add", 3); err != nil {
		t.Fatal(err)
	}
	if s.Get("count") != 3 {
		t.Errorf("count = %v, want 3", s.Get("count"))
	}

	if _, err := s.Call("nope"); !stderrors.Is(err, errors.New("E005")) {
		t.Errorf("err = %v, want E005", err)
	}
}

func TestHasKeysSnapshot(t *testing.T) {
	s := newTestStore()
	_ = s.Set("field", true)

	for _, k := range []string{"count", "double", "field"} {
		if !s.Has(k) {
			t.Errorf("Has(%q) = false", k)
		}
	}
	if s.Has("nope") {
		t.Error("Has(nope) = true")
	}

	keys := s.Keys()
	if len(keys) != 2 || keys[0] != "count" || keys[1] != "name" {
		t.Errorf("Keys() = %v", keys)
	}

	snap := s.Snapshot()
	snap["count"] = 99
	if s.Get("count") == 99 {
		t.Error("Snapshot must be a copy")
	}
}

func TestValue(t *testing.T) {
	s := newTestStore()
	if n, ok := Value[int](s, "count"); !ok || n != 0 {
		t.Errorf("Value[int] = %v, %v", n, ok)
	}
	if _, ok := Value[string](s, "count"); ok {
		t.Error("Value with wrong type should report false")
	}
}
