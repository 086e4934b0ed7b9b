package console

import (
	"errors"
	"fmt"
	"testing"
)

func TestRegistry_LookupAllInOrder(t *testing.T) {
	r := NewRegistry(0)
	var calls []string
	record := func(tag string) Callback {
		return func(args string) { calls = append(calls, tag+":"+args) }
	}

	for _, reg := range []struct {
		kw, tag string
	}{
		{"set", "first"},
		{"get", "other"},
		{"set", "second"},
	} {
		if err := r.Register(reg.kw, record(reg.tag), ""); err != nil {
			t.Fatalf("Register(%q): %v", reg.kw, err)
		}
	}

	cbs := r.LookupAll("set")
	if len(cbs) != 2 {
		t.Fatalf("LookupAll(set) len=%d; want 2", len(cbs))
	}
	for _, cb := range cbs {
		cb("x")
	}
	if len(calls) != 2 || calls[0] != "first:x" || calls[1] != "second:x" {
		t.Fatalf("calls=%v; want [first:x second:x]", calls)
	}

	if got := r.LookupAll("Set"); len(got) != 0 {
		t.Fatalf("LookupAll is case-insensitive: got %d callbacks", len(got))
	}
	if got := r.LookupAll("se"); len(got) != 0 {
		t.Fatalf("LookupAll matched a prefix: got %d callbacks", len(got))
	}
}

func TestRegistry_CapacityOverflow(t *testing.T) {
	r := NewRegistry(0)
	if r.Cap() != DefaultCapacity {
		t.Fatalf("Cap()=%d; want %d", r.Cap(), DefaultCapacity)
	}
	for i := 0; i < DefaultCapacity; i++ {
		if err := r.Register(fmt.Sprintf("c%d", i), func(string) {}, ""); err != nil {
			t.Fatalf("Register #%d: %v", i, err)
		}
	}

	called := false
	err := r.Register("overflow", func(string) { called = true }, "")
	if !errors.Is(err, ErrRegistryFull) {
		t.Fatalf("Register past capacity err=%v; want ErrRegistryFull", err)
	}
	if r.Len() != DefaultCapacity {
		t.Fatalf("Len()=%d; want %d", r.Len(), DefaultCapacity)
	}
	if cbs := r.LookupAll("overflow"); len(cbs) != 0 {
		t.Fatalf("dropped entry is reachable")
	}
	if called {
		t.Fatalf("dropped callback was invoked")
	}
}

func TestRegistry_RejectsInvalid(t *testing.T) {
	r := NewRegistry(2)
	if err := r.Register("", func(string) {}, ""); !errors.Is(err, ErrEmptyKeyword) {
		t.Fatalf("empty keyword err=%v; want ErrEmptyKeyword", err)
	}
	if err := r.Register("x", nil, ""); !errors.Is(err, ErrNilCallback) {
		t.Fatalf("nil callback err=%v; want ErrNilCallback", err)
	}
	if r.Len() != 0 {
		t.Fatalf("Len()=%d after rejected registrations; want 0", r.Len())
	}
}

func TestRegistry_Unique(t *testing.T) {
	r := NewUniqueRegistry(0)
	if err := r.Register("led", func(string) {}, "toggle the LED"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register("led", func(string) {}, ""); !errors.Is(err, ErrDuplicateKeyword) {
		t.Fatalf("duplicate err=%v; want ErrDuplicateKeyword", err)
	}
	if r.Len() != 1 {
		t.Fatalf("Len()=%d; want 1", r.Len())
	}
}

func TestRegistry_ForEach(t *testing.T) {
	r := NewRegistry(0)
	_ = r.Register("a", func(string) {}, "first")
	_ = r.Register("b", func(string) {}, "")

	var got []Entry
	r.ForEach(func(e Entry) { got = append(got, e) })
	if len(got) != 2 {
		t.Fatalf("ForEach visited %d entries; want 2", len(got))
	}
	if got[0].Keyword != "a" || got[0].Description != "first" || got[1].Keyword != "b" || got[1].Description != "" {
		t.Fatalf("ForEach order/contents wrong: %+v", got)
	}
}
