package paint

import (
	"errors"
	"slices"
	"sync"
	"testing"
)

func TestSurfaceRegistry_RegisterLookup(t *testing.T) {
	r := NewSurfaceRegistry()
	buf, _ := NewPaintBuffer(4, 4)

	if err := r.Register(7, buf); err != nil {
		t.Fatalf("Register: %v", err)
	}
	got, ok := r.Lookup(7)
	if !ok || got != buf {
		t.Errorf("Lookup(7) = %v, %v; want registered buffer", got, ok)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestSurfaceRegistry_LookupMissIsNotAnError(t *testing.T) {
	r := NewSurfaceRegistry()
	got, ok := r.Lookup(42)
	if ok || got != nil {
		t.Errorf("Lookup on empty registry = %v, %v; want nil, false", got, ok)
	}
}

func TestSurfaceRegistry_DuplicateSurface(t *testing.T) {
	r := NewSurfaceRegistry()
	a, _ := NewPaintBuffer(1, 1)
	b, _ := NewPaintBuffer(1, 1)

	if err := r.Register(1, a); err != nil {
		t.Fatal(err)
	}
	err := r.Register(1, b)
	if !errors.Is(err, ErrDuplicateSurface) {
		t.Fatalf("second Register error = %v, want ErrDuplicateSurface", err)
	}
	if got, _ := r.Lookup(1); got != a {
		t.Error("duplicate registration replaced the original buffer")
	}
}

func TestSurfaceRegistry_RegisterNilBuffer(t *testing.T) {
	r := NewSurfaceRegistry()
	if err := r.Register(1, nil); err == nil {
		t.Error("expected error registering a nil buffer")
	}
}

func TestSurfaceRegistry_UnregisterAndIDs(t *testing.T) {
	r := NewSurfaceRegistry()
	for _, id := range []SurfaceID{9, 2, 5} {
		buf, _ := NewPaintBuffer(1, 1)
		if err := r.Register(id, buf); err != nil {
			t.Fatal(err)
		}
	}

	if got := r.IDs(); !slices.Equal(got, []SurfaceID{2, 5, 9}) {
		t.Errorf("IDs = %v, want [2 5 9]", got)
	}

	r.Unregister(5)
	r.Unregister(100)
	if got := r.IDs(); !slices.Equal(got, []SurfaceID{2, 9}) {
		t.Errorf("IDs after Unregister = %v, want [2 9]", got)
	}

	buf, _ := NewPaintBuffer(1, 1)
	if err := r.Register(5, buf); err != nil {
		t.Errorf("re-registering a removed id: %v", err)
	}
}

func TestSurfaceRegistry_ConcurrentLookup(t *testing.T) {
	r := NewSurfaceRegistry()
	for i := 0; i < 16; i++ {
		buf, _ := NewPaintBuffer(1, 1)
		_ = r.Register(SurfaceID(i), buf)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				if _, ok := r.Lookup(SurfaceID(i % 16)); !ok {
					t.Errorf("Lookup(%d) missed", i%16)
					return
				}
			}
		}()
	}
	wg.Wait()
}
