package secret

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestRegistry_BuiltinsPresent(t *testing.T) {
	reg := NewRegistry()

	list := reg.List()
	if len(list) < 2 {
		t.Fatalf("List() returned %d stores, want at least 2", len(list))
	}
	if list[0].Name != "env" || list[1].Name != "memory" {
		t.Fatalf("builtin order = [%q, %q], want [env, memory]", list[0].Name, list[1].Name)
	}
	for _, d := range list[:2] {
		if d.IsPlugin {
			t.Fatalf("builtin %q flagged as plugin", d.Name)
		}
		if d.Description == "" {
			t.Fatalf("builtin %q has no description", d.Name)
		}
	}
}

func TestRegistry_RegisterPlugin(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(newStubStore("custom", nil), WithDescription("test store")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	st, ok := reg.Lookup("custom")
	if !ok || st.Name() != "custom" {
		t.Fatalf("Lookup() = (%v, %v)", st, ok)
	}

	list := reg.List()
	last := list[len(list)-1]
	if last.Name != "custom" || !last.IsPlugin || last.Description != "test store" {
		t.Fatalf("plugin descriptor = %+v", last)
	}
}

func TestRegistry_PluginsListedInRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"p1", "p2", "p3"} {
		if err := reg.Register(newStubStore(name, nil)); err != nil {
			t.Fatalf("Register(%q) error = %v", name, err)
		}
	}

	list := reg.List()
	got := []string{list[2].Name, list[3].Name, list[4].Name}
	if got[0] != "p1" || got[1] != "p2" || got[2] != "p3" {
		t.Fatalf("plugin order = %v", got)
	}
}

func TestRegistry_DuplicateNameRejected(t *testing.T) {
	reg := NewRegistry()
	_ = reg.Register(newStubStore("dup", nil))

	if err := reg.Register(newStubStore("dup", nil)); !errors.Is(err, ErrDuplicateStore) {
		t.Fatalf("Register() duplicate error = %v, want ErrDuplicateStore", err)
	}
	// Built-in names are reserved.
	if err := reg.Register(newStubStore("env", nil)); !errors.Is(err, ErrDuplicateStore) {
		t.Fatalf("Register() over builtin error = %v, want ErrDuplicateStore", err)
	}
}

func TestRegistry_Unregister(t *testing.T) {
	reg := NewRegistry()
	_ = reg.Register(newStubStore("plugin", nil))

	if err := reg.Unregister("plugin"); err != nil {
		t.Fatalf("Unregister() error = %v", err)
	}
	if reg.Has("plugin") {
		t.Fatalf("store still registered after Unregister()")
	}

	if err := reg.Unregister("env"); !errors.Is(err, ErrBuiltinStore) {
		t.Fatalf("Unregister(env) error = %v, want ErrBuiltinStore", err)
	}
	if err := reg.Unregister("nope"); !errors.Is(err, ErrUnknownStore) {
		t.Fatalf("Unregister(nope) error = %v, want ErrUnknownStore", err)
	}
}

func TestRegistry_LookupUnknown(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Lookup("missing"); ok {
		t.Fatalf("Lookup(missing) = true")
	}
}

func TestRegistry_ListNeverExposesValues(t *testing.T) {
	reg := NewRegistry()
	mem, _ := reg.Lookup("memory")
	_ = mem.Set(context.Background(), "openai", "sk-very-secret")

	for _, d := range reg.List() {
		if d.Description == "sk-very-secret" || d.Name == "sk-very-secret" {
			t.Fatalf("descriptor leaked a secret value: %+v", d)
		}
	}
}

func TestRegistry_Availability(t *testing.T) {
	reg := NewRegistry()
	down := newStubStore("down", nil)
	down.available = false
	_ = reg.Register(down)
	_ = reg.Register(NewTimeoutStore(&slowStore{newStubStore("hung", nil)}, 20*time.Millisecond))

	got := reg.Availability(context.Background())

	if !got["env"] || !got["memory"] {
		t.Fatalf("builtins reported unavailable: %v", got)
	}
	if got["down"] {
		t.Fatalf("down store reported available")
	}
	if got["hung"] {
		t.Fatalf("hung store reported available")
	}
}

func TestRegistry_ConcurrentRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = reg.Register(newStubStore(fmt.Sprintf("p%d", i), nil))
		}(i)
		go func(i int) {
			defer wg.Done()
			// A lookup must never observe a half-registered store.
			if st, ok := reg.Lookup(fmt.Sprintf("p%d", i)); ok && st == nil {
				t.Errorf("Lookup observed nil store")
			}
			reg.List()
		}(i)
	}
	wg.Wait()

	if got := len(reg.List()); got != 10 {
		t.Fatalf("List() returned %d stores, want 10", got)
	}
}
