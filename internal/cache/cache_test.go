package cache

import (
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := New[string](time.Minute)

	c.Set("a", "one")
	if v, ok := c.Get("a"); !ok || v != "one" {
		t.Errorf("Get(a) = %q, %v", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) reported a hit")
	}
}

func TestExpiry(t *testing.T) {
	c := New[int](time.Minute)
	base := time.Now()
	c.now = func() time.Time { return base }

	c.Set("k", 42)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("entry missing before expiry")
	}

	c.now = func() time.Time { return base.Add(time.Minute + time.Second) }
	if _, ok := c.Get("k"); ok {
		t.Error("expired entry still returned")
	}
}

func TestDeletePrefix(t *testing.T) {
	c := New[int](time.Minute)
	c.Set(Key("budget", "event-1"), 1)
	c.Set(Key("budget", "event-2"), 2)
	c.Set(Key("other", "event-1"), 3)

	if n := c.DeletePrefix("budget:"); n != 2 {
		t.Errorf("DeletePrefix removed %d, want 2", n)
	}
	if _, ok := c.Get(Key("other", "event-1")); !ok {
		t.Error("unrelated entry was removed")
	}
}

func TestSweep(t *testing.T) {
	c := New[int](time.Minute)
	base := time.Now()
	c.now = func() time.Time { return base }

	c.Set("old", 1)
	c.now = func() time.Time { return base.Add(2 * time.Minute) }
	c.Set("fresh", 2)

	if n := c.Sweep(); n != 1 {
		t.Errorf("Sweep removed %d, want 1", n)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestKey(t *testing.T) {
	if got := Key("budget", "ev-1"); got != "budget:ev-1" {
		t.Errorf("Key = %q", got)
	}
}
