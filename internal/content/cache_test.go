package content

import (
	"testing"
	"time"
)

func TestCacheGetMissThenHit(t *testing.T) {
	c := NewCache(time.Minute)

	if _, ok := c.Get(pageKey("pt-br")); ok {
		t.Fatal("expected miss on empty cache")
	}

	m := Map{"Header": {"ctaButtonText": "Go"}}
	c.Set(pageKey("pt-br"), m)

	got, ok := c.Get(pageKey("pt-br"))
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if got.Get("Header", "ctaButtonText") != "Go" {
		t.Fatalf("wrong cached value: %q", got.Get("Header", "ctaButtonText"))
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	c := NewCache(10 * time.Millisecond)
	c.Set("k", Map{})

	if _, ok := c.Get("k"); !ok {
		t.Fatal("expected hit before expiry")
	}
	time.Sleep(25 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected miss after TTL")
	}
}

func TestCacheZeroTTLNeverExpires(t *testing.T) {
	c := NewCache(0)
	c.Set("k", Map{})
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("zero TTL entry should not expire")
	}
}

func TestCacheInvalidateAll(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set(pageKey("pt-br"), Map{})
	c.Set(productKey("pt-br", "foto-rg"), Map{})

	c.InvalidateAll()
	if c.Len() != 0 {
		t.Fatalf("InvalidateAll left %d entries", c.Len())
	}
	if _, ok := c.Get(pageKey("pt-br")); ok {
		t.Fatal("flushed key should miss")
	}
}

func TestMapCloneIsDeep(t *testing.T) {
	orig := Map{"Header": {"ctaButtonText": "A"}}
	cl := orig.Clone()
	cl["Header"]["ctaButtonText"] = "B"

	if orig.Get("Header", "ctaButtonText") != "A" {
		t.Fatal("mutating a clone changed the original")
	}
}
