package data

import (
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
)

func TestCacheRepo(t *testing.T) {
	c := newCacheRepo(16, time.Minute, log.DefaultLogger)
	c.Set("price:Cu", 1)
	c.Set("news:Cu:news:en", 2)
	c.Set("news:Cu:mining:zh", 3)
	c.Set("price:Au", 4)

	if v, ok := c.Get("price:Cu"); !ok || v.(int) != 1 {
		t.Errorf("expected cached value, got %v %v", v, ok)
	}
	if n := c.DeleteSymbol("Cu"); n != 3 {
		t.Errorf("expected 3 removed, got %d", n)
	}
	if _, ok := c.Get("news:Cu:news:en"); ok {
		t.Error("news entry should be removed")
	}
	if _, ok := c.Get("price:Au"); !ok {
		t.Error("other symbols should stay")
	}

	c.Purge()
	if _, ok := c.Get("price:Au"); ok {
		t.Error("purge should remove everything")
	}
}

func TestCacheRepoExpires(t *testing.T) {
	c := newCacheRepo(16, 20*time.Millisecond, log.DefaultLogger)
	c.Set("price:Ag", 1)
	time.Sleep(60 * time.Millisecond)
	if _, ok := c.Get("price:Ag"); ok {
		t.Error("entry should expire")
	}
}
