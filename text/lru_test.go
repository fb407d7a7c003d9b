// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"strconv"
	"testing"
)

func TestLayoutLRU(t *testing.T) {
	c := new(layoutCache)
	put := func(i int) {
		c.Put(layoutKey{str: strconv.Itoa(i)}, nil)
	}
	get := func(i int) bool {
		_, ok := c.Get(layoutKey{str: strconv.Itoa(i)})
		return ok
	}
	testLRU(t, put, get)
}

func TestLayoutLRUReplace(t *testing.T) {
	c := new(layoutCache)
	k := layoutKey{str: "a"}
	c.Put(k, []Line{{Text: "a"}})
	c.Put(k, []Line{{Text: "b"}})
	if c.Len() != 1 {
		t.Fatalf("cache holds %d layouts after replacing a key", c.Len())
	}
	if lines, _ := c.Get(k); lines[0].Text != "b" {
		t.Errorf("got %q, want the replacement", lines[0].Text)
	}
}

func testLRU(t *testing.T, put func(i int), get func(i int) bool) {
	for i := 0; i < maxSize; i++ {
		put(i)
	}
	for i := 0; i < maxSize; i++ {
		if !get(i) {
			t.Fatalf("key %d was evicted", i)
		}
	}
	put(maxSize)
	for i := 1; i < maxSize+1; i++ {
		if !get(i) {
			t.Fatalf("key %d was evicted", i)
		}
	}
	if i := 0; get(i) {
		t.Fatalf("key %d was not evicted", i)
	}
}
