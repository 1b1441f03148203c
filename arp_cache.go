package net

import (
	"sort"
	"sync"
)

// An ARPEntry is a single hardware-to-protocol address binding.
type ARPEntry struct {
	HardwareAddr MAC
	ProtocolAddr IPv4
}

// An ARPCache is a table of address bindings learned from resolution
// traffic, mapping each hardware address to the protocol address it was
// last observed with. Keys are unique; re-inserting a key overwrites its
// binding. Entries are never evicted.
//
// The zero value is an empty cache ready for use. An ARPCache is safe for
// concurrent access: every operation runs under the cache's mutex, and no
// reference to an entry escapes the critical section.
type ARPCache struct {
	entries []ARPEntry // sorted by HardwareAddr

	mu sync.Mutex
}

// search returns the index at which hw is stored, or the index at which
// it would be inserted. Assumes c.mu is held.
func (c *ARPCache) search(hw MAC) int {
	return sort.Search(len(c.entries), func(i int) bool {
		return c.entries[i].HardwareAddr.Compare(hw) >= 0
	})
}

// Lookup returns a copy of the protocol address bound to hw. A miss is
// not an error; the second return value reports whether a binding exists.
func (c *ARPCache) Lookup(hw MAC) (IPv4, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.search(hw)
	if i < len(c.entries) && c.entries[i].HardwareAddr == hw {
		return c.entries[i].ProtocolAddr, true
	}
	return IPv4{}, false
}

// Insert binds hw to ip, overwriting any existing binding for hw.
func (c *ARPCache) Insert(hw MAC, ip IPv4) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.search(hw)
	if i < len(c.entries) && c.entries[i].HardwareAddr == hw {
		c.entries[i].ProtocolAddr = ip
		return
	}
	c.entries = append(c.entries, ARPEntry{})
	copy(c.entries[i+1:], c.entries[i:])
	c.entries[i] = ARPEntry{HardwareAddr: hw, ProtocolAddr: ip}
}

// Len returns the number of bindings in the cache.
func (c *ARPCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Entries returns a copy of the cache's bindings in ascending key order.
func (c *ARPCache) Entries() []ARPEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	entries := make([]ARPEntry, len(c.entries))
	copy(entries, c.entries)
	return entries
}
