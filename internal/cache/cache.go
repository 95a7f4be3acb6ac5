// Package cache memoizes a Document keyed by the SHA-256 of the source text,
// the way server/dao/sqlite stores game state: a REZI-encoded byte blob,
// decoded back into the same Go struct on lookup. hxl.CheckSyntax stores the
// post-Transformer Document of a clean run, so re-checking the same source (a
// common case for a CLI watch-and-recheck loop, or a REPL that re-evaluates an
// unchanged buffer) skips tokenizing, parsing, analysis and transformation.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/dekarrin/rezi"

	"github.com/hxlconf/hxl/internal/ast"
)

// Cache is a Document cache safe for concurrent use. The zero value is ready
// to use.
type Cache struct {
	mu    sync.RWMutex
	store map[string][]byte
}

// KeyFor returns the cache key for a given source text.
func KeyFor(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Get looks up a previously stored Document by source text. ok is false on a
// miss or if the stored blob fails to decode.
func (c *Cache) Get(source string) (doc ast.Document, ok bool) {
	c.mu.RLock()
	blob, found := c.store[KeyFor(source)]
	c.mu.RUnlock()
	if !found {
		return ast.Document{}, false
	}

	n, err := rezi.DecBinary(blob, &doc)
	if err != nil || n != len(blob) {
		return ast.Document{}, false
	}
	return doc, true
}

// Put stores doc under the key derived from source text.
func (c *Cache) Put(source string, doc ast.Document) {
	blob := rezi.EncBinary(doc)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = make(map[string][]byte)
	}
	c.store[KeyFor(source)] = blob
}
