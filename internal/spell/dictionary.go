package spell

import "sync"

// Dictionary is a set of normalized words. It grows through Add and never
// shrinks. Scans hold the read lock end to end, so a concurrent Add is never
// observed mid-scan.
type Dictionary struct {
	mu    sync.RWMutex
	words map[string]struct{}
}

// NewDictionary returns an empty dictionary. An empty dictionary is valid:
// every checked word is misspelled and nothing can be suggested.
func NewDictionary() *Dictionary {
	return &Dictionary{words: make(map[string]struct{})}
}

// Add normalizes word and inserts it, reporting whether it was new. Words that
// normalize to the empty string are rejected.
func (d *Dictionary) Add(word string) bool {
	w := Normalize(word)
	if w == "" {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.words[w]; ok {
		return false
	}
	d.words[w] = struct{}{}
	return true
}

// AddAll inserts every word and returns how many were new.
func (d *Dictionary) AddAll(words []string) int {
	added := 0
	for _, w := range words {
		if d.Add(w) {
			added++
		}
	}
	return added
}

// Contains reports whether the dictionary holds w, which must already be
// normalized.
func (d *Dictionary) Contains(w string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.words[w]
	return ok
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}

// Words returns a snapshot of the dictionary contents in unspecified order.
func (d *Dictionary) Words() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	return out
}

// each calls fn for every word until fn returns false, holding the read lock
// for the duration of the scan. Iteration order is the map's.
func (d *Dictionary) each(fn func(word string) bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for w := range d.words {
		if !fn(w) {
			return
		}
	}
}
