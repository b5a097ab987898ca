// Package spell checks free-form text against a word dictionary and proposes
// corrections by edit distance. The pipeline is tokenize, normalize, test
// dictionary membership, and on a miss search the dictionary for the first
// word within the acceptance threshold, memoizing found matches in a
// suggestion cache.
package spell

import (
	"log/slog"
	"sort"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Misspelling pairs a misspelled normalized word with the index of the raw
// token it came from.
type Misspelling struct {
	Word  string `json:"word"`
	Index int    `json:"index"`
}

// Correction pairs a misspelled word with the suggestion found for it.
type Correction struct {
	Word       string `json:"word"`
	Suggestion string `json:"suggestion"`
}

// Stats is a snapshot of checker activity counters.
type Stats struct {
	Words        int   `json:"words"`
	CacheEntries int   `json:"cache_entries"`
	DictScans    int64 `json:"dict_scans"`
	CacheHits    int64 `json:"cache_hits"`
}

// Chooser resolves an interactive correction choice. Given the raw token and
// its ranked candidates it returns 1..len(candidates) to pick one; any other
// value keeps the token unchanged.
type Chooser func(token string, candidates []string) int

// Checker classifies words against a dictionary and proposes corrections
// within an edit distance threshold. Construct with NewChecker.
type Checker struct {
	dict          *Dictionary
	cache         *Cache
	threshold     int
	maxCandidates int
	distCacheSize int
	distCache     *lru.Cache[string, int]
	logger        *slog.Logger

	dictScans atomic.Int64
	cacheHits atomic.Int64
}

// NewChecker wires a checker to dict. The dictionary is borrowed: the caller
// keeps ownership and may keep adding words between checks.
func NewChecker(dict *Dictionary, opts ...Option) *Checker {
	c := &Checker{
		dict:          dict,
		threshold:     DefaultThreshold,
		maxCandidates: DefaultMaxCandidates,
		distCacheSize: DefaultDistanceCacheSize,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = NewCache()
	}
	if c.distCacheSize > 0 {
		c.distCache, _ = lru.New[string, int](c.distCacheSize)
	}
	return c
}

// distance memoizes Distance through a bounded LRU keyed by the word pair.
func (c *Checker) distance(a, b string) int {
	if c.distCache == nil {
		return Distance(a, b)
	}
	key := a + "\x00" + b
	if d, ok := c.distCache.Get(key); ok {
		return d
	}
	d := Distance(a, b)
	c.distCache.Add(key, d)
	return d
}

// Check tokenizes and normalizes text and returns the normalized words absent
// from the dictionary, in text order, duplicates retained.
func (c *Checker) Check(text string) []string {
	var misspelled []string
	for _, m := range c.CheckTokens(Tokenize(text)) {
		misspelled = append(misspelled, m.Word)
	}
	return misspelled
}

// CheckTokens classifies an already tokenized sequence, keeping the token
// index of each misspelled word for later substitution. Tokens that normalize
// to the empty string are skipped.
func (c *Checker) CheckTokens(tokens []string) []Misspelling {
	var out []Misspelling
	for i, tok := range tokens {
		w := Normalize(tok)
		if w == "" {
			continue
		}
		if !c.dict.Contains(w) {
			out = append(out, Misspelling{Word: w, Index: i})
		}
	}
	return out
}

// Suggest runs the cache-backed search for each word in order. Words with no
// correction within the threshold are left out of the result rather than
// reported with an empty suggestion.
func (c *Checker) Suggest(words []string) []Correction {
	var out []Correction
	for _, w := range words {
		if s, ok := c.LookupOrSearch(w); ok {
			out = append(out, Correction{Word: w, Suggestion: s})
		}
	}
	return out
}

// LookupOrSearch returns a correction for the misspelled normalized word. A
// cached suggestion is returned without touching the dictionary. Otherwise the
// dictionary is scanned and the first word within the threshold wins. Found
// matches are cached; misses are not, so a word added to the dictionary later
// is still reachable on the next call.
func (c *Checker) LookupOrSearch(word string) (string, bool) {
	if s, ok := c.cache.Get(word); ok {
		c.cacheHits.Add(1)
		return s, true
	}
	s, ok := c.scan(word)
	if ok {
		c.cache.Put(word, s)
	}
	return s, ok
}

// scan is the first-acceptable search: iteration order is the map's, and the
// first word within the threshold short-circuits the scan. Nothing guarantees
// the closest match wins when several words tie; that tradeoff buys early
// termination on large dictionaries.
func (c *Checker) scan(word string) (string, bool) {
	c.dictScans.Add(1)
	found := ""
	ok := false
	c.dict.each(func(entry string) bool {
		if c.distance(word, entry) <= c.threshold {
			found, ok = entry, true
			return false
		}
		return true
	})
	if ok {
		c.logger.Debug("suggestion found", "word", word, "suggestion", found)
	}
	return found, ok
}

// Candidates lists up to max dictionary words within the threshold of word,
// closest first, ties in lexical order. Unlike LookupOrSearch it always scans
// the whole dictionary and leaves the suggestion cache alone. A max of 0 falls
// back to the checker's configured cap.
func (c *Checker) Candidates(word string, max int) []string {
	if max <= 0 {
		max = c.maxCandidates
	}
	type scored struct {
		word string
		dist int
	}
	var within []scored
	c.dictScans.Add(1)
	c.dict.each(func(entry string) bool {
		if d := c.distance(word, entry); d <= c.threshold {
			within = append(within, scored{entry, d})
		}
		return true
	})
	sort.Slice(within, func(i, j int) bool {
		if within[i].dist != within[j].dist {
			return within[i].dist < within[j].dist
		}
		return within[i].word < within[j].word
	})
	if len(within) > max {
		within = within[:max]
	}
	out := make([]string, len(within))
	for i, s := range within {
		out[i] = s.word
	}
	return out
}

// candidatesFor feeds the correction flow: a cache hit is authoritative and
// yields that single candidate without a scan; otherwise a ranked scan runs
// and its best candidate is cached, mirroring the single-suggestion pipeline.
func (c *Checker) candidatesFor(word string) []string {
	if s, ok := c.cache.Get(word); ok {
		c.cacheHits.Add(1)
		return []string{s}
	}
	cands := c.Candidates(word, c.maxCandidates)
	if len(cands) > 0 {
		c.cache.Put(word, cands[0])
	}
	return cands
}

// CorrectText runs the interactive correction flow headlessly: each misspelled
// token is offered to choose together with its ranked candidates, selected
// replacements are substituted with the original token's casing, and the token
// stream is rejoined. The applied corrections are returned alongside the text.
func (c *Checker) CorrectText(text string, choose Chooser) (string, []Correction) {
	tokens := Tokenize(text)
	replacements := make(map[int]string)
	var applied []Correction
	for _, m := range c.CheckTokens(tokens) {
		cands := c.candidatesFor(m.Word)
		if len(cands) == 0 {
			continue
		}
		pick := choose(tokens[m.Index], cands)
		if pick < 1 || pick > len(cands) {
			continue
		}
		chosen := cands[pick-1]
		replacements[m.Index] = MatchCase(tokens[m.Index], chosen)
		applied = append(applied, Correction{Word: m.Word, Suggestion: chosen})
	}
	return Rewrite(tokens, replacements), applied
}

// PurgeCache drops all cached suggestions and returns how many were removed.
func (c *Checker) PurgeCache() int {
	n := c.cache.Purge()
	c.logger.Info("suggestion cache purged", "entries", n)
	return n
}

// Stats reports the current counter values.
func (c *Checker) Stats() Stats {
	return Stats{
		Words:        c.dict.Len(),
		CacheEntries: c.cache.Len(),
		DictScans:    c.dictScans.Load(),
		CacheHits:    c.cacheHits.Load(),
	}
}
