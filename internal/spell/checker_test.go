package spell

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDictionary(words ...string) *Dictionary {
	d := NewDictionary()
	d.AddAll(words)
	return d
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		dict []string
		text string
		want []string
	}{
		{
			name: "nothing misspelled",
			dict: []string{"the", "quick", "brown", "fox"},
			text: "The quick brown fox",
			want: nil,
		},
		{
			name: "misspellings in order, normalized",
			dict: []string{"the", "quick", "fox"},
			text: "Teh quikc fox",
			want: []string{"teh", "quikc"},
		},
		{
			name: "duplicates retained",
			dict: []string{"fox"},
			text: "teh fox teh teh",
			want: []string{"teh", "teh", "teh"},
		},
		{
			name: "punctuation and digit tokens skipped",
			dict: []string{"stop"},
			text: "stop! 42 ?!",
			want: nil,
		},
		{
			name: "case folds before lookup",
			dict: []string{"the"},
			text: "The THE the",
			want: nil,
		},
		{
			name: "empty text",
			dict: []string{"the"},
			text: "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChecker(testDictionary(tt.dict...))
			got := c.Check(tt.text)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckTokens(t *testing.T) {
	c := NewChecker(testDictionary("quick", "fox"))
	got := c.CheckTokens([]string{"Teh", ",", "quick", "foxx", "!"})
	assert.Equal(t, []Misspelling{
		{Word: "teh", Index: 0},
		{Word: "foxx", Index: 3},
	}, got)
}

func TestCheckAgainstEmptyDictionary(t *testing.T) {
	c := NewChecker(NewDictionary())
	assert.Equal(t, []string{"anything", "at", "all"}, c.Check("anything at all"))
	assert.Empty(t, c.Suggest([]string{"anything"}), "nothing can be suggested")
}

func TestSuggest(t *testing.T) {
	c := NewChecker(testDictionary("the", "quick", "fox"))
	got := c.Suggest([]string{"teh", "zzzzzzzzzz", "quikc"})
	assert.Equal(t, []Correction{
		{Word: "teh", Suggestion: "the"},
		{Word: "quikc", Suggestion: "quick"},
	}, got, "unsuggestable words are omitted, order otherwise preserved")
}

func TestLookupOrSearchCachesHits(t *testing.T) {
	c := NewChecker(testDictionary("the", "quick", "fox"))

	first, ok := c.LookupOrSearch("teh")
	require.True(t, ok)
	require.Equal(t, "the", first)
	require.Equal(t, int64(1), c.Stats().DictScans)

	second, ok := c.LookupOrSearch("teh")
	assert.True(t, ok)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), c.Stats().DictScans, "cache hit must not rescan")
	assert.Equal(t, int64(1), c.Stats().CacheHits)
}

func TestLookupOrSearchDoesNotCacheMisses(t *testing.T) {
	dict := testDictionary("fox")
	c := NewChecker(dict)

	_, ok := c.LookupOrSearch("grean")
	require.False(t, ok)
	require.Equal(t, 0, c.Stats().CacheEntries, "a miss is not cached")

	_, ok = c.LookupOrSearch("grean")
	require.False(t, ok)
	require.Equal(t, int64(2), c.Stats().DictScans, "each miss rescans")

	// A word added later must become reachable.
	dict.Add("green")
	got, ok := c.LookupOrSearch("grean")
	assert.True(t, ok)
	assert.Equal(t, "green", got)
}

func TestPurgeCacheForcesRescan(t *testing.T) {
	c := NewChecker(testDictionary("the"), WithLogger(quietLogger()))

	_, ok := c.LookupOrSearch("teh")
	require.True(t, ok)
	require.Equal(t, 1, c.Stats().CacheEntries)

	assert.Equal(t, 1, c.PurgeCache())
	assert.Equal(t, 0, c.Stats().CacheEntries)

	_, ok = c.LookupOrSearch("teh")
	require.True(t, ok)
	assert.Equal(t, int64(2), c.Stats().DictScans, "purged entry triggers a fresh scan")
}

func TestSharedCache(t *testing.T) {
	shared := NewCache()
	dict := testDictionary("the", "quick", "fox")
	a := NewChecker(dict, WithCache(shared))
	b := NewChecker(dict, WithCache(shared))

	_, ok := a.LookupOrSearch("teh")
	require.True(t, ok)

	got, ok := b.LookupOrSearch("teh")
	assert.True(t, ok)
	assert.Equal(t, "the", got)
	assert.Equal(t, int64(0), b.Stats().DictScans, "second checker rides the shared cache")
}

func TestWithThreshold(t *testing.T) {
	c := NewChecker(testDictionary("the"), WithThreshold(1))
	_, ok := c.LookupOrSearch("teh")
	assert.False(t, ok, "distance 2 is out of reach at threshold 1")

	c = NewChecker(testDictionary("the"), WithThreshold(2))
	got, ok := c.LookupOrSearch("teh")
	assert.True(t, ok)
	assert.Equal(t, "the", got)
}

func TestCandidatesRanking(t *testing.T) {
	c := NewChecker(testDictionary("cat", "cart", "card", "apple"))

	// "cat" and "cart" are both one edit away, so the tie falls to lexical
	// order; "card" follows at two edits and "apple" is out of reach.
	assert.Equal(t, []string{"cart", "cat", "card"}, c.Candidates("catt", 5),
		"closest first, ties lexical")
	assert.Equal(t, []string{"cart", "cat"}, c.Candidates("catt", 2), "cap respected")
	assert.Empty(t, c.Candidates("zzzzzzzzzz", 5))
	assert.Equal(t, 0, c.Stats().CacheEntries, "candidate listing leaves the cache alone")
}

func TestCandidatesDefaultCap(t *testing.T) {
	c := NewChecker(testDictionary("aa", "ab", "ac", "ad", "ae", "af", "ag"), WithMaxCandidates(3))
	got := c.Candidates("a", 0)
	assert.Len(t, got, 3)
}

func TestCorrectText(t *testing.T) {
	dict := testDictionary("the", "quick", "fox", "jumps")
	c := NewChecker(dict)

	var prompted []string
	choose := func(token string, candidates []string) int {
		prompted = append(prompted, token)
		return 1
	}

	out, applied := c.CorrectText("Teh quikc fox jumps!", choose)
	assert.Equal(t, "The quick fox jumps!", out, "case preserved, punctuation reattached")
	assert.Equal(t, []Correction{
		{Word: "teh", Suggestion: "the"},
		{Word: "quikc", Suggestion: "quick"},
	}, applied)
	assert.Equal(t, []string{"Teh", "quikc"}, prompted)
}

func TestCorrectTextLeadingPunctuation(t *testing.T) {
	c := NewChecker(testDictionary("the", "quick", "fox"))

	choose := func(string, []string) int { return 1 }
	out, applied := c.CorrectText("(teh quick fox", choose)
	assert.Equal(t, "the quick fox", out, "punctuation before a lowercase token must not title-case the replacement")
	assert.Equal(t, []Correction{{Word: "teh", Suggestion: "the"}}, applied)
}

func TestCorrectTextSkip(t *testing.T) {
	c := NewChecker(testDictionary("the", "quick", "fox"))

	skip := func(string, []string) int { return 0 }
	out, applied := c.CorrectText("Teh quikc fox.", skip)
	assert.Equal(t, "Teh quikc fox.", out, "skipping keeps tokens unchanged")
	assert.Empty(t, applied)

	outOfRange := func(string, []string) int { return 99 }
	out, applied = c.CorrectText("Teh fox.", outOfRange)
	assert.Equal(t, "Teh fox.", out, "out-of-range choice counts as skip")
	assert.Empty(t, applied)
}

func TestCorrectTextSkipsUnsuggestable(t *testing.T) {
	c := NewChecker(testDictionary("fox"))

	called := 0
	choose := func(string, []string) int {
		called++
		return 1
	}
	out, applied := c.CorrectText("zzzzzzzzzz fox", choose)
	assert.Equal(t, "zzzzzzzzzz fox", out)
	assert.Empty(t, applied)
	assert.Zero(t, called, "no prompt without candidates")
}

func TestCorrectTextUsesCachedSuggestion(t *testing.T) {
	c := NewChecker(testDictionary("the", "then"))

	_, ok := c.LookupOrSearch("teh")
	require.True(t, ok)
	cached, _ := c.LookupOrSearch("teh")

	var offered []string
	choose := func(_ string, candidates []string) int {
		offered = candidates
		return 1
	}
	_, applied := c.CorrectText("teh", choose)
	require.Len(t, offered, 1, "cache hit offers exactly the pinned suggestion")
	assert.Equal(t, cached, offered[0])
	require.Len(t, applied, 1)
	assert.Equal(t, cached, applied[0].Suggestion)
}

func TestCorrectTextPopulatesCache(t *testing.T) {
	c := NewChecker(testDictionary("the", "then"))

	choose := func(string, []string) int { return 0 }
	_, _ = c.CorrectText("teh", choose)
	require.Equal(t, 1, c.Stats().CacheEntries, "scan result is cached even when skipped")

	got, ok := c.LookupOrSearch("teh")
	assert.True(t, ok)
	assert.Equal(t, "the", got, "ranked scan pins its best candidate")
	assert.Equal(t, int64(1), c.Stats().DictScans, "follow-up lookup is a cache hit")
}

func TestCheckerWithoutDistanceCache(t *testing.T) {
	c := NewChecker(testDictionary("the", "quick", "fox"), WithDistanceCache(0))
	got, ok := c.LookupOrSearch("teh")
	assert.True(t, ok)
	assert.Equal(t, "the", got)
}

func TestStats(t *testing.T) {
	c := NewChecker(testDictionary("the", "quick", "fox"))
	_ = c.Suggest([]string{"teh", "teh"})

	s := c.Stats()
	assert.Equal(t, 3, s.Words)
	assert.Equal(t, 1, s.CacheEntries)
	assert.Equal(t, int64(1), s.DictScans)
	assert.Equal(t, int64(1), s.CacheHits)
}

func TestRewrite(t *testing.T) {
	tokens := []string{"Teh", ",", "quikc", "fox", "!"}

	assert.Equal(t, "Teh, quikc fox!", JoinTokens(tokens))
	assert.Equal(t, "The, quick fox!", Rewrite(tokens, map[int]string{0: "The", 2: "quick"}))
	assert.Equal(t, "", JoinTokens(nil))
}

func TestTokenizeRewriteRoundTrip(t *testing.T) {
	for _, text := range []string{
		"Hello, world!",
		"the quick brown fox.",
		"no punctuation here",
	} {
		assert.Equal(t, text, JoinTokens(Tokenize(text)), "single-spaced text survives the round trip")
	}

	// The rejoin rule is lossy for free-standing punctuation: the space in
	// front of it is not restored.
	assert.Equal(t, "really?", JoinTokens(Tokenize("really ?")))
}
