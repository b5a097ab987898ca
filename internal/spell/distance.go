package spell

// Distance returns the Levenshtein edit distance between a and b: the minimum
// number of single-character insertions, deletions, and substitutions that turn
// a into b. Symmetric, zero exactly when a == b, and it satisfies the triangle
// inequality. The full DP table is reduced to two rolling rows, so memory is
// linear in the shorter operand while the result is unchanged.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = 1 + min(prev[j], curr[j-1], prev[j-1])
		}
		copy(prev, curr)
	}
	return prev[lb]
}
