package bktree

// Levenshtein returns the edit distance between a and b: the minimum number
// of single-rune insertions, deletions and substitutions that transform one
// into the other. It satisfies the Metric contract and serves as the
// reference metric for trees over strings.
func Levenshtein(a, b string) int {
	source, target := []rune(a), []rune(b)

	// the shorter sequence drives the row width, keeping working memory
	// proportional to min(len(a), len(b))
	if len(source) > len(target) {
		source, target = target, source
	}

	row := make([]int, len(source)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(target); j++ {
		diagonal := row[0]
		row[0] = j
		for i := 1; i <= len(source); i++ {
			save := row[i]
			if source[i-1] == target[j-1] {
				row[i] = diagonal
			} else {
				row[i] = min(row[i-1], row[i], diagonal) + 1
			}
			diagonal = save
		}
	}

	return row[len(source)]
}
