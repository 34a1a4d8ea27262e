package pattern

import "sort"

// Class alphabets, ascending.
var (
	printableASCII = runeRange(0x20, 0x7e)
	digitClass     = runeRange('0', '9')
	wordClass      = concatRunes(runeRange('0', '9'), runeRange('A', 'Z'), []rune{'_'}, runeRange('a', 'z'))
	spaceClass     = []rune{'\t', '\n', '\f', '\r', ' '}
)

func runeRange(lo, hi rune) []rune {
	out := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		out = append(out, r)
	}
	return out
}

func concatRunes(parts ...[]rune) []rune {
	var out []rune
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// sortedRunes returns rs sorted ascending without duplicates.
func sortedRunes(rs []rune) []rune {
	out := append([]rune(nil), rs...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	n := 0
	for i, r := range out {
		if i > 0 && r == out[n-1] {
			continue
		}
		out[n] = r
		n++
	}
	return out[:n]
}

// complement returns the runes of universe not in excluded, in universe order.
func complement(universe, excluded []rune) []rune {
	skip := make(map[rune]struct{}, len(excluded))
	for _, r := range excluded {
		skip[r] = struct{}{}
	}
	out := make([]rune, 0, len(universe))
	for _, r := range universe {
		if _, ok := skip[r]; !ok {
			out = append(out, r)
		}
	}
	return out
}

// perlClass resolves \d \w \s and their negations against universe.
// ok is false for any other letter.
func perlClass(c rune, universe []rune) (members []rune, ok bool) {
	switch c {
	case 'd':
		return digitClass, true
	case 'w':
		return wordClass, true
	case 's':
		return spaceClass, true
	case 'D':
		return complement(universe, digitClass), true
	case 'W':
		return complement(universe, wordClass), true
	case 'S':
		return complement(universe, spaceClass), true
	}
	return nil, false
}
