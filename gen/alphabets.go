package gen

// Predefined alphabets, in index order.
const (
	digits     = "0123456789"
	lowerAlpha = "abcdefghijklmnopqrstuvwxyz"
	upperAlpha = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alnum      = lowerAlpha + digits
)

// Shared leaves. Generators are immutable, so one instance per alphabet is
// handed to every caller and its measure is computed once per process.
var (
	digitGen      = newCharSet([]rune(digits))
	lowerAlphaGen = newCharSet([]rune(lowerAlpha))
	upperAlphaGen = newCharSet([]rune(upperAlpha))
	alnumGen      = newCharSet([]rune(alnum))
	emptyGen      = &Generator{kind: KindEmpty}
)

// Digit produces one of "0".."9" (10 members).
func Digit() *Generator { return digitGen }

// AlphaLower produces one of "a".."z" (26 members).
func AlphaLower() *Generator { return lowerAlphaGen }

// AlphaUpper produces one of "A".."Z" (26 members).
func AlphaUpper() *Generator { return upperAlphaGen }

// AlNum produces one of "a".."z" followed by "0".."9" (36 members).
func AlNum() *Generator { return alnumGen }

// isDigitAlphabet reports whether rs is exactly the Digit alphabet in order.
func isDigitAlphabet(rs []rune) bool {
	if len(rs) != len(digits) {
		return false
	}
	for i, r := range rs {
		if r != rune('0'+i) {
			return false
		}
	}
	return true
}
