package gen

import (
	"fmt"
	"strings"
)

// String renders g in the pattern syntax accepted by package pattern, such
// that compiling the result yields a generator with the same size and the
// same production at every index. Two cases are lossy: a Transform renders
// as its inner generator (the function has no textual form), and the empty
// alternation renders as "(?!)", which the pattern compiler rejects.
// Repetition counts never exceed MaxRepeat, the compiler's own limit.
func (g *Generator) String() string {
	var sb strings.Builder
	g.render(&sb)
	return sb.String()
}

func (g *Generator) render(sb *strings.Builder) {
	switch g.kind {
	case KindEmpty:

	case KindLiteral:
		for _, r := range g.text {
			writeRune(sb, r, false)
		}

	case KindCharSet:
		writeCharSet(sb, g.alphabet)

	case KindSequence:
		g.children[0].render(sb)
		g.children[1].render(sb)

	case KindAlternation:
		if len(g.children) == 0 {
			sb.WriteString("(?!)")
			return
		}
		sb.WriteByte('(')
		for i, c := range g.children {
			if i > 0 {
				sb.WriteByte('|')
			}
			c.render(sb)
		}
		sb.WriteByte(')')

	case KindRepeat:
		g.inner().renderAtom(sb)
		if g.min == g.max {
			fmt.Fprintf(sb, "{%d}", g.min)
		} else {
			fmt.Fprintf(sb, "{%d,%d}", g.min, g.max)
		}

	case KindOptional:
		g.inner().renderAtom(sb)
		sb.WriteByte('?')

	case KindTransform:
		g.inner().render(sb)
	}
}

// renderAtom renders g so that a following quantifier applies to all of it.
func (g *Generator) renderAtom(sb *strings.Builder) {
	switch {
	case g.kind == KindTransform:
		g.inner().renderAtom(sb)
	case g.kind == KindCharSet, g.kind == KindAlternation:
		g.render(sb)
	case g.kind == KindLiteral && len([]rune(g.text)) == 1:
		g.render(sb)
	default:
		sb.WriteByte('(')
		g.render(sb)
		sb.WriteByte(')')
	}
}

// writeCharSet renders an alphabet as a single escaped rune, \d, or a
// bracket class whose ascending runs of three or more become ranges.
func writeCharSet(sb *strings.Builder, alpha []rune) {
	if len(alpha) == 1 {
		writeRune(sb, alpha[0], false)
		return
	}
	if isDigitAlphabet(alpha) {
		sb.WriteString(`\d`)
		return
	}
	sb.WriteByte('[')
	for i := 0; i < len(alpha); {
		j := i
		for j+1 < len(alpha) && alpha[j+1] == alpha[j]+1 {
			j++
		}
		if j-i >= 2 {
			writeRune(sb, alpha[i], true)
			sb.WriteByte('-')
			writeRune(sb, alpha[j], true)
			i = j + 1
			continue
		}
		writeRune(sb, alpha[i], true)
		i++
	}
	sb.WriteByte(']')
}

// writeRune writes r escaped for use outside or inside a bracket class.
func writeRune(sb *strings.Builder, r rune, inClass bool) {
	switch r {
	case '\t':
		sb.WriteString(`\t`)
		return
	case '\n':
		sb.WriteString(`\n`)
		return
	case '\r':
		sb.WriteString(`\r`)
		return
	case '\f':
		sb.WriteString(`\f`)
		return
	case '\v':
		sb.WriteString(`\v`)
		return
	}
	if r < 0x20 || r == 0x7f {
		fmt.Fprintf(sb, `\x%02X`, r)
		return
	}
	special := `\.+*?()|[]{}^$`
	if inClass {
		special = `\]-[^`
	}
	if strings.ContainsRune(special, r) {
		sb.WriteByte('\\')
	}
	sb.WriteRune(r)
}
