package pattern

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/combigen/gen"
)

type parser struct {
	expr    string
	pattern []rune
	pos     int
	depth   int
	cfg     config
}

func newParser(expr string, cfg config) *parser {
	return &parser{expr: expr, pattern: []rune(expr), cfg: cfg}
}

func (p *parser) more() bool { return p.pos < len(p.pattern) }

func (p *parser) peekIs(r rune) bool { return p.more() && p.pattern[p.pos] == r }

func (p *parser) malformed(at int, format string, args ...any) *Error {
	return &Error{Kind: ErrMalformedPattern, Expr: p.expr, Offset: at, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) unsupported(at int, format string, args ...any) *Error {
	return &Error{Kind: ErrUnsupportedSyntax, Expr: p.expr, Offset: at, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parse() (*gen.Generator, error) {
	if p.peekIs('^') {
		p.pos++
	}
	g, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if p.more() {
		// parseConcatenation stops only at '|' or ')'; alternation eats '|'.
		return nil, p.malformed(p.pos, "unmatched ')'")
	}
	return g, nil
}

func (p *parser) parseAlternation() (*gen.Generator, error) {
	first, err := p.parseConcatenation()
	if err != nil {
		return nil, err
	}
	branches := []*gen.Generator{first}
	for p.peekIs('|') {
		p.pos++
		next, err := p.parseConcatenation()
		if err != nil {
			return nil, err
		}
		branches = append(branches, next)
	}
	if len(branches) == 1 {
		return first, nil
	}
	return gen.Alternation(branches...)
}

func (p *parser) parseConcatenation() (*gen.Generator, error) {
	var parts []*gen.Generator
	for p.more() {
		ch := p.pattern[p.pos]
		if ch == '|' || ch == ')' {
			break
		}
		if ch == '$' && p.pos == len(p.pattern)-1 && p.depth == 0 {
			p.pos++
			break
		}
		n, err := p.parseRepetition()
		if err != nil {
			return nil, err
		}
		parts = appendMerged(parts, n)
	}
	return gen.Concat(parts...)
}

// appendMerged joins n onto a trailing literal so "abc" compiles to one node.
func appendMerged(parts []*gen.Generator, n *gen.Generator) []*gen.Generator {
	if k := len(parts); k > 0 && n.Kind() == gen.KindLiteral && parts[k-1].Kind() == gen.KindLiteral {
		parts[k-1] = gen.Lit(parts[k-1].Text() + n.Text())
		return parts
	}
	return append(parts, n)
}

func isQuantifier(r rune) bool {
	return r == '?' || r == '*' || r == '+' || r == '{'
}

func (p *parser) parseRepetition() (*gen.Generator, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if !p.more() || !isQuantifier(p.pattern[p.pos]) {
		return atom, nil
	}

	at := p.pos
	var node *gen.Generator
	switch p.pattern[p.pos] {
	case '?':
		p.pos++
		node, err = gen.Optional(atom)
	case '*':
		p.pos++
		node, err = p.unbounded(atom, 0, at, "*")
	case '+':
		p.pos++
		node, err = p.unbounded(atom, 1, at, "+")
	case '{':
		node, err = p.parseCounted(atom)
	}
	if err != nil {
		return nil, err
	}

	// Lazy suffix changes matching, not the set of strings.
	if p.peekIs('?') {
		p.pos++
	} else if p.peekIs('+') {
		return nil, p.unsupported(p.pos, "possessive quantifier")
	}
	if p.more() && isQuantifier(p.pattern[p.pos]) {
		return nil, p.malformed(p.pos, "invalid nested repetition operator")
	}
	return node, nil
}

// unbounded applies the configured limit to *, + and {m,}.
func (p *parser) unbounded(atom *gen.Generator, min, at int, op string) (*gen.Generator, error) {
	if p.cfg.repeatLimit < 0 {
		return nil, p.unsupported(at, "unbounded repetition %s needs a repeat limit", op)
	}
	max := p.cfg.repeatLimit
	if max < min {
		max = min
	}
	log.Debugf("%s at offset %d bounded to {%d,%d}", op, at, min, max)
	return gen.Repeat(atom, min, max)
}

func (p *parser) parseCounted(atom *gen.Generator) (*gen.Generator, error) {
	open := p.pos
	p.pos++ // '{'
	min, ok, err := p.parseCount()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, p.malformed(open, "invalid repeat syntax")
	}
	max := min
	if p.peekIs(',') {
		p.pos++
		if p.peekIs('}') {
			p.pos++
			return p.unbounded(atom, min, open, fmt.Sprintf("{%d,}", min))
		}
		if max, ok, err = p.parseCount(); err != nil {
			return nil, err
		} else if !ok {
			return nil, p.malformed(open, "invalid repeat syntax")
		}
	}
	if !p.peekIs('}') {
		return nil, p.malformed(open, "invalid repeat syntax")
	}
	p.pos++
	if min > max {
		e := p.malformed(open, "invalid repeat count {%d,%d}", min, max)
		e.cause = gen.ErrInvalidBounds
		return nil, e
	}
	return gen.Repeat(atom, min, max)
}

// parseCount reads a decimal count. ok is false when no digit is present.
func (p *parser) parseCount() (n int, ok bool, err error) {
	start := p.pos
	for p.more() && p.pattern[p.pos] >= '0' && p.pattern[p.pos] <= '9' {
		n = n*10 + int(p.pattern[p.pos]-'0')
		if n > MaxRepeatCount {
			return 0, false, p.malformed(start, "repeat count exceeds %d", MaxRepeatCount)
		}
		p.pos++
	}
	return n, p.pos > start, nil
}

func (p *parser) parseAtom() (*gen.Generator, error) {
	ch := p.pattern[p.pos]
	switch ch {
	case '(':
		return p.parseGroup()
	case '[':
		return p.parseClass()
	case '.':
		p.pos++
		return gen.CharSet(p.cfg.universe)
	case '\\':
		return p.parseEscape()
	case '?', '*', '+', '{':
		return nil, p.malformed(p.pos, "missing argument to repetition operator %c", ch)
	case '^', '$':
		return nil, p.unsupported(p.pos, "anchor %c inside the expression", ch)
	default:
		p.pos++
		return gen.Char(ch), nil
	}
}

func (p *parser) parseGroup() (*gen.Generator, error) {
	open := p.pos
	p.pos++ // '('
	if p.peekIs('?') {
		rest := string(p.pattern[p.pos:])
		switch {
		case strings.HasPrefix(rest, "?:"):
			p.pos += 2
		case strings.HasPrefix(rest, "?="), strings.HasPrefix(rest, "?!"),
			strings.HasPrefix(rest, "?<="), strings.HasPrefix(rest, "?<!"):
			return nil, p.unsupported(open, "lookaround")
		case strings.HasPrefix(rest, "?P<"), strings.HasPrefix(rest, "?<"):
			return nil, p.unsupported(open, "named group")
		case rest == "?":
			return nil, p.malformed(open, "missing closing )")
		default:
			return nil, p.unsupported(open, "inline flags")
		}
	}
	p.depth++
	inner, err := p.parseAlternation()
	p.depth--
	if err != nil {
		return nil, err
	}
	if !p.peekIs(')') {
		return nil, p.malformed(open, "missing closing )")
	}
	p.pos++
	return inner, nil
}

func (p *parser) parseEscape() (*gen.Generator, error) {
	start := p.pos
	p.pos++ // '\'
	if !p.more() {
		return nil, p.malformed(start, "trailing backslash")
	}
	c := p.pattern[p.pos]
	if members, ok := perlClass(c, p.cfg.universe); ok {
		p.pos++
		if len(members) == 0 {
			return nil, p.malformed(start, "\\%c is empty in this universe", c)
		}
		return gen.CharSet(members)
	}
	switch {
	case c >= '1' && c <= '9', c == 'k':
		return nil, p.unsupported(start, "backreference")
	case strings.ContainsRune("bBAzZG", c):
		return nil, p.unsupported(start, "anchor \\%c", c)
	case c == 'p' || c == 'P':
		return nil, p.unsupported(start, "unicode class \\%c", c)
	}
	r, err := p.escapedRune(start)
	if err != nil {
		return nil, err
	}
	return gen.Char(r), nil
}

// escapedRune decodes the escape whose letter is at p.pos; start is the
// offset of the backslash.
func (p *parser) escapedRune(start int) (rune, error) {
	c := p.pattern[p.pos]
	p.pos++
	switch c {
	case 't':
		return '\t', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 'f':
		return '\f', nil
	case 'v':
		return '\v', nil
	case 'x':
		if p.pos+2 > len(p.pattern) {
			return 0, p.malformed(start, "invalid escape \\x")
		}
		hi, ok1 := hexVal(p.pattern[p.pos])
		lo, ok2 := hexVal(p.pattern[p.pos+1])
		if !ok1 || !ok2 {
			return 0, p.malformed(start, "invalid escape \\x")
		}
		p.pos += 2
		return rune(hi<<4 | lo), nil
	}
	if c < 0x80 && c > ' ' && !isAlnum(c) {
		return c, nil
	}
	return 0, p.malformed(start, "invalid escape \\%c", c)
}

func hexVal(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}

func isAlnum(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func (p *parser) parseClass() (*gen.Generator, error) {
	open := p.pos
	p.pos++ // '['
	negate := false
	if p.peekIs('^') {
		negate = true
		p.pos++
	}
	var members []rune
	for first := true; ; first = false {
		if !p.more() {
			return nil, p.malformed(open, "missing closing ]")
		}
		if p.pattern[p.pos] == ']' && !first {
			p.pos++
			break
		}
		lo, set, err := p.classItem()
		if err != nil {
			return nil, err
		}
		if set != nil {
			members = append(members, set...)
			continue
		}
		if p.peekIs('-') && p.pos+1 < len(p.pattern) && p.pattern[p.pos+1] != ']' {
			p.pos++ // '-'
			at := p.pos
			hi, set, err := p.classItem()
			if err != nil {
				return nil, err
			}
			if set != nil || hi < lo {
				return nil, p.malformed(at, "invalid character class range")
			}
			for r := lo; r <= hi; r++ {
				members = append(members, r)
			}
			continue
		}
		members = append(members, lo)
	}
	if negate {
		members = complement(p.cfg.universe, members)
	}
	if len(members) == 0 {
		return nil, p.malformed(open, "empty character class")
	}
	return gen.CharSet(members)
}

// classItem reads one class member. A perl class is returned in set.
func (p *parser) classItem() (r rune, set []rune, err error) {
	c := p.pattern[p.pos]
	if c != '\\' {
		p.pos++
		return c, nil, nil
	}
	start := p.pos
	p.pos++
	if !p.more() {
		return 0, nil, p.malformed(start, "trailing backslash")
	}
	if members, ok := perlClass(p.pattern[p.pos], p.cfg.universe); ok {
		p.pos++
		return 0, members, nil
	}
	r, err = p.escapedRune(start)
	return r, nil, err
}
