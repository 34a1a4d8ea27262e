package gen

import (
	"fmt"
	"iter"
	"math/big"
	"strings"
)

const methodAll = "All"

// All returns a lazy sequence of every production, index 0 first. Each
// range over the returned sequence starts from index 0 with its own
// cursor, so the sequence can be replayed and ranged concurrently.
// Stopping the range early stops decoding. Fails with ErrEmptySpace when
// there is nothing to enumerate.
func (g *Generator) All() (iter.Seq[string], error) {
	seq2, err := g.Values()
	if err != nil {
		return nil, err
	}
	return func(yield func(string) bool) {
		for _, s := range seq2 {
			if !yield(s) {
				return
			}
		}
	}, nil
}

// Values is All with the index of each production. The yielded index is
// owned by the consumer.
func (g *Generator) Values() (iter.Seq2[*big.Int, string], error) {
	size := g.measured().size
	if size.Sign() == 0 {
		return nil, fmt.Errorf("%s: %w", methodAll, ErrEmptySpace)
	}
	return func(yield func(*big.Int, string) bool) {
		var sb strings.Builder
		sink := func(part string) { sb.WriteString(part) }
		for i := new(big.Int); i.Cmp(size) < 0; i.Add(i, bigOne) {
			sb.Reset()
			g.emit(i, sink)
			if !yield(new(big.Int).Set(i), sb.String()) {
				return
			}
		}
	}, nil
}

// Iterator is an explicit cursor over a generator's productions, for
// callers that cannot use range-over-func. It is not safe for concurrent
// use; create one per goroutine.
//
//	it, err := gen.NewIterator(g)
//	for it.Next() {
//		fmt.Println(it.Index(), it.Value())
//	}
type Iterator struct {
	g     *Generator
	size  *big.Int
	next  *big.Int // index the following Next call decodes
	cur   *big.Int
	value string
}

// NewIterator returns an Iterator positioned before index 0.
// Fails with ErrEmptySpace when g has no members.
func NewIterator(g *Generator) (*Iterator, error) {
	if g == nil {
		return nil, fmt.Errorf("NewIterator: %w", ErrNilGenerator)
	}
	size := g.measured().size
	if size.Sign() == 0 {
		return nil, fmt.Errorf("NewIterator: %w", ErrEmptySpace)
	}
	return &Iterator{g: g, size: size, next: new(big.Int)}, nil
}

// Next decodes the following production and reports whether there was one.
func (it *Iterator) Next() bool {
	if it.next.Cmp(it.size) >= 0 {
		return false
	}
	var sb strings.Builder
	it.g.emit(it.next, func(part string) { sb.WriteString(part) })
	it.cur = new(big.Int).Set(it.next)
	it.value = sb.String()
	it.next.Add(it.next, bigOne)
	return true
}

// Value returns the production decoded by the last successful Next.
func (it *Iterator) Value() string { return it.value }

// Index returns a copy of the index of the current production, or nil
// before the first Next.
func (it *Iterator) Index() *big.Int {
	if it.cur == nil {
		return nil
	}
	return new(big.Int).Set(it.cur)
}

// Seek positions the iterator so the next call to Next decodes index.
func (it *Iterator) Seek(index *big.Int) error {
	if err := it.g.checkIndex("Seek", index); err != nil {
		return err
	}
	it.next.Set(index)
	it.cur, it.value = nil, ""
	return nil
}

// Reset rewinds the iterator to index 0.
func (it *Iterator) Reset() {
	it.next.SetInt64(0)
	it.cur, it.value = nil, ""
}
