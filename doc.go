// Package combigen treats a set of strings as an indexed space: every member
// has an exact big-integer position, so the space can be sized, decoded at
// any index, enumerated lazily and sampled uniformly without ever being
// materialized.
//
// Under the hood the work is split across subpackages:
//
//	gen/       the generator tree: literals, character sets, sequence,
//	           alternation, bounded repetition, optional and transform nodes;
//	           exact sizes, index decoding, iteration and sampling
//	pattern/   compiles a bounded regular-expression syntax into gen trees
//	config/    combigen.toml: named patterns and their compile defaults
//	cmd/combigen   command-line front end (size, get, list, sample, visit, render)
//
// Quick example:
//
//	g := pattern.MustCompile(`(N|E|S|W) St`)
//	g.Size()                // 4
//	g.Get(big.NewInt(3))    // "W St", nil
//
// Indices never overflow: sizes like 95^40 are exact, and a decoded index
// costs time proportional to the tree, not to the size of the space.
//
//	go get github.com/katalvlaran/combigen
package combigen
