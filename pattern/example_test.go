package pattern_test

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/combigen/pattern"
)

func ExampleCompile() {
	g, err := pattern.Compile(`(N|E|S|W) St`)
	if err != nil {
		panic(err)
	}
	fmt.Println(g.Size())
	seq, _ := g.All()
	for s := range seq {
		fmt.Println(s)
	}
	// Output:
	// 4
	// N St
	// E St
	// S St
	// W St
}

func ExampleWithRepeatLimit() {
	_, err := pattern.Compile(`[ab]+`)
	fmt.Println(errors.Is(err, pattern.ErrUnsupportedSyntax))

	g := pattern.MustCompile(`[ab]+`, pattern.WithRepeatLimit(2))
	last, _ := g.Get(big.NewInt(5))
	fmt.Println(g.Size(), last)
	// Output:
	// true
	// 6 bb
}

func ExampleError() {
	_, err := pattern.Compile(`id-\d{4,2}`)
	fmt.Println(err)
	// Output:
	// pattern: malformed pattern: invalid repeat count {4,2} at offset 5 in "id-\\d{4,2}"
}
