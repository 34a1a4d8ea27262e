package gen_test

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/combigen/gen"
)

// ExampleGenerator shows the iris space: a genus with an optional species.
func ExampleGenerator() {
	species := gen.OneOf("versicolor", "virginica", "setosa")
	iris := gen.Lit("iris").Then(gen.Lit(" ").Then(species).Optional())

	fmt.Println("size:", iris.Size())
	fmt.Println("pattern:", iris)

	all, _ := iris.All()
	for s := range all {
		fmt.Printf("%q\n", s)
	}

	// Output:
	// size: 4
	// pattern: iris( (versicolor|virginica|setosa))?
	// "iris versicolor"
	// "iris virginica"
	// "iris setosa"
	// "iris"
}

// ExampleGenerator_Get jumps straight to one member of a large space.
func ExampleGenerator_Get() {
	space := gen.Lit(" ")
	dir := space.Then(gen.OneOf("N", "E", "S", "W", "NE", "SE", "SW", "NW"))
	names := space.Then(gen.OneOf("Boren", "Olive", "Spring", "Cherry", "Seneca", "Yesler", "Madison", "James", "Union", "Mercer"))
	suffixes := space.Then(gen.OneOf("Rd", "St", "Ave", "Blvd", "Ln", "Dr", "Way", "Ct", "Pl"))
	number := gen.Must(gen.Repeat(gen.Digit(), 3, 5))

	address := gen.Must(gen.Concat(number, dir.Optional(), names, suffixes, dir.Optional()))
	fmt.Println(address.Size())

	s, _ := address.Get(big.NewInt(123_456_789))
	fmt.Println(s)

	// Output:
	// 809190000
	// 05935 N James Pl N
}

// ExampleGenerator_Visit streams the parts of one production.
func ExampleGenerator_Visit() {
	addr := gen.Must(gen.Concat(
		gen.OneOf("N", "E", "S", "W").Optional(),
		gen.Lit(" "),
		gen.Must(gen.Repeat(gen.Digit(), 3, 4)),
		gen.Lit(" "),
		gen.OneOf("Street", "Road", "Place"),
	))

	var parts []string
	_ = addr.Visit(big.NewInt(123456), func(p string) { parts = append(parts, p) })
	fmt.Printf("%q\n", parts)

	// Output:
	// ["W" " " "7" "1" "5" "2" " " "Street"]
}

// ExampleGenerator_Map adds ordinal suffixes; several indices may share
// an output, but Size still counts indices.
func ExampleGenerator_Map() {
	ordinal := func(s string) string {
		n := strings.TrimLeft(s, "0")
		if n == "" {
			n = "0"
		}
		switch n[len(n)-1] {
		case '1':
			return n + "st"
		case '2':
			return n + "nd"
		case '3':
			return n + "rd"
		}
		return n + "th"
	}
	floor := gen.Must(gen.Times(gen.Digit(), 2)).Map(ordinal)

	fmt.Println(floor.Size())
	for _, i := range []uint64{1, 2, 3, 42} {
		s, _ := floor.GetUint64(i)
		fmt.Println(s)
	}

	// Output:
	// 100
	// 1st
	// 2nd
	// 3rd
	// 42nd
}

// ExampleSampler draws reproducible samples with a fixed seed.
func ExampleSampler() {
	pin := gen.Must(gen.Times(gen.Digit(), 4))
	a := gen.NewSampler(gen.WithSeed(2024))
	b := gen.NewSampler(gen.WithSeed(2024))

	x, _ := a.Sample(pin)
	y, _ := b.Sample(pin)
	fmt.Println(len(x), x == y)

	// Output:
	// 4 true
}
