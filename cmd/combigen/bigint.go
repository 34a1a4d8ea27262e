package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/pflag"
)

// bigIntValue is a pflag.Value holding a non-negative big integer. It
// accepts Go literal syntax: 123, 1_000_000, 0x1F, 0b101.
type bigIntValue struct {
	v *big.Int
}

var _ pflag.Value = (*bigIntValue)(nil)

func newBigIntValue(v *big.Int) *bigIntValue {
	return &bigIntValue{v: v}
}

func (b *bigIntValue) String() string {
	if b.v == nil {
		return "0"
	}
	return b.v.String()
}

func (b *bigIntValue) Set(s string) error {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return fmt.Errorf("invalid integer %q", s)
	}
	if n.Sign() < 0 {
		return fmt.Errorf("negative index %s", s)
	}
	b.v.Set(n)
	return nil
}

func (b *bigIntValue) Type() string { return "bigint" }
