// Package powers generates the powers of a secret scalar in a group:
// g, s·g, s²·g, ... where g is the group generator.
package powers

import (
	"fmt"
	"iter"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/jsign/srs/group"
)

// Seq returns the infinite sequence g, s·g, s²·g, ... of g's generator.
// Ranging over it again restarts from the generator. Yielded elements are
// fresh and owned by the caller.
func Seq(g group.Group, s fr.Element) iter.Seq[group.Element] {
	return func(yield func(group.Element) bool) {
		gen := g.Generator()
		var acc fr.Element
		defer acc.SetZero()

		acc.SetOne()
		if !yield(g.CreateElement().Set(gen)) {
			return
		}
		for {
			acc.Mul(&acc, &s)
			if !yield(g.CreateElement().ScalarMultiplication(gen, acc)) {
				return
			}
		}
	}
}

// Take returns the first n elements of Seq(g, s).
func Take(g group.Group, s fr.Element, n int) []group.Element {
	if n < 0 {
		panic(fmt.Sprintf("powers: negative length %d", n))
	}
	ret := make([]group.Element, 0, n)
	if n == 0 {
		return ret
	}
	for e := range Seq(g, s) {
		ret = append(ret, e)
		if len(ret) == n {
			break
		}
	}
	return ret
}
