package group

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// GroupFr is the additive group of the scalar field, with generator 1.
// Scalar multiplication is a field multiplication, so it has the same order
// as G1 and G2 but none of their cost. It leaks every scalar it touches and
// must only be used to check algorithms over the Group interface.
type GroupFr struct {
}

func (g *GroupFr) CreateElement() Element {
	return &FrElement{}
}

func (g *GroupFr) Generator() Element {
	return &FrElement{inner: fr.One()}
}

// FrElement implements Element backed by a scalar field element.
type FrElement struct {
	inner fr.Element
}

// Value returns the underlying field element.
func (z *FrElement) Value() fr.Element {
	return z.inner
}

func (z *FrElement) ScalarMultiplication(e Element, scalar fr.Element) Element {
	ee := e.(*FrElement).inner
	z.inner.Mul(&ee, &scalar)
	return z
}

func (z *FrElement) Set(e Element) Element {
	z.inner.Set(&e.(*FrElement).inner)
	return z
}

func (z *FrElement) Equal(e Element) bool {
	return z.inner.Equal(&e.(*FrElement).inner)
}
