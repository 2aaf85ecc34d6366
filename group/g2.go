package group

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/jsign/srs/common"
)

type GroupG2 struct {
}

func (g *GroupG2) CreateElement() Element {
	return &G2Element{}
}

func (g *GroupG2) Generator() Element {
	_, gen, _, _ := bls12381.Generators()
	return &G2Element{inner: gen}
}

// G2Element implements Element backed by a G2 element.
type G2Element struct {
	inner bls12381.G2Jac
}

// Jacobian returns the underlying point.
func (z *G2Element) Jacobian() *bls12381.G2Jac {
	return &z.inner
}

func (z *G2Element) ScalarMultiplication(e Element, scalar fr.Element) Element {
	ee := e.(*G2Element).inner
	z.inner.ScalarMultiplication(&ee, common.FrToBigInt(&scalar))
	return z
}

func (z *G2Element) Set(e Element) Element {
	ee := e.(*G2Element).inner
	z.inner.Set(&ee)
	return z
}

func (z *G2Element) Equal(e Element) bool {
	ee := e.(*G2Element).inner
	return z.inner.Equal(&ee)
}
