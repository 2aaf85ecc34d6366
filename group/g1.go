package group

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/jsign/srs/common"
)

type GroupG1 struct {
}

func (g *GroupG1) CreateElement() Element {
	return &G1Element{}
}

func (g *GroupG1) Generator() Element {
	gen, _, _, _ := bls12381.Generators()
	return &G1Element{inner: gen}
}

// G1Element implements Element backed by a G1 element.
type G1Element struct {
	inner bls12381.G1Jac
}

// Jacobian returns the underlying point.
func (z *G1Element) Jacobian() *bls12381.G1Jac {
	return &z.inner
}

func (z *G1Element) ScalarMultiplication(e Element, scalar fr.Element) Element {
	ee := e.(*G1Element).inner
	z.inner.ScalarMultiplication(&ee, common.FrToBigInt(&scalar))
	return z
}

func (z *G1Element) Set(e Element) Element {
	ee := e.(*G1Element).inner
	z.inner.Set(&ee)
	return z
}

func (z *G1Element) Equal(e Element) bool {
	ee := e.(*G1Element).inner
	return z.inner.Equal(&ee)
}
