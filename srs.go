package srs

import (
	"errors"
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/jsign/srs/common"
	"github.com/jsign/srs/group"
	"github.com/jsign/srs/powers"
)

const (
	// ExtraG1Powers is the number of G1 powers FromSecret generates on top
	// of the gate count, covering the blinding and degree-bound margin of the
	// consuming proof system.
	ExtraG1Powers = 3
)

var ErrZeroSecret = errors.New("secret scalar is zero")

// Srs is a KZG structured reference string: the powers G, s·G, ..., s^(n-1)·G
// in G1, and H, s·H in G2, where G and H are the group generators.
// It is immutable once built.
type Srs struct {
	g1  []bls12381.G1Affine
	g2  bls12381.G2Affine
	g2s bls12381.G2Affine
}

// G1Powers returns G, s·G, ..., s^(length-1)·G.
func G1Powers(s fr.Element, length int) []bls12381.G1Affine {
	elems := powers.Take(&group.GroupG1{}, s, length)
	if len(elems) == 0 {
		return []bls12381.G1Affine{}
	}
	jacs := make([]bls12381.G1Jac, len(elems))
	for i := range elems {
		jacs[i] = *elems[i].(*group.G1Element).Jacobian()
	}
	return bls12381.BatchJacobianToAffineG1(jacs)
}

// G2Pair returns H and s·H.
func G2Pair(s fr.Element) (bls12381.G2Affine, bls12381.G2Affine) {
	pair := powers.Take(&group.GroupG2{}, s, 2)
	var h, sh bls12381.G2Affine
	h.FromJacobian(pair[0].(*group.G2Element).Jacobian())
	sh.FromJacobian(pair[1].(*group.G2Element).Jacobian())
	return h, sh
}

// FromSecret builds the SRS for the given number of gates. The caller owns s
// and must destroy it afterwards: anyone who learns it can forge proofs.
func FromSecret(s fr.Element, gates int) *Srs {
	if gates < 0 {
		panic(fmt.Sprintf("srs: negative gate count %d", gates))
	}
	g2, g2s := G2Pair(s)
	return &Srs{
		g1:  G1Powers(s, gates+ExtraG1Powers),
		g2:  g2,
		g2s: g2s,
	}
}

// Random samples the secret from src, builds the SRS and zeroes the secret.
func Random(gates int, src common.ScalarSource) (*Srs, error) {
	s, err := src.GetFr()
	if err != nil {
		return nil, fmt.Errorf("sampling secret: %s", err)
	}
	defer s.SetZero()
	if s.IsZero() {
		return nil, ErrZeroSecret
	}

	return FromSecret(s, gates), nil
}

// G1 returns a copy of the G1 powers.
func (s *Srs) G1() []bls12381.G1Affine {
	ret := make([]bls12381.G1Affine, len(s.g1))
	copy(ret, s.g1)
	return ret
}

// G2 returns the G2 generator H.
func (s *Srs) G2() bls12381.G2Affine {
	return s.g2
}

// G2s returns s·H.
func (s *Srs) G2s() bls12381.G2Affine {
	return s.g2s
}

// Len returns the number of G1 powers.
func (s *Srs) Len() int {
	return len(s.g1)
}
