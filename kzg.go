package srs

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/kzg"
)

// ToKZG returns the SRS in the layout gnark-crypto's KZG scheme and gnark's
// PLONK backend expect.
func (s *Srs) ToKZG() *kzg.SRS {
	var ret kzg.SRS
	ret.Pk.G1 = s.G1()
	if len(s.g1) > 0 {
		ret.Vk.G1 = s.g1[0]
	}
	ret.Vk.G2 = [2]bls12381.G2Affine{s.g2, s.g2s}
	return &ret
}

func FromKZG(k *kzg.SRS) (*Srs, error) {
	if len(k.Pk.G1) == 0 {
		return nil, fmt.Errorf("kzg srs has no G1 powers")
	}
	if !k.Vk.G1.Equal(&k.Pk.G1[0]) {
		return nil, fmt.Errorf("kzg verifying key G1 does not match the first G1 power")
	}
	g1 := make([]bls12381.G1Affine, len(k.Pk.G1))
	copy(g1, k.Pk.G1)
	return &Srs{
		g1:  g1,
		g2:  k.Vk.G2[0],
		g2s: k.Vk.G2[1],
	}, nil
}
