package srs

import (
	"fmt"
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// FromReader decodes an SRS written by Serialize.
func FromReader(r io.Reader) (*Srs, error) {
	var (
		g1      []bls12381.G1Affine
		g2, g2s bls12381.G2Affine
	)
	d := bls12381.NewDecoder(r)
	if err := d.Decode(&g1); err != nil {
		return nil, fmt.Errorf("decoding g1: %s", err)
	}
	if err := d.Decode(&g2); err != nil {
		return nil, fmt.Errorf("decoding g2: %s", err)
	}
	if err := d.Decode(&g2s); err != nil {
		return nil, fmt.Errorf("decoding g2s: %s", err)
	}
	return &Srs{
		g1:  g1,
		g2:  g2,
		g2s: g2s,
	}, nil
}

func (s *Srs) Serialize(w io.Writer) error {
	e := bls12381.NewEncoder(w)
	if err := e.Encode(s.g1); err != nil {
		return fmt.Errorf("encoding g1: %s", err)
	}
	if err := e.Encode(&s.g2); err != nil {
		return fmt.Errorf("encoding g2: %s", err)
	}
	if err := e.Encode(&s.g2s); err != nil {
		return fmt.Errorf("encoding g2s: %s", err)
	}
	return nil
}
