package srs

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/jsign/srs/common"
	"github.com/jsign/srs/transcript"
)

var (
	labelVerify      = []byte("srs_verify")
	labelVerifyG1    = []byte("srs_verify_g1")
	labelVerifyG2    = []byte("srs_verify_g2")
	labelVerifyNonce = []byte("srs_verify_nonce")
	labelVerifyRs    = []byte("srs_verify_rs")
)

// Verify checks that srs is a well-formed powers-of-s string without knowing
// s: G1[0] and G2 are the generators, s is neither 0 nor 1, and
// e(G1[i+1], H) == e(G1[i], s·H) for every i. The pairing equations are
// batched with a random linear combination whose coefficients are derived from
// a transcript of the whole SRS and a nonce drawn from rand.
func Verify(srs *Srs, rand common.ScalarSource) (bool, error) {
	if srs == nil {
		return false, fmt.Errorf("nil srs")
	}
	if len(srs.g1) == 0 {
		return false, fmt.Errorf("srs has no G1 powers")
	}

	_, _, g1Gen, g2Gen := bls12381.Generators()
	if !srs.g1[0].Equal(&g1Gen) || !srs.g2.Equal(&g2Gen) {
		return false, nil
	}
	if srs.g2s.IsInfinity() || srs.g2s.Equal(&srs.g2) {
		return false, nil
	}
	for i := range srs.g1 {
		if srs.g1[i].IsInfinity() {
			return false, nil
		}
	}
	if len(srs.g1) == 1 {
		return true, nil
	}

	nonce, err := rand.GetFr()
	if err != nil {
		return false, fmt.Errorf("get random nonce: %s", err)
	}

	transcript := transcript.New(labelVerify)
	transcript.AppendPointsAffine(labelVerifyG1, srs.g1...)
	transcript.AppendG2PointsAffine(labelVerifyG2, srs.g2, srs.g2s)
	transcript.AppendScalars(labelVerifyNonce, nonce)
	rs := transcript.GetAndAppendChallenges(labelVerifyRs, len(srs.g1)-1)

	n := len(srs.g1)
	var L, R bls12381.G1Jac
	if _, err := L.MultiExp(srs.g1[1:], rs, common.MultiExpConf); err != nil {
		return false, fmt.Errorf("computing L: %s", err)
	}
	if _, err := R.MultiExp(srs.g1[:n-1], rs, common.MultiExpConf); err != nil {
		return false, fmt.Errorf("computing R: %s", err)
	}
	var lAff, rAff bls12381.G1Affine
	lAff.FromJacobian(&L)
	rAff.FromJacobian(&R)
	rAff.Neg(&rAff)

	ok, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{lAff, rAff},
		[]bls12381.G2Affine{srs.g2, srs.g2s},
	)
	if err != nil {
		return false, fmt.Errorf("pairing check: %s", err)
	}
	return ok, nil
}
