package transcript

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	transcript "github.com/jsign/merlin"
)

type Transcript struct {
	inner *transcript.Transcript
}

func New(label []byte) *Transcript {
	return &Transcript{
		inner: transcript.New(label),
	}
}

func (t *Transcript) appendMessage(label []byte, message []byte) {
	t.inner.AppendMessage(label, message)
}

func (t *Transcript) AppendPointsAffine(label []byte, points ...bls12381.G1Affine) {
	for _, point := range points {
		affineBytes := point.Bytes()
		t.appendMessage(label, affineBytes[:])
	}
}

func (t *Transcript) AppendG2PointsAffine(label []byte, points ...bls12381.G2Affine) {
	for _, point := range points {
		affineBytes := point.Bytes()
		t.appendMessage(label, affineBytes[:])
	}
}

func (t *Transcript) AppendScalars(label []byte, scalars ...fr.Element) {
	for _, scalar := range scalars {
		scalarBytes := scalar.Bytes()
		t.appendMessage(label, scalarBytes[:])
	}
}

func (t *Transcript) GetAndAppendChallenge(label []byte) fr.Element {
	for {
		var dest [32]byte
		t.inner.ChallengeBytes(label, dest[:])
		var challenge fr.Element
		if err := challenge.SetBytesCanonical(dest[:]); err == nil {
			t.AppendScalars(label, challenge)
			return challenge
		}
	}
}

func (t *Transcript) GetAndAppendChallenges(label []byte, count int) []fr.Element {
	challenges := make([]fr.Element, count)
	for i := 0; i < count; i++ {
		challenges[i] = t.GetAndAppendChallenge(label)
	}
	return challenges
}
