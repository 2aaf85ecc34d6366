package transcript

import (
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/stretchr/testify/require"
)

func TestChallengesBindMessages(t *testing.T) {
	t.Parallel()

	_, _, g1, g2 := bls12381.Generators()

	newTranscript := func() *Transcript {
		tr := New([]byte("test"))
		tr.AppendPointsAffine([]byte("g1"), g1)
		tr.AppendG2PointsAffine([]byte("g2"), g2)
		return tr
	}

	a := newTranscript().GetAndAppendChallenges([]byte("c"), 3)
	b := newTranscript().GetAndAppendChallenges([]byte("c"), 3)
	require.Equal(t, a, b)
	require.False(t, a[0].Equal(&a[1]))

	tr := newTranscript()
	tr.AppendPointsAffine([]byte("g1"), g1)
	require.NotEqual(t, a, tr.GetAndAppendChallenges([]byte("c"), 3))
}
