package srs

import (
	"strconv"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/jsign/srs/common"
	"github.com/stretchr/testify/require"
)

func TestVerifyCompleteness(t *testing.T) {
	t.Parallel()

	for _, gates := range []int{0, 1, 13, 64} {
		gates := gates
		t.Run(strconv.Itoa(gates), func(t *testing.T) {
			t.Parallel()

			rand, err := common.NewRand(0)
			require.NoError(t, err)
			srs, err := Random(gates, rand)
			require.NoError(t, err)

			ok, err := Verify(srs, rand)
			require.NoError(t, err)
			require.True(t, ok)
		})
	}
}

func TestVerifySingleton(t *testing.T) {
	t.Parallel()

	rand, err := common.NewRand(0)
	require.NoError(t, err)
	srs := FromSecret(fr.NewElement(5), 0)
	srs.g1 = srs.g1[:1]

	ok, err := Verify(srs, rand)
	require.NoError(t, err)
	require.True(t, ok)

	srs.g1 = nil
	_, err = Verify(srs, rand)
	require.Error(t, err)

	_, err = Verify(nil, rand)
	require.Error(t, err)
}

func TestVerifySoundness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tamper func(srs *Srs)
	}{
		{
			name: "swapped powers",
			tamper: func(srs *Srs) {
				srs.g1[2], srs.g1[3] = srs.g1[3], srs.g1[2]
			},
		},
		{
			name: "foreign power",
			tamper: func(srs *Srs) {
				srs.g1[4] = G1Powers(fr.NewElement(11), 5)[4]
			},
		},
		{
			name: "wrong g2s",
			tamper: func(srs *Srs) {
				_, srs.g2s = G2Pair(fr.NewElement(11))
			},
		},
		{
			name: "wrong generator",
			tamper: func(srs *Srs) {
				srs.g1[0] = srs.g1[1]
			},
		},
		{
			name: "g2s is the generator",
			tamper: func(srs *Srs) {
				srs.g2s = srs.g2
			},
		},
		{
			name: "infinity power",
			tamper: func(srs *Srs) {
				srs.g1[1].X.SetZero()
				srs.g1[1].Y.SetZero()
			},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rand, err := common.NewRand(0)
			require.NoError(t, err)
			srs, err := Random(5, rand)
			require.NoError(t, err)
			tc.tamper(srs)

			ok, err := Verify(srs, rand)
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestVerifyRejectsTrivialSecrets(t *testing.T) {
	t.Parallel()

	rand, err := common.NewRand(0)
	require.NoError(t, err)
	for _, s := range []fr.Element{fr.NewElement(0), fr.NewElement(1)} {
		ok, err := Verify(FromSecret(s, 2), rand)
		require.NoError(t, err)
		require.False(t, ok)
	}
}
