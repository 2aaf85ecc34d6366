package powers

import (
	"strconv"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/jsign/srs/common"
	"github.com/jsign/srs/group"
	"github.com/stretchr/testify/require"
)

func TestTakeToyGroup(t *testing.T) {
	t.Parallel()

	got := Take(&group.GroupFr{}, fr.NewElement(2), 4)
	require.Len(t, got, 4)
	for i, exp := range []uint64{1, 2, 4, 8} {
		v := got[i].(*group.FrElement).Value()
		e := fr.NewElement(exp)
		require.True(t, e.Equal(&v), "index %d", i)
	}
}

func TestTakeEmpty(t *testing.T) {
	t.Parallel()

	got := Take(&group.GroupG1{}, fr.NewElement(5), 0)
	require.NotNil(t, got)
	require.Empty(t, got)

	require.Panics(t, func() { Take(&group.GroupG1{}, fr.NewElement(5), -1) })
}

func TestRecurrence(t *testing.T) {
	t.Parallel()

	groups := []struct {
		name string
		g    group.Group
		n    int
	}{
		{name: "Fr", g: &group.GroupFr{}, n: 64},
		{name: "G1", g: &group.GroupG1{}, n: 8},
		{name: "G2", g: &group.GroupG2{}, n: 4},
	}
	for _, tc := range groups {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rand, err := common.NewRand(0)
			require.NoError(t, err)
			s, err := rand.GetFr()
			require.NoError(t, err)

			got := Take(tc.g, s, tc.n)
			require.Len(t, got, tc.n)
			require.True(t, got[0].Equal(tc.g.Generator()))
			for i := 1; i < tc.n; i++ {
				exp := tc.g.CreateElement().ScalarMultiplication(got[i-1], s)
				require.True(t, exp.Equal(got[i]), "index %d", i)
			}
		})
	}
}

func TestSeqRestartable(t *testing.T) {
	t.Parallel()

	s := fr.NewElement(3)
	seq := Seq(&group.GroupFr{}, s)

	for _, n := range []int{1, 5, 10} {
		n := n
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			var first, second []group.Element
			for e := range seq {
				first = append(first, e)
				if len(first) == n {
					break
				}
			}
			for e := range seq {
				second = append(second, e)
				if len(second) == n {
					break
				}
			}
			require.Len(t, first, n)
			require.Len(t, second, n)
			for i := range first {
				require.True(t, first[i].Equal(second[i]))
			}
		})
	}
}

func TestSeqOwnership(t *testing.T) {
	t.Parallel()

	g := &group.GroupFr{}
	got := Take(g, fr.NewElement(2), 3)
	got[0].ScalarMultiplication(got[0], fr.NewElement(2))

	exp := Take(g, fr.NewElement(2), 3)
	require.True(t, exp[1].Equal(got[1]))
	require.True(t, exp[2].Equal(got[2]))
	require.True(t, exp[1].Equal(got[0]))
	require.True(t, exp[0].Equal(g.Generator()))
}

func TestZeroSecret(t *testing.T) {
	t.Parallel()

	g := &group.GroupG1{}
	got := Take(g, fr.Element{}, 3)
	require.True(t, got[0].Equal(g.Generator()))
	require.True(t, got[1].Equal(g.CreateElement()))
	require.True(t, got[2].Equal(g.CreateElement()))
}
