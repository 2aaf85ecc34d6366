package common

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// ScalarSource samples scalar field elements.
type ScalarSource interface {
	GetFr() (fr.Element, error)
}

// ScalarSourceFunc adapts a function to a ScalarSource.
type ScalarSourceFunc func() (fr.Element, error)

func (f ScalarSourceFunc) GetFr() (fr.Element, error) {
	return f()
}

// CryptoSource samples uniformly from the scalar field using crypto/rand.
type CryptoSource struct{}

func (CryptoSource) GetFr() (fr.Element, error) {
	var fe fr.Element
	if _, err := fe.SetRandom(); err != nil {
		return fr.Element{}, fmt.Errorf("get randomness: %s", err)
	}
	return fe, nil
}

// Rand is a deterministic ScalarSource seeded with a uint64. Anyone knowing
// the seed can recompute its output.
type Rand struct {
	rand sha3.ShakeHash
}

func NewRand(seed uint64) (*Rand, error) {
	var seedBytes [8]byte
	binary.BigEndian.PutUint64(seedBytes[:], seed)

	rand := sha3.NewShake256()
	if _, err := rand.Write(seedBytes[:]); err != nil {
		return nil, fmt.Errorf("writing seed: %s", err)
	}
	return &Rand{
		rand: rand,
	}, nil
}

func (r *Rand) GetFr() (fr.Element, error) {
	for {
		var byts [fr.Bytes]byte
		if _, err := r.rand.Read(byts[:]); err != nil {
			return fr.Element{}, fmt.Errorf("get randomness: %s", err)

		}
		var fe fr.Element
		if err := fe.SetBytesCanonical(byts[:]); err == nil {
			return fe, nil
		}
	}
}

var ErrEmptyPassphrase = errors.New("empty passphrase")

// FrFromPassphrase hashes a passphrase to a scalar with BLAKE2b-512. The wide
// digest is reduced modulo r, which keeps the bias negligible.
func FrFromPassphrase(passphrase []byte) (fr.Element, error) {
	if len(passphrase) == 0 {
		return fr.Element{}, ErrEmptyPassphrase
	}
	h := blake2b.Sum512(passphrase)
	defer clear(h[:])

	var fe fr.Element
	fe.SetBytes(h[:])
	return fe, nil
}
