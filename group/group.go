package group

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Group is a prime-order group of order fr.Modulus() with a fixed generator.
type Group interface {
	CreateElement() Element
	Generator() Element
}

type Element interface {
	ScalarMultiplication(e Element, scalar fr.Element) Element
	Set(e Element) Element
	Equal(e Element) bool
}
