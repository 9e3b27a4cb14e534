package aes256

import "fmt"

// Multiplication tables for the constants used by MixColumns and
// InvMixColumns. Index is the multiplicand, value the product.
var (
	mul2  [256]byte
	mul3  [256]byte
	mul9  [256]byte
	mul11 [256]byte
	mul13 [256]byte
	mul14 [256]byte
)

func init() {
	for i := 0; i < 256; i++ {
		b := byte(i)
		mul2[i] = mul(2, b)
		mul3[i] = mul(3, b)
		mul9[i] = mul(9, b)
		mul11[i] = mul(11, b)
		mul13[i] = mul(13, b)
		mul14[i] = mul(14, b)
	}
}

// mul multiplies a and b as GF(2) polynomials modulo poly.
func mul(a, b byte) byte {
	i := uint32(a)
	j := uint32(b)
	s := uint32(0)
	for j != 0 {
		// Invariant: i == a * xⁿ where n is the number of bits of b consumed.
		if j&1 != 0 {
			s ^= i
		}
		i <<= 1
		if i&0x100 != 0 {
			i ^= poly
		}
		j >>= 1
	}
	return byte(s)
}

// gmul returns c·b using the precomputed table for c. Only the column
// mixing coefficients have a table; any other c is a caller bug.
func gmul(c, b byte) byte {
	switch c {
	case 2:
		return mul2[b]
	case 3:
		return mul3[b]
	case 9:
		return mul9[b]
	case 11:
		return mul11[b]
	case 13:
		return mul13[b]
	case 14:
		return mul14[b]
	}
	panic(fmt.Sprintf("aes256: unsupported field multiplier %#x", c))
}
