package aes256

import "strconv"

// KeySize is the AES-256 key length in bytes.
const KeySize = 32

// Key is a 256-bit AES key.
type Key [KeySize]byte

type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes256: invalid key size " + strconv.Itoa(int(k))
}

// NewKey copies b into a Key. b must be exactly KeySize bytes long.
func NewKey(b []byte) (Key, error) {
	var k Key
	if len(b) != KeySize {
		return k, KeySizeError(len(b))
	}
	copy(k[:], b)
	return k, nil
}

// KeyFromString maps the UTF-8 bytes of s onto a Key. Longer input is
// truncated to KeySize bytes and shorter input is zero-filled, so this
// never fails. Existing ciphertexts depend on this exact mapping.
func KeyFromString(s string) Key {
	var k Key
	copy(k[:], s)
	return k
}
