package aes256

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// State is the 4x4 working matrix of a single block. It is stored
// column-major: s[c][r] is the byte in column c, row r, so the block
// bytes b[4c+r] map to s[c][r].
type State [4][4]byte

// word is one column of the state, or one key schedule word.
type word [4]byte

// NewState loads a 16-byte block into a State.
func NewState(block [BlockSize]byte) State {
	var s State
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			s[c][r] = block[4*c+r]
		}
	}
	return s
}

// Bytes serializes the state back into a 16-byte block.
func (s State) Bytes() [BlockSize]byte {
	var b [BlockSize]byte
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			b[4*c+r] = s[c][r]
		}
	}
	return b
}

func subBytes(s State) State {
	var ss State
	for c := 0; c < 4; c++ {
		ss[c] = subWord(s[c])
	}
	return ss
}

func invSubBytes(s State) State {
	var ss State
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			ss[c][r] = sbox1[s[c][r]]
		}
	}
	return ss
}

// shiftRows rotates row r left by r positions.
func shiftRows(s State) State {
	var ss State
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			ss[c][r] = s[(c+r)%4][r]
		}
	}
	return ss
}

// invShiftRows rotates row r right by r positions.
func invShiftRows(s State) State {
	var ss State
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			ss[(c+r)%4][r] = s[c][r]
		}
	}
	return ss
}

func mixColumns(s State) State {
	var ss State
	for c := 0; c < 4; c++ {
		a := s[c]
		ss[c][0] = gmul(2, a[0]) ^ gmul(3, a[1]) ^ a[2] ^ a[3]
		ss[c][1] = a[0] ^ gmul(2, a[1]) ^ gmul(3, a[2]) ^ a[3]
		ss[c][2] = a[0] ^ a[1] ^ gmul(2, a[2]) ^ gmul(3, a[3])
		ss[c][3] = gmul(3, a[0]) ^ a[1] ^ a[2] ^ gmul(2, a[3])
	}
	return ss
}

func invMixColumns(s State) State {
	var ss State
	for c := 0; c < 4; c++ {
		a := s[c]
		ss[c][0] = gmul(14, a[0]) ^ gmul(11, a[1]) ^ gmul(13, a[2]) ^ gmul(9, a[3])
		ss[c][1] = gmul(9, a[0]) ^ gmul(14, a[1]) ^ gmul(11, a[2]) ^ gmul(13, a[3])
		ss[c][2] = gmul(13, a[0]) ^ gmul(9, a[1]) ^ gmul(14, a[2]) ^ gmul(11, a[3])
		ss[c][3] = gmul(11, a[0]) ^ gmul(13, a[1]) ^ gmul(9, a[2]) ^ gmul(14, a[3])
	}
	return ss
}

// addRoundKey xors the round key into the state. It is its own inverse.
func addRoundKey(s, key State) State {
	var ss State
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			ss[c][r] = s[c][r] ^ key[c][r]
		}
	}
	return ss
}
