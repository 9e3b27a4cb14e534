package aes256

// EncryptState runs the forward cipher over one state using an
// encryption schedule.
func EncryptState(ks *Schedule, s State) State {
	// First round just XORs input with key.
	s = addRoundKey(s, ks[0])

	for r := 1; r < Rounds; r++ {
		s = subBytes(s)
		s = shiftRows(s)
		s = mixColumns(s)
		s = addRoundKey(s, ks[r])
	}

	// Last round skips MixColumns.
	s = subBytes(s)
	s = shiftRows(s)
	return addRoundKey(s, ks[Rounds])
}

// DecryptState runs the equivalent inverse cipher over one state using a
// decryption schedule (see ExpandKey).
func DecryptState(dk *Schedule, s State) State {
	s = addRoundKey(s, dk[Rounds])

	for r := Rounds - 1; r > 0; r-- {
		s = invSubBytes(s)
		s = invShiftRows(s)
		s = invMixColumns(s)
		s = addRoundKey(s, dk[r])
	}

	s = invSubBytes(s)
	s = invShiftRows(s)
	return addRoundKey(s, dk[0])
}

// encryptBlock encrypts one block from src into dst.
func encryptBlock(ks *Schedule, dst, src []byte) {
	var in [BlockSize]byte
	copy(in[:], src)
	out := EncryptState(ks, NewState(in)).Bytes()
	copy(dst, out[:])
}

// decryptBlock decrypts one block from src into dst.
func decryptBlock(dk *Schedule, dst, src []byte) {
	var in [BlockSize]byte
	copy(in[:], src)
	out := DecryptState(dk, NewState(in)).Bytes()
	copy(dst, out[:])
}
