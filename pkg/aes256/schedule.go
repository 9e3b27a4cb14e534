package aes256

const (
	// Rounds is the number of AES-256 rounds (Nr for Nk = 8).
	Rounds = 14

	nk         = KeySize / 4
	roundKeys  = Rounds + 1
	wordsTotal = 4 * roundKeys
)

// Schedule holds the round keys, one per AddRoundKey step.
// Key 0 is applied first when encrypting and key 14 first when decrypting.
type Schedule [roundKeys]State

// ExpandKey derives the round keys for key. When forDecryption is set the
// keys 1..13 are passed through InvMixColumns so that the inverse cipher can
// apply InvMixColumns before AddRoundKey (the equivalent inverse cipher).
// Keys 0 and 14 are the same in both schedules.
func ExpandKey(key Key, forDecryption bool) Schedule {
	var w [wordsTotal]word
	for i := 0; i < nk; i++ {
		w[i] = word{key[4*i], key[4*i+1], key[4*i+2], key[4*i+3]}
	}
	for i := nk; i < wordsTotal; i++ {
		t := w[i-1]
		switch i % nk {
		case 0:
			t = subWord(rotWord(t))
			t[0] ^= rcon[i/nk]
		case 4:
			t = subWord(t)
		}
		w[i] = xorWord(w[i-nk], t)
	}

	var s Schedule
	for k := 0; k < roundKeys; k++ {
		s[k] = State{w[4*k], w[4*k+1], w[4*k+2], w[4*k+3]}
	}
	if forDecryption {
		for k := 1; k < Rounds; k++ {
			s[k] = invMixColumns(s[k])
		}
	}
	return s
}

// rotWord rotates the word left by one byte.
func rotWord(w word) word {
	return word{w[1], w[2], w[3], w[0]}
}

func subWord(w word) word {
	return word{sbox0[w[0]], sbox0[w[1]], sbox0[w[2]], sbox0[w[3]]}
}

func xorWord(a, b word) word {
	return word{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}
