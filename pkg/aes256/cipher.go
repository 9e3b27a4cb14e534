// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes256

import (
	"crypto/cipher"
)

// A cipher is an instance of AES-256 encryption using a particular key.
type aesCipher struct {
	enc Schedule
	dec Schedule
}

// NewCipher creates and returns a new cipher.Block.
// The key argument should be the AES key, 32 bytes long.
func NewCipher(key []byte) (cipher.Block, error) {
	k, err := NewKey(key)
	if err != nil {
		return nil, err
	}
	return New(k), nil
}

// New returns a cipher.Block for an already sized key. Both round key
// schedules are derived once here and only read afterwards, so the
// returned block is safe for concurrent use.
func New(key Key) cipher.Block {
	return &aesCipher{
		enc: ExpandKey(key, false),
		dec: ExpandKey(key, true),
	}
}

func (c *aesCipher) BlockSize() int { return BlockSize }

func (c *aesCipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes256: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes256: output not full block")
	}
	if inexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("aes256: invalid buffer overlap")
	}
	encryptBlock(&c.enc, dst, src)
}

func (c *aesCipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes256: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes256: output not full block")
	}
	if inexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("aes256: invalid buffer overlap")
	}
	decryptBlock(&c.dec, dst, src)
}
