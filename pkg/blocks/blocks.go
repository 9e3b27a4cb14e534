// Package blocks runs the AES-256 round pipeline over whole byte slices.
//
// Every 16-byte block is processed independently under the same key, with
// no chaining value between blocks, so the output of block i depends only
// on input block i.
package blocks

import (
	"bytes"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/kargakis/aes256/pkg/aes256"
)

// PadByte is the value of every byte appended by Pad.
const PadByte = 0x80

// Pad returns a copy of data extended with PadByte bytes. With
// padding = len(data) % BlockSize, encryption appends padding+BlockSize
// bytes and decryption appends padding bytes. The result is not always a
// multiple of BlockSize; callers only consume whole blocks.
func Pad(data []byte, forDecryption bool) []byte {
	padding := len(data) % aes256.BlockSize
	if !forDecryption {
		padding += aes256.BlockSize
	}
	padded := make([]byte, len(data), len(data)+padding)
	copy(padded, data)
	return append(padded, bytes.Repeat([]byte{PadByte}, padding)...)
}

// StripPadding drops every trailing PadByte. Plaintext that itself ends
// in 0x80 loses those bytes too.
func StripPadding(data []byte) []byte {
	i := len(data)
	for i > 0 && data[i-1] == PadByte {
		i--
	}
	return data[:i]
}

// Processor encrypts or decrypts byte slices block by block.
type Processor struct {
	// Workers bounds the number of goroutines processing blocks.
	// Values below 2 process every block on the calling goroutine.
	Workers int
}

// NewProcessor returns a Processor using one worker per CPU.
func NewProcessor() *Processor {
	return &Processor{Workers: runtime.NumCPU()}
}

// Encrypt pads plaintext and encrypts every whole block of the result.
func (p *Processor) Encrypt(plaintext []byte, key aes256.Key) []byte {
	c := aes256.New(key)
	return p.run(Pad(plaintext, false), c.Encrypt)
}

// Decrypt pads ciphertext and decrypts every whole block of the result.
// Padding is kept in the output; see StripPadding.
func (p *Processor) Decrypt(ciphertext []byte, key aes256.Key) []byte {
	c := aes256.New(key)
	return p.run(Pad(ciphertext, true), c.Decrypt)
}

// Encrypt is a shorthand for NewProcessor().Encrypt.
func Encrypt(plaintext []byte, key aes256.Key) []byte {
	return NewProcessor().Encrypt(plaintext, key)
}

// Decrypt is a shorthand for NewProcessor().Decrypt.
func Decrypt(ciphertext []byte, key aes256.Key) []byte {
	return NewProcessor().Decrypt(ciphertext, key)
}

type blockFunc func(dst, src []byte)

// run applies fn to every whole block of src. A trailing partial block
// is dropped.
func (p *Processor) run(src []byte, fn blockFunc) []byte {
	n := len(src) / aes256.BlockSize
	dst := make([]byte, n*aes256.BlockSize)
	if n == 0 {
		return dst
	}

	workers := p.Workers
	if workers > n {
		workers = n
	}
	if workers < 2 {
		crypt(dst, src, 0, n, fn)
		return dst
	}

	// Each worker owns a contiguous range of blocks, so writes to dst never
	// overlap and the joined output keeps the input order.
	var g errgroup.Group
	g.SetLimit(workers)
	per := (n + workers - 1) / workers
	for start := 0; start < n; start += per {
		start, end := start, start+per
		if end > n {
			end = n
		}
		g.Go(func() error {
			crypt(dst, src, start, end, fn)
			return nil
		})
	}
	// Block functions never fail.
	_ = g.Wait()
	return dst
}

func crypt(dst, src []byte, start, end int, fn blockFunc) {
	for i := start; i < end; i++ {
		off := i * aes256.BlockSize
		fn(dst[off:off+aes256.BlockSize], src[off:off+aes256.BlockSize])
	}
}
