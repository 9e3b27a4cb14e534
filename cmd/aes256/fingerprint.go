package main

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/kargakis/aes256/pkg/aes256"
)

// fingerprint identifies a key in logs without revealing it: the first
// 8 bytes of its double SHA-256, hex encoded.
func fingerprint(key aes256.Key) string {
	h := chainhash.DoubleHashH(key[:])
	return hex.EncodeToString(h[:8])
}
