package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/spf13/afero"

	"github.com/kargakis/aes256/pkg/aes256"
	"github.com/kargakis/aes256/pkg/blocks"
	"github.com/kargakis/aes256/pkg/fs"
)

const testKey = "01234567890123456789012345678901"

func setupFs(t *testing.T, key string, input []byte) afero.Fs {
	t.Helper()
	afs := afero.NewMemMapFs()
	if err := afero.WriteFile(afs, "/key", []byte(key), 0600); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(afs, "/input", input, 0644); err != nil {
		t.Fatal(err)
	}
	return afs
}

func TestRunEncryptDecrypt(t *testing.T) {
	plaintext := []byte("Let's test if this is working!")
	afs := setupFs(t, testKey, plaintext)

	enc := config{mode: modeEncrypt, keyPath: "/key", inputPath: "/input", outputPath: "/input.enc", workers: 2}
	if err := run(afs, enc); err != nil {
		t.Fatalf("cannot encrypt: %v", err)
	}
	ciphertext, err := afero.ReadFile(afs, "/input.enc")
	if err != nil {
		t.Fatal(err)
	}
	if want := blocks.Encrypt(plaintext, aes256.KeyFromString(testKey)); !bytes.Equal(ciphertext, want) {
		t.Fatalf("unexpected ciphertext:\n%x\nwant\n%x", ciphertext, want)
	}

	dec := config{mode: modeDecrypt, keyPath: "/key", inputPath: "/input.enc", outputPath: "/input.dec", workers: 1, strip: true}
	if err := run(afs, dec); err != nil {
		t.Fatalf("cannot decrypt: %v", err)
	}
	decrypted, err := afero.ReadFile(afs, "/input.dec")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Fatalf("expected %q, got %q", plaintext, decrypted)
	}
}

func TestRunKeepsPaddingWithoutStrip(t *testing.T) {
	plaintext := bytes.Repeat([]byte("a"), 16)
	afs := setupFs(t, testKey, plaintext)

	if err := run(afs, config{mode: modeEncrypt, keyPath: "/key", inputPath: "/input", outputPath: "/enc"}); err != nil {
		t.Fatal(err)
	}
	if err := run(afs, config{mode: modeDecrypt, keyPath: "/key", inputPath: "/enc", outputPath: "/dec"}); err != nil {
		t.Fatal(err)
	}
	decrypted, err := afero.ReadFile(afs, "/dec")
	if err != nil {
		t.Fatal(err)
	}
	want := append(append([]byte(nil), plaintext...), bytes.Repeat([]byte{blocks.PadByte}, 16)...)
	if !bytes.Equal(decrypted, want) {
		t.Fatalf("expected %x, got %x", want, decrypted)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config
	}{
		{
			name: "unknown mode",
			cfg:  config{mode: "x", keyPath: "/key", inputPath: "/input", outputPath: "/out"},
		},
		{
			name: "missing key",
			cfg:  config{mode: modeEncrypt, keyPath: "/nokey", inputPath: "/input", outputPath: "/out"},
		},
		{
			name: "missing input",
			cfg:  config{mode: modeDecrypt, keyPath: "/key", inputPath: "/noinput", outputPath: "/out"},
		},
	}

	for _, tt := range tests {
		afs := setupFs(t, testKey, []byte("data"))
		if err := run(afs, tt.cfg); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
		if ok, _ := afero.Exists(afs, "/out"); ok {
			t.Errorf("%s: output written despite failure", tt.name)
		}
	}
}

func TestReadKey(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want aes256.Key
	}{
		{
			name: "exact",
			raw:  testKey,
			want: aes256.KeyFromString(testKey),
		},
		{
			name: "trailing newline is truncated",
			raw:  testKey + "\n",
			want: aes256.KeyFromString(testKey),
		},
		{
			name: "short key is zero filled",
			raw:  "secret\n",
			want: aes256.Key{'s', 'e', 'c', 'r', 'e', 't', '\n'},
		},
	}

	for _, tt := range tests {
		afs := setupFs(t, tt.raw, nil)
		got, err := readKey(afs, "/key")
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFingerprint(t *testing.T) {
	key := aes256.KeyFromString(testKey)
	first := sha256.Sum256(key[:])
	second := sha256.Sum256(first[:])
	want := hex.EncodeToString(second[:8])

	if got := fingerprint(key); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
	if other := fingerprint(aes256.Key{}); other == want {
		t.Fatalf("different keys share fingerprint %s", want)
	}
}

func TestOpenFs(t *testing.T) {
	tests := []struct {
		name    string
		fs      string
		wantErr bool
	}{
		{name: "os", fs: fs.OsType},
		{name: "mem", fs: fs.MemType, wantErr: true},
		{name: "unknown", fs: "s3", wantErr: true},
	}

	for _, tt := range tests {
		got, err := openFs(tt.fs)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error", tt.name)
			}
			continue
		}
		if err != nil || got == nil {
			t.Errorf("%s: unexpected result (%v, %v)", tt.name, got, err)
		}
	}
}
