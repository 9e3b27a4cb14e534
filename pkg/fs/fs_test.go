package fs

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/spf13/afero"
)

func TestGetFs(t *testing.T) {
	tests := []struct {
		name    string
		fs      string
		wantErr bool
	}{
		{name: "os", fs: OsType},
		{name: "mem", fs: MemType},
		{name: "unknown", fs: "s3", wantErr: true},
	}

	for _, tt := range tests {
		got, err := GetFs(tt.fs)
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

func TestWriteReadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/out", 0755); err != nil {
		t.Fatal(err)
	}

	data := []byte("ciphertext")
	if err := WriteFile(fs, "/out/data.enc", data); err != nil {
		t.Fatalf("cannot write: %v", err)
	}
	got, err := ReadFile(fs, "/out/data.enc")
	if err != nil {
		t.Fatalf("cannot read: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("expected %q, got %q", data, got)
	}

	// Only the target remains, the temporary file was renamed.
	entries, err := afero.ReadDir(fs, "/out")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "data.enc" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("unexpected directory contents: %v", names)
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/data", []byte("old contents"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(fs, "/data", []byte("new")); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(fs, "/data")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Fatalf("expected %q, got %q", "new", got)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(afero.NewMemMapFs(), "/missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}
