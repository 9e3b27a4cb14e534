package fs

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	OsType  = "os"
	MemType = "mem"
)

var supportedTypes = []string{OsType, MemType}

// GetFs returns the filesystem registered under the given name.
func GetFs(fs string) (afero.Fs, error) {
	switch fs {
	case OsType:
		return afero.NewOsFs(), nil
	case MemType:
		return afero.NewMemMapFs(), nil
	}
	return nil, fmt.Errorf("unknown filesystem type provided: %s (supported types: %v)", fs, supportedTypes)
}

// ReadFile reads the whole named file.
func ReadFile(fs afero.Fs, filename string) ([]byte, error) {
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", filename, err)
	}
	return data, nil
}

// WriteFile writes data to a temporary file in the target directory and
// renames it to filename, so a failed write never leaves a truncated output.
func WriteFile(fs afero.Fs, filename string, data []byte) (err error) {
	file, err := afero.TempFile(fs, filepath.Dir(filename), ".aes256-")
	if err != nil {
		return fmt.Errorf("cannot create temporary file for %s: %w", filename, err)
	}
	tmp := file.Name()
	defer func() {
		if err != nil {
			fs.Remove(tmp)
		}
	}()

	if _, err = file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("cannot write %s: %w", tmp, err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("cannot close %s: %w", tmp, err)
	}
	if err = fs.Rename(tmp, filename); err != nil {
		return fmt.Errorf("cannot move %s to %s: %w", tmp, filename, err)
	}
	return nil
}
