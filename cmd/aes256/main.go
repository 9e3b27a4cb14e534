package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/afero"

	"github.com/kargakis/aes256/pkg/aes256"
	"github.com/kargakis/aes256/pkg/blocks"
	"github.com/kargakis/aes256/pkg/fs"
	"github.com/kargakis/aes256/pkg/utils"
)

var (
	workers = flag.Int("workers", runtime.NumCPU(), "Number of goroutines processing blocks")
	strip   = flag.Bool("strip", false, "Strip trailing 0x80 padding bytes after decryption")
	fsType  = flag.String("fs", fs.OsType, "Filesystem type to read and write files from (supported: os)")
)

const (
	modeEncrypt = "e"
	modeDecrypt = "d"
)

type config struct {
	mode       string
	keyPath    string
	inputPath  string
	outputPath string

	workers int
	strip   bool
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "AES-256 encryption tool\n\n")
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <e|d> <key file> <input file> <output file>\n", os.Args[0])
	fmt.Fprintf(flag.CommandLine.Output(), "  e: encryption, d: decryption\n\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 4 {
		flag.Usage()
		fmt.Println("Not enough arguments")
		os.Exit(1)
	}

	afs, err := openFs(*fsType)
	if err != nil {
		fmt.Printf("Cannot set up filesystem: %v\n", err)
		os.Exit(1)
	}

	cfg := config{
		mode:       args[0],
		keyPath:    args[1],
		inputPath:  args[2],
		outputPath: args[3],
		workers:    *workers,
		strip:      *strip,
	}
	if err := run(afs, cfg); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// openFs returns the filesystem for the CLI. The in-memory filesystem
// starts empty, so it could never hold the key or the input.
func openFs(name string) (afero.Fs, error) {
	if name == fs.MemType {
		return nil, fmt.Errorf("filesystem type %s cannot be used from the command line", name)
	}
	return fs.GetFs(name)
}

func run(afs afero.Fs, cfg config) error {
	if cfg.mode != modeEncrypt && cfg.mode != modeDecrypt {
		return fmt.Errorf("unknown mode %q: use %s to encrypt or %s to decrypt", cfg.mode, modeEncrypt, modeDecrypt)
	}

	fmt.Printf("Reading key from %s...\n", cfg.keyPath)
	key, err := readKey(afs, cfg.keyPath)
	if err != nil {
		return fmt.Errorf("cannot set up key: %w", err)
	}
	fmt.Printf("Key fingerprint: %s\n", fingerprint(key))

	input, err := fs.ReadFile(afs, cfg.inputPath)
	if err != nil {
		return fmt.Errorf("cannot read input: %w", err)
	}
	fmt.Printf("Input file %s with size %s\n", cfg.inputPath, utils.PrettySize(float64(len(input))))

	p := &blocks.Processor{Workers: cfg.workers}
	start := time.Now()
	var output []byte
	switch cfg.mode {
	case modeEncrypt:
		fmt.Println("Encrypt!")
		output = p.Encrypt(input, key)
	case modeDecrypt:
		fmt.Println("Decrypt!")
		output = p.Decrypt(input, key)
		if cfg.strip {
			output = blocks.StripPadding(output)
		}
	}
	elapsed := time.Since(start)

	if err := fs.WriteFile(afs, cfg.outputPath, output); err != nil {
		return fmt.Errorf("cannot write output: %w", err)
	}
	fmt.Printf("Output file %s with size %s\n", cfg.outputPath, utils.PrettySize(float64(len(output))))
	fmt.Printf("Done: OK (%v)\n", elapsed)
	return nil
}

// readKey reads the key file as text and maps it onto a 256-bit key.
// The file contents are used verbatim, trailing newline included.
func readKey(afs afero.Fs, path string) (aes256.Key, error) {
	raw, err := fs.ReadFile(afs, path)
	if err != nil {
		return aes256.Key{}, err
	}
	fmt.Printf("key length: %d\n", len(raw))
	switch {
	case len(raw) > aes256.KeySize:
		fmt.Printf("Warning: key is longer than %d bytes, only the first %d bytes are used\n", aes256.KeySize, aes256.KeySize)
	case len(raw) < aes256.KeySize:
		fmt.Printf("Warning: key is shorter than %d bytes, the remaining %d bytes are zero\n", aes256.KeySize, aes256.KeySize-len(raw))
	}
	return aes256.KeyFromString(string(raw)), nil
}
