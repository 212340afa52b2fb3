package cmd

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"howto/internal/index"
)

// runGenerate is the root command: regenerate README.md from entries/.
func runGenerate(_ *cobra.Command, _ []string) error {
	release, err := acquireGenerateLock(indexFile)
	if err != nil {
		return err
	}
	defer release()

	n, err := index.Build(indexFile, entriesDir, indexFile)
	if err != nil {
		return err
	}

	printOK("", fmt.Sprintf("%s regenerated (%d entries)", indexFile, n))
	return nil
}

// acquireGenerateLock serializes regenerations of the same output file so
// two concurrent runs cannot interleave writes. The lock lives under the
// user cache dir, keyed to the absolute output path, so the docs
// repository itself stays clean.
func acquireGenerateLock(outPath string) (func(), error) {
	path, err := generateLockPath(outPath)
	if err != nil {
		return nil, err
	}
	l := flock.New(path)
	locked, err := l.TryLock()
	if err != nil {
		return nil, fmt.Errorf("cannot acquire regeneration lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another regeneration is in progress (lock: %s)", path)
	}
	return func() { _ = l.Unlock() }, nil
}

// generateLockPath determines the per-user lock path for outPath.
func generateLockPath(outPath string) (string, error) {
	abs, err := filepath.Abs(outPath)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", outPath, err)
	}
	sum := sha256.Sum256([]byte(abs))
	name := fmt.Sprintf("generate-%x.lock", sum[:6])

	if cacheDir, err := os.UserCacheDir(); err == nil && cacheDir != "" {
		dir := filepath.Join(cacheDir, "howto")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			return filepath.Join(dir, name), nil
		}
	}
	return filepath.Join(os.TempDir(), name), nil
}
