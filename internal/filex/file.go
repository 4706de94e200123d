// Package filex resolves the directories the client writes decrypted files to.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// dirMode keeps decrypted downloads private to the current user.
const dirMode = 0o700

// EnsurePrivateDir returns the absolute path of dir, creating it with
// owner-only permissions if needed. A relative dir is resolved against the
// working directory.
func EnsurePrivateDir(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("directory name is empty")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, dirMode); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}
