//go:build !unix

package mmapfile

import (
	"fmt"
	"os"
)

// Open reads a file into memory on platforms without mmap support.
// The cleanup function is a no-op kept for parity with the unix version.
func Open(filename string) ([]byte, func(), error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, func() {}, nil
}
