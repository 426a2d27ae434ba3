//go:build !linux

package fat32

import (
	"errors"
	"os"
)

// deviceBytes returns the capacity of an opened block device in bytes.
func deviceBytes(f *os.File) (int64, error) {
	return 0, errors.New("block devices not supported on this platform")
}
