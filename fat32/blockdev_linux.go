package fat32

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// deviceBytes returns the capacity of an opened block device in bytes.
func deviceBytes(f *os.File) (int64, error) {
	size, err := unix.IoctlGetInt(int(f.Fd()), unix.BLKGETSIZE64)
	if err != nil {
		return 0, fmt.Errorf("unable to get block device size: %v", err)
	}
	return int64(size), nil
}
