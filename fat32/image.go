package fat32

import (
	"fmt"
	"io"
	"os"
)

// Create synthesizes a volume image at path. Regular files are created or
// truncated and sparse-extended to the volume size, so the data region
// reads back as zeros without necessarily occupying disk space. Block
// devices are checked for capacity and written in full.
func Create(path string, opts Options) error {
	g, err := NewGeometry(opts)
	if err != nil {
		return err
	}

	if fi, err := os.Stat(path); err == nil && fi.Mode()&os.ModeDevice != 0 {
		return createOnDevice(path, opts, g)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating %s: %v", path, err)
	}
	if err := writeMetadata(f, opts, g); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %v", path, err)
	}
	if err := f.Truncate(g.ImageBytes()); err != nil {
		f.Close()
		return fmt.Errorf("extending %s to %d bytes: %v", path, g.ImageBytes(), err)
	}
	return f.Close()
}

// createOnDevice writes the image to a block device. Devices cannot be
// truncated, so the data region is written out in full.
func createOnDevice(path string, opts Options, g Geometry) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("opening %s: %v", path, err)
	}
	size, err := deviceBytes(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("sizing %s: %v", path, err)
	}
	if size < g.ImageBytes() {
		f.Close()
		return fmt.Errorf("%s holds %d bytes, but a %d MB volume needs %d", path, size, opts.SizeMB, g.ImageBytes())
	}
	if err := writeMetadata(f, opts, g); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %v", path, err)
	}
	if err := writeZeros(f, g.ImageBytes()-g.metadataBytes()); err != nil {
		f.Close()
		return fmt.Errorf("zeroing data region of %s: %v", path, err)
	}
	return f.Close()
}

// WriteImage writes a complete volume image to w. Every byte of the data
// region passes through w, so the stream totals Geometry.ImageBytes bytes;
// Create extends regular files sparsely instead.
func WriteImage(w io.Writer, opts Options) error {
	g, err := NewGeometry(opts)
	if err != nil {
		return err
	}
	if err := writeMetadata(w, opts, g); err != nil {
		return err
	}
	if err := writeZeros(w, g.ImageBytes()-g.metadataBytes()); err != nil {
		return fmt.Errorf("zeroing data region: %v", err)
	}
	return nil
}

// writeMetadata writes the regions every image starts with, in volume
// order: the boot sector, the zero remainder of the reserved area, each
// FAT copy, and the blank root directory cluster.
func writeMetadata(w io.Writer, opts Options, g Geometry) error {
	if _, err := w.Write(newBootSector(opts, g).toBytes()); err != nil {
		return fmt.Errorf("writing boot sector: %v", err)
	}
	// The rest of the reserved area stays zero: no FSInfo contents, no
	// backup boot sector.
	if err := writeZeros(w, int64(g.ReservedSectors-1)*int64(g.SectorSize)); err != nil {
		return fmt.Errorf("zeroing reserved sectors: %v", err)
	}
	fat := newTable(opts, g)
	for i := uint8(0); i < g.NumFATs; i++ {
		if _, err := w.Write(fat); err != nil {
			return fmt.Errorf("writing FAT copy %d: %v", i, err)
		}
	}
	if err := writeZeros(w, g.clusterBytes()); err != nil {
		return fmt.Errorf("zeroing root directory cluster: %v", err)
	}
	return nil
}

// writeZeros writes n zero bytes to w in bounded chunks.
func writeZeros(w io.Writer, n int64) error {
	if n <= 0 {
		return nil
	}
	chunk := int64(megabyte)
	if n < chunk {
		chunk = n
	}
	buf := make([]byte, chunk)
	for n > 0 {
		c := int64(len(buf))
		if c > n {
			c = n
		}
		if _, err := w.Write(buf[:c]); err != nil {
			return err
		}
		n -= c
	}
	return nil
}
