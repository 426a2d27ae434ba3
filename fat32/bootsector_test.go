package fat32

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBootSectorLayout(t *testing.T) {
	opts := DefaultOptions()
	g, err := NewGeometry(opts)
	if err != nil {
		t.Fatal(err)
	}
	sector := newBootSector(opts, g).toBytes()
	if len(sector) != bootSectorSize {
		t.Fatalf("boot sector is %d bytes, want %d", len(sector), bootSectorSize)
	}

	for _, tt := range []struct {
		desc   string
		offset int
		want   []byte
	}{
		{"jump code", 0, []byte{0xEB, 0x3C, 0x90}},
		{"OEM name", 3, []byte("MKFAT32 ")},
		{"bytes per sector", 11, []byte{0x00, 0x02}},
		{"sectors per cluster", 13, []byte{0x01}},
		{"reserved sectors", 14, []byte{0x20, 0x00}},
		{"FAT copies", 16, []byte{0x02}},
		{"root entry count", 17, []byte{0x00, 0x00}},
		{"16-bit total sectors", 19, []byte{0x00, 0x00}},
		{"media descriptor", 21, []byte{0xF8}},
		{"16-bit FAT size", 22, []byte{0x00, 0x00}},
		{"sectors per track", 24, []byte{0x20, 0x00}},
		{"heads", 26, []byte{0x40, 0x00}},
		{"hidden sectors", 28, []byte{0x00, 0x00, 0x00, 0x00}},
		{"32-bit total sectors", 32, []byte{0x00, 0x00, 0x01, 0x00}},
		{"32-bit FAT size", 36, []byte{0x00, 0x02, 0x00, 0x00}},
		{"ext flags", 40, []byte{0x00, 0x00}},
		{"file system version", 42, []byte{0x00, 0x00}},
		{"root cluster", 44, []byte{0x02, 0x00, 0x00, 0x00}},
		{"FSInfo sector", 48, []byte{0x01, 0x00}},
		{"backup boot sector", 50, []byte{0x06, 0x00}},
		{"drive number", 64, []byte{0x80}},
		{"extended boot signature", 66, []byte{0x29}},
		{"volume ID", 67, []byte{0x78, 0x56, 0x34, 0x12}},
		{"volume label", 71, []byte("ICEOS DISK ")},
		{"file system type", 82, []byte("FAT32   ")},
		{"signature", 510, []byte{0x55, 0xAA}},
	} {
		t.Run(tt.desc, func(t *testing.T) {
			got := sector[tt.offset : tt.offset+len(tt.want)]
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("bytes at offset %d: diff (-want +got):\n%s", tt.offset, diff)
			}
		})
	}
}

func TestBootSectorZeroFields(t *testing.T) {
	opts := DefaultOptions()
	g, err := NewGeometry(opts)
	if err != nil {
		t.Fatal(err)
	}
	sector := newBootSector(opts, g).toBytes()

	for _, tt := range []struct {
		desc       string
		start, end int
	}{
		{"reserved bytes", 52, 64},
		{"reserved byte after drive number", 65, 66},
		{"boot code", 90, 510},
	} {
		if !allZero(sector[tt.start:tt.end]) {
			t.Errorf("%s (bytes %d..%d) are not zero", tt.desc, tt.start, tt.end-1)
		}
	}
}

func TestBootSectorPadsNames(t *testing.T) {
	opts := DefaultOptions()
	opts.OEMName = "X"
	opts.VolumeLabel = "BOOTBOOTBOOTBOOT"
	g, err := NewGeometry(opts)
	if err != nil {
		t.Fatal(err)
	}
	sector := newBootSector(opts, g).toBytes()
	if got, want := string(sector[3:11]), "X       "; got != want {
		t.Errorf("OEM name field = %q, want %q", got, want)
	}
	if got, want := string(sector[71:82]), "BOOTBOOTBOO"; got != want {
		t.Errorf("volume label field = %q, want %q", got, want)
	}
}
