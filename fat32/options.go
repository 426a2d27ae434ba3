package fat32

const (
	// hardDisk is the media descriptor for a hard disk (as opposed to floppy).
	hardDisk = uint8(0xF8)

	// firstHardDisk is the INT 13h drive number of the first fixed disk.
	firstHardDisk = uint8(0x80)
)

// Options select the geometry and identity of a volume image. Start from
// DefaultOptions; the zero value does not pass validation.
type Options struct {
	// SizeMB is the volume size in MB (1 MB = 1048576 bytes).
	SizeMB int64

	// SectorSize is the logical sector size in bytes. Only 512 is
	// supported.
	SectorSize uint16

	// SectorsPerCluster sets the allocation unit. Must be a power of two.
	SectorsPerCluster uint8

	// ReservedSectors lie before the first FAT, boot sector included.
	// Only the boot sector carries data; the remainder is zero-filled.
	ReservedSectors uint16

	// NumFATs is the number of identical FAT copies.
	NumFATs uint8

	// RootCluster is the cluster of the (empty) root directory.
	RootCluster uint32

	// Media is the media descriptor byte, mirrored into FAT entry 0.
	Media uint8

	// SectorsPerTrack and Heads are the disk geometry advertised to
	// legacy INT 13h loaders. They do not affect the layout.
	SectorsPerTrack uint16
	Heads           uint16

	// DriveNumber is the BIOS drive the volume expects to boot from.
	DriveNumber uint8

	// FSInfoSector is advertised in the boot sector, but the sector
	// itself stays zero-filled.
	FSInfoSector uint16

	// BackupBootSector is advertised in the boot sector; no backup copy
	// is written.
	BackupBootSector uint16

	// OEMName is space padded to 8 bytes.
	OEMName string

	// VolumeID is the serial number. Fixed rather than derived from the
	// clock, so identical parameters produce identical images.
	VolumeID uint32

	// VolumeLabel is space padded to 11 bytes.
	VolumeLabel string
}

// DefaultOptions returns the layout the boot pipeline expects: a 32 MB
// volume with single-sector clusters and two FATs.
func DefaultOptions() Options {
	return Options{
		SizeMB:            32,
		SectorSize:        512,
		SectorsPerCluster: 1,
		ReservedSectors:   32,
		NumFATs:           2,
		RootCluster:       2,
		Media:             hardDisk,
		SectorsPerTrack:   32,
		Heads:             64,
		DriveNumber:       firstHardDisk,
		FSInfoSector:      1,
		BackupBootSector:  6,
		OEMName:           "MKFAT32 ",
		VolumeID:          0x12345678,
		VolumeLabel:       "ICEOS DISK ",
	}
}
