package fat32

import (
	"bytes"
	"encoding/binary"
)

const (
	// bootSectorSize is one sector; the boot sector never spills over.
	bootSectorSize = 512

	// extBootSignature announces that the volume ID, label and file
	// system type fields are present.
	extBootSignature = uint8(0x29)

	fileSystemType = "FAT32   "
)

var (
	// jumpCode is the intel 80x86 jump instruction BIOSes expect at byte 0.
	jumpCode = [3]byte{0xEB, 0x3C, 0x90}

	bootSectorSignature = [2]byte{0x55, 0xAA}
)

// bootSector is sector 0 of the volume: the BIOS parameter block plus the
// FAT32 extended fields.
type bootSector struct {
	oemName           string
	sectorSize        uint16
	sectorsPerCluster uint8
	reservedSectors   uint16
	numFATs           uint8
	media             uint8
	sectorsPerTrack   uint16
	heads             uint16
	totalSectors      uint32
	fatSizeSectors    uint32
	rootCluster       uint32
	fsInfoSector      uint16
	backupBootSector  uint16
	driveNumber       uint8
	volumeID          uint32
	volumeLabel       string
}

func newBootSector(opts Options, g Geometry) *bootSector {
	return &bootSector{
		oemName:           opts.OEMName,
		sectorSize:        g.SectorSize,
		sectorsPerCluster: g.SectorsPerCluster,
		reservedSectors:   g.ReservedSectors,
		numFATs:           g.NumFATs,
		media:             opts.Media,
		sectorsPerTrack:   opts.SectorsPerTrack,
		heads:             opts.Heads,
		totalSectors:      g.TotalSectors,
		fatSizeSectors:    g.FATSizeSectors,
		rootCluster:       opts.RootCluster,
		fsInfoSector:      opts.FSInfoSector,
		backupBootSector:  opts.BackupBootSector,
		driveNumber:       opts.DriveNumber,
		volumeID:          opts.VolumeID,
		volumeLabel:       opts.VolumeLabel,
	}
}

// toBytes encodes the sector little-endian at the offsets FAT32 consumers
// expect. Fields that are always zero on FAT32 volumes (root entry count,
// the 16-bit sector and FAT size fields, hidden sectors, ext flags, file
// system version, boot code) are not written.
func (b *bootSector) toBytes() []byte {
	s := make([]byte, bootSectorSize)
	copy(s[0:3], jumpCode[:])
	copy(s[3:11], pad(b.oemName, 8))
	binary.LittleEndian.PutUint16(s[11:13], b.sectorSize)
	s[13] = b.sectorsPerCluster
	binary.LittleEndian.PutUint16(s[14:16], b.reservedSectors)
	s[16] = b.numFATs
	s[21] = b.media
	binary.LittleEndian.PutUint16(s[24:26], b.sectorsPerTrack)
	binary.LittleEndian.PutUint16(s[26:28], b.heads)
	binary.LittleEndian.PutUint32(s[32:36], b.totalSectors)
	binary.LittleEndian.PutUint32(s[36:40], b.fatSizeSectors)
	binary.LittleEndian.PutUint32(s[44:48], b.rootCluster)
	binary.LittleEndian.PutUint16(s[48:50], b.fsInfoSector)
	binary.LittleEndian.PutUint16(s[50:52], b.backupBootSector)
	s[64] = b.driveNumber
	s[66] = extBootSignature
	binary.LittleEndian.PutUint32(s[67:71], b.volumeID)
	copy(s[71:82], pad(b.volumeLabel, 11))
	copy(s[82:90], fileSystemType)
	copy(s[510:512], bootSectorSignature[:])
	return s
}

// pad returns s in a field of n bytes, space padded and truncated if longer.
func pad(s string, n int) []byte {
	field := bytes.Repeat([]byte{' '}, n)
	copy(field, s)
	return field
}
