package fat32

import (
	"fmt"
	"math"
)

const (
	// megabyte is the unit of the size options.
	megabyte = 1 << 20

	// maxSizeMB keeps the sector count within the boot sector's 32-bit
	// field (and the size arithmetic within int64).
	maxSizeMB = int64(math.MaxUint32) * 512 / megabyte
)

// Geometry is the sector layout derived from Options.
type Geometry struct {
	SectorSize        uint16
	SectorsPerCluster uint8
	ReservedSectors   uint16
	NumFATs           uint8

	// TotalSectors is the size of the whole volume, data region included.
	TotalSectors uint32

	// TotalClusters counts the volume in cluster units. The FAT is sized
	// from it, which overshoots the addressable data clusters slightly
	// and keeps every chain index in range.
	TotalClusters uint32

	// FATSizeSectors is the length of a single FAT copy.
	FATSizeSectors uint32
}

// NewGeometry derives the sector layout for opts. Parameter combinations
// that cannot be encoded in a boot sector or that leave no room for the
// volume's own metadata are rejected.
func NewGeometry(opts Options) (Geometry, error) {
	if opts.SizeMB < 1 {
		return Geometry{}, fmt.Errorf("volume size must be at least 1 MB, got %d MB", opts.SizeMB)
	}
	if opts.SectorSize != 512 {
		return Geometry{}, fmt.Errorf("sector size must be 512 bytes, got %d", opts.SectorSize)
	}
	if opts.SectorsPerCluster == 0 || opts.SectorsPerCluster&(opts.SectorsPerCluster-1) != 0 {
		return Geometry{}, fmt.Errorf("sectors per cluster must be a power of two, got %d", opts.SectorsPerCluster)
	}
	if opts.ReservedSectors == 0 {
		return Geometry{}, fmt.Errorf("reserved sectors must at least cover the boot sector")
	}
	if opts.NumFATs == 0 {
		return Geometry{}, fmt.Errorf("number of FAT copies must be at least 1")
	}

	if opts.SizeMB > maxSizeMB {
		return Geometry{}, fmt.Errorf("%d MB exceeds the 32-bit sector count (max %d MB)", opts.SizeMB, maxSizeMB)
	}

	totalSectors := opts.SizeMB * megabyte / int64(opts.SectorSize)
	g := Geometry{
		SectorSize:        opts.SectorSize,
		SectorsPerCluster: opts.SectorsPerCluster,
		ReservedSectors:   opts.ReservedSectors,
		NumFATs:           opts.NumFATs,
		TotalSectors:      uint32(totalSectors),
	}
	g.TotalClusters = g.TotalSectors / uint32(opts.SectorsPerCluster)
	g.FATSizeSectors = uint32(fullSectors(int64(g.TotalClusters)*fatEntrySize, int64(opts.SectorSize)))

	if opts.RootCluster < unusableClusters || opts.RootCluster >= g.TotalClusters {
		return Geometry{}, fmt.Errorf("root cluster %d outside the volume's clusters [%d, %d)", opts.RootCluster, unusableClusters, g.TotalClusters)
	}
	if g.metadataBytes() > g.ImageBytes() {
		return Geometry{}, fmt.Errorf("%d MB cannot hold %d reserved sectors and %d FAT copies of %d sectors", opts.SizeMB, opts.ReservedSectors, opts.NumFATs, g.FATSizeSectors)
	}
	return g, nil
}

// ImageBytes returns the size of the complete volume image in bytes.
func (g Geometry) ImageBytes() int64 {
	return int64(g.TotalSectors) * int64(g.SectorSize)
}

// FATStartSector returns the sector at which the first FAT copy begins.
func (g Geometry) FATStartSector() uint32 {
	return uint32(g.ReservedSectors)
}

// DataStartSector returns the first sector of the data region. Its first
// cluster is cluster 2, conventionally the root directory.
func (g Geometry) DataStartSector() uint32 {
	return g.FATStartSector() + uint32(g.NumFATs)*g.FATSizeSectors
}

// fatBytes is the length of one FAT copy in bytes.
func (g Geometry) fatBytes() int64 {
	return int64(g.FATSizeSectors) * int64(g.SectorSize)
}

// clusterBytes is the length of one cluster in bytes.
func (g Geometry) clusterBytes() int64 {
	return int64(g.SectorsPerCluster) * int64(g.SectorSize)
}

// metadataBytes is the length of everything written before the zero data
// region: the reserved area, the FAT copies and the root directory cluster.
func (g Geometry) metadataBytes() int64 {
	return int64(g.ReservedSectors)*int64(g.SectorSize) + int64(g.NumFATs)*g.fatBytes() + g.clusterBytes()
}

func fullSectors(bytes, sectorSize int64) int64 {
	sectors := bytes / sectorSize
	if bytes%sectorSize > 0 {
		sectors++
	}
	return sectors
}
