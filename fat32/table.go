package fat32

import "encoding/binary"

const (
	// fatEntrySize is the width of one FAT32 entry in bytes. Only the low
	// 28 bits of an entry are significant.
	fatEntrySize = 4

	// unusableClusters is the number of cluster numbers which never
	// address data: entries 0 and 1 of the FAT hold the media descriptor
	// copy and the reserved end-of-chain value.
	unusableClusters = uint32(2)

	// endOfChain marks the end of a cluster chain in the FAT.
	endOfChain = uint32(0x0FFFFFFF)

	// fatID is the value of FAT entry 0 before the media descriptor is
	// merged into its low byte.
	fatID = uint32(0x0FFFFF00)
)

// newTable returns one FAT copy: entry 0 carries the media descriptor,
// entry 1 holds the reserved end-of-chain value, the root directory is a
// terminated single-cluster chain, and every other cluster is free.
func newTable(opts Options, g Geometry) []byte {
	t := make([]byte, g.fatBytes())
	binary.LittleEndian.PutUint32(t[0*fatEntrySize:], fatID|uint32(opts.Media))
	binary.LittleEndian.PutUint32(t[1*fatEntrySize:], endOfChain)
	binary.LittleEndian.PutUint32(t[int64(opts.RootCluster)*fatEntrySize:], endOfChain)
	return t
}
