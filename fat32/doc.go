// Package fat32 implements writing blank FAT32 volume images, which is
// useful when preparing boot volumes for embedded devices and emulators.
// The images contain a boot sector, initialized file allocation tables
// and an empty root directory; populating the volume with files is left
// to the consumer.
//
// Geometry is derived from the requested volume size, and identical
// parameters always produce identical images. The defaults use a cluster
// size of 1 sector and a sector size of 512 bytes.
package fat32
