// mkfat32 synthesizes a blank FAT32 volume image at the given path.
package main

import (
	"fmt"
	"os"

	"github.com/Definetly-a-username/ICE-X86-64-32/fat32"
	"github.com/Definetly-a-username/ICE-X86-64-32/humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: mkfat32 [flags] <output-path>")
	pflag.PrintDefaults()
}

func main() {
	opts := fat32.DefaultOptions()
	pflag.Int64VarP(&opts.SizeMB, "size-mb", "s", opts.SizeMB, "volume size in MB")
	pflag.Usage = usage
	pflag.Parse()
	if pflag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	path := pflag.Arg(0)

	geom, err := fat32.NewGeometry(opts)
	if err != nil {
		log.Fatal(err)
	}
	if err := fat32.Create(path, opts); err != nil {
		log.Fatal(err)
	}
	log.Infof("wrote %s: %s FAT32 volume (%d sectors, %d per FAT)",
		path, humanize.Bytes(uint64(geom.ImageBytes())), geom.TotalSectors, geom.FATSizeSectors)
}
