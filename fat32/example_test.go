package fat32_test

import (
	"log"
	"os"
	"path/filepath"

	"github.com/Definetly-a-username/ICE-X86-64-32/fat32"
)

func Example() {
	dir, err := os.MkdirTemp("", "example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "volume.img")
	opts := fat32.DefaultOptions()
	opts.SizeMB = 64
	if err := fat32.Create(path, opts); err != nil {
		log.Fatal(err)
	}

	log.Printf("mount -o loop %s /mnt/loop", path)
}
