package blockdevice

import (
	"io"
	"os"

	"github.com/buildbarn/bb-devicemapper/pkg/util"
)

// SectorSizeBytes is the size of a sector as used by the kernel's
// block layer and device mapper tables, regardless of the logical
// sector size of the underlying storage medium.
const SectorSizeBytes = 512

// WriteSectors opens an existing file or device node and writes the
// contents of a sector-sized buffer to it lengthSectors times, starting
// at offsetSectors. Data is flushed to storage before returning.
//
// If an error occurs, sectors written up to that point are left in
// place, meaning the contents of the range are undefined.
func WriteSectors(path string, offsetSectors, lengthSectors int64, buf *[SectorSizeBytes]byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return util.StatusWrapf(err, "Failed to open %#v", path)
	}
	defer f.Close()

	if _, err := f.Seek(offsetSectors*SectorSizeBytes, io.SeekStart); err != nil {
		return util.StatusWrapf(err, "Failed to seek to sector %d of %#v", offsetSectors, path)
	}
	for i := int64(0); i < lengthSectors; i++ {
		if _, err := f.Write(buf[:]); err != nil {
			return util.StatusWrapf(err, "Failed to write sector %d of %#v", offsetSectors+i, path)
		}
	}
	if err := f.Sync(); err != nil {
		return util.StatusWrapf(err, "Failed to flush %#v", path)
	}
	if err := f.Close(); err != nil {
		return util.StatusWrapf(err, "Failed to close %#v", path)
	}
	return nil
}

var zeroSector [SectorSizeBytes]byte

// WipeSectors overwrites lengthSectors sectors of a file or device node
// with zero bytes, starting at offsetSectors. This can be used to
// remove stale metadata (e.g., device mapper superblocks) left behind
// by previous users of a device.
func WipeSectors(path string, offsetSectors, lengthSectors int64) error {
	return WriteSectors(path, offsetSectors, lengthSectors, &zeroSector)
}
