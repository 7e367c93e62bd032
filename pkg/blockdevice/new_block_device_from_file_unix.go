//go:build darwin || freebsd || linux
// +build darwin freebsd linux

package blockdevice

import (
	"github.com/buildbarn/bb-devicemapper/pkg/util"

	"golang.org/x/sys/unix"
)

// NewBlockDeviceFromFile creates a BlockDevice that is backed by a
// regular file stored in a file system. The file is created if it does
// not exist, and grown to the next multiple of the sector size.
//
// The sector size and the number of sectors are also returned. The
// sector size is the block size reported by fstat(), which tends to be
// larger than SectorSizeBytes.
func NewBlockDeviceFromFile(path string, minimumSizeBytes int) (BlockDevice, int, int64, error) {
	fd, err := unix.Open(path, unix.O_CREAT|unix.O_RDWR|unix.O_CLOEXEC, 0o666)
	if err != nil {
		return nil, 0, 0, util.StatusWrapf(err, "Failed to open file %#v", path)
	}

	// Use the block size returned by fstat() to determine the
	// sector size and the number of sectors needed to store the
	// desired amount of space.
	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd)
		return nil, 0, 0, util.StatusWrapf(err, "Failed to obtain size of file %#v", path)
	}
	sectorSizeBytes := int(stat.Blksize)
	sectorCount := int64((uint64(minimumSizeBytes) + uint64(stat.Blksize) - 1) / uint64(stat.Blksize))
	sizeBytes := int64(sectorSizeBytes) * sectorCount

	if err := unix.Ftruncate(fd, sizeBytes); err != nil {
		unix.Close(fd)
		return nil, 0, 0, util.StatusWrapf(err, "Failed to truncate file %#v to %d bytes", path, sizeBytes)
	}

	bd, err := newMemoryMappedBlockDevice(fd, int(sizeBytes))
	if err != nil {
		unix.Close(fd)
		return nil, 0, 0, err
	}
	return bd, sectorSizeBytes, sectorCount, nil
}
