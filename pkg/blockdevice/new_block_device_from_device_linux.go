//go:build linux
// +build linux

package blockdevice

import (
	"github.com/buildbarn/bb-devicemapper/pkg/util"

	"golang.org/x/sys/unix"
)

// NewBlockDeviceFromDevice maps the entire contents of a block device
// into the address space of the current process. Access to the memory
// map is provided in the form of an io.ReaderAt/io.WriterAt.
//
// The logical sector size of the block device and the total number of
// sectors are also returned. It may be assumed that these remain
// constant over the lifetime of the block device and process.
func NewBlockDeviceFromDevice(path string) (BlockDevice, int, int64, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, 0, 0, util.StatusWrapf(err, "Failed to open device node %#v", path)
	}

	sectorSizeBytes, err := unix.IoctlGetInt(fd, unix.BLKSSZGET)
	if err != nil {
		unix.Close(fd)
		return nil, 0, 0, util.StatusWrapf(err, "Failed to obtain sector size of device node %#v", path)
	}
	deviceSizeBytes, err := getSizeBytes(fd)
	if err != nil {
		unix.Close(fd)
		return nil, 0, 0, util.StatusWrapf(err, "Failed to obtain size of device node %#v", path)
	}

	bd, err := newMemoryMappedBlockDevice(fd, int(deviceSizeBytes))
	if err != nil {
		unix.Close(fd)
		return nil, 0, 0, err
	}
	return bd, sectorSizeBytes, deviceSizeBytes / int64(sectorSizeBytes), nil
}
