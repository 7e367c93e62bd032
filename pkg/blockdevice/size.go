package blockdevice

import (
	"os"

	"github.com/buildbarn/bb-devicemapper/pkg/util"
)

// GetSizeBytes returns the size of an opened block device by querying
// the kernel. Unlike fstat(), which reports a size of zero for device
// nodes, this returns the actual capacity of the device. An error is
// returned if the file does not refer to a block device.
func GetSizeBytes(f *os.File) (int64, error) {
	conn, err := f.SyscallConn()
	if err != nil {
		return 0, util.StatusWrapf(err, "Failed to obtain file descriptor of %#v", f.Name())
	}
	var sizeBytes int64
	var ioctlErr error
	if err := conn.Control(func(fd uintptr) {
		sizeBytes, ioctlErr = getSizeBytes(int(fd))
	}); err != nil {
		return 0, util.StatusWrapf(err, "Failed to obtain file descriptor of %#v", f.Name())
	}
	if ioctlErr != nil {
		return 0, util.StatusWrapf(ioctlErr, "Failed to obtain size of block device %#v", f.Name())
	}
	return sizeBytes, nil
}
