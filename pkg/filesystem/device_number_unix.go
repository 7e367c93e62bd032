//go:build darwin || freebsd || linux
// +build darwin freebsd linux

package filesystem

import (
	"github.com/buildbarn/bb-devicemapper/pkg/util"

	"golang.org/x/sys/unix"
)

// HostCompositeEncoding is the dev_t layout of the operating system the
// process is running on. It should be used to interpret st_rdev values
// returned by GetBlockDeviceNumber(). Conversion between both formats is
// platform dependent, and only bijective on some platforms.
var HostCompositeEncoding = CompositeEncoding{
	Pack: unix.Mkdev,
	Unpack: func(raw uint64) (uint32, uint32) {
		return unix.Major(raw), unix.Minor(raw)
	},
}

// GetBlockDeviceNumber returns the raw device number of the device node
// at a given path. False is returned if the node is not a block device,
// as other kinds of nodes (character devices, regular files) cannot be
// used as the target of a device mapper table.
func GetBlockDeviceNumber(path string) (uint64, bool, error) {
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return 0, false, util.StatusWrapf(err, "Failed to obtain status of %#v", path)
	}
	if stat.Mode&unix.S_IFMT != unix.S_IFBLK {
		return 0, false, nil
	}
	return uint64(stat.Rdev), true, nil
}
