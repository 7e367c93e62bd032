//go:build linux
// +build linux

package loopback

import (
	"errors"
	"fmt"

	"github.com/buildbarn/bb-devicemapper/pkg/util"

	"golang.org/x/sys/unix"
)

const loopControlPath = "/dev/loop-control"

type linuxControl struct {
	fd int
}

// NewControl opens the loop device control node of the kernel. The
// resulting Control claims free devices using LOOP_CTL_GET_FREE, which
// allocates new device nodes if all existing ones are in use.
func NewControl() (ClosableControl, error) {
	fd, err := unix.Open(loopControlPath, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, util.StatusWrapf(err, "Failed to open %#v", loopControlPath)
	}
	return &linuxControl{fd: fd}, nil
}

func (c *linuxControl) NextFree() (Device, error) {
	number, err := unix.IoctlRetInt(c.fd, unix.LOOP_CTL_GET_FREE)
	if err != nil {
		return nil, util.StatusWrap(err, "Failed to obtain free loop device")
	}
	return &linuxDevice{
		path: fmt.Sprintf("/dev/loop%d", number),
	}, nil
}

func (c *linuxControl) Close() error {
	return unix.Close(c.fd)
}

type linuxDevice struct {
	path string
}

func (d *linuxDevice) Path() string {
	return d.path
}

func (d *linuxDevice) Attach(backingFilePath string, offsetBytes uint64) error {
	backingFD, err := unix.Open(backingFilePath, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return util.StatusWrapf(err, "Failed to open backing file %#v", backingFilePath)
	}
	defer unix.Close(backingFD)

	loopFD, err := unix.Open(d.path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return util.StatusWrapf(err, "Failed to open loop device %#v", d.path)
	}
	defer unix.Close(loopFD)

	if err := unix.IoctlSetInt(loopFD, unix.LOOP_SET_FD, backingFD); err != nil {
		return util.StatusWrapf(err, "Failed to attach backing file %#v to loop device %#v", backingFilePath, d.path)
	}

	// The file name is informational only. It is shown by tools
	// like losetup, and is truncated if it doesn't fit.
	info := unix.LoopInfo64{Offset: offsetBytes}
	copy(info.File_name[:len(info.File_name)-1], backingFilePath)
	if err := unix.IoctlLoopSetStatus64(loopFD, &info); err != nil {
		unix.IoctlSetInt(loopFD, unix.LOOP_CLR_FD, 0)
		return util.StatusWrapf(err, "Failed to set status of loop device %#v", d.path)
	}
	return nil
}

func (d *linuxDevice) Detach() error {
	loopFD, err := unix.Open(d.path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return util.StatusWrapf(err, "Failed to open loop device %#v", d.path)
	}
	defer unix.Close(loopFD)

	// ENXIO is returned if no backing file is attached.
	if err := unix.IoctlSetInt(loopFD, unix.LOOP_CLR_FD, 0); err != nil && !errors.Is(err, unix.ENXIO) {
		return util.StatusWrapf(err, "Failed to detach loop device %#v", d.path)
	}
	return nil
}
