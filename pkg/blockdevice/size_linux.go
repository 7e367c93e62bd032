//go:build linux
// +build linux

package blockdevice

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

func getSizeBytes(fd int) (int64, error) {
	var sizeBytes uint64
	if _, _, err := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), unix.BLKGETSIZE64, uintptr(unsafe.Pointer(&sizeBytes))); err != 0 {
		return 0, err
	}
	return int64(sizeBytes), nil
}
