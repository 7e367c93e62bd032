//go:build freebsd
// +build freebsd

package blockdevice

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

func getSizeBytes(fd int) (int64, error) {
	var sizeBytes int64
	if _, _, err := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), unix.DIOCGMEDIASIZE, uintptr(unsafe.Pointer(&sizeBytes))); err != 0 {
		return 0, err
	}
	return sizeBytes, nil
}
