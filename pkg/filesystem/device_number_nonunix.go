//go:build windows
// +build windows

package filesystem

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// HostCompositeEncoding is the dev_t layout of the operating system the
// process is running on. This platform has no native dev_t, so the
// Linux layout is used.
var HostCompositeEncoding = LinuxCompositeEncoding

// GetBlockDeviceNumber returns the raw device number of the device node
// at a given path. This implementation is a stub for operating systems
// that don't have device nodes.
func GetBlockDeviceNumber(path string) (uint64, bool, error) {
	return 0, false, status.Error(codes.Unimplemented, "Device nodes are not supported on this platform")
}
