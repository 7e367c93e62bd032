//go:build !linux
// +build !linux

package loopback

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewControl opens the loop device control node of the kernel. This
// implementation is a stub for operating systems that don't have loop
// devices.
func NewControl() (ClosableControl, error) {
	return nil, status.Error(codes.Unimplemented, "Loop devices are not supported on this platform")
}
