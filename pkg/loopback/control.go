// Package loopback provisions loop devices backed by sparse files, so
// that code operating on block devices (e.g., device mapper tables) can
// be tested without requiring spare disks.
//
// Loop devices are claimed from a pool that is shared by all processes
// on the system. No locking is performed, meaning that concurrent
// test runs on the same host may race when claiming free devices.
package loopback

import (
	"io"
)

// Control provides access to the operating system's pool of loop
// devices.
type Control interface {
	// NextFree returns a loop device that currently has no backing
	// file attached to it.
	NextFree() (Device, error)
}

// ClosableControl is a Control that holds on to operating system
// resources that need to be released.
type ClosableControl interface {
	Control
	io.Closer
}

// Device is a single loop device.
type Device interface {
	// Path returns the path of the device node, e.g. "/dev/loop0".
	Path() string
	// Attach a backing file to the loop device. The loop device
	// exposes the contents of the file, starting at a given offset.
	Attach(backingFilePath string, offsetBytes uint64) error
	// Detach the backing file from the loop device, returning it to
	// the pool of free devices. Detaching a device that is already
	// detached is not an error.
	Detach() error
}
