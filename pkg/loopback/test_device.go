package loopback

import (
	"io"
	"os"

	"github.com/buildbarn/bb-devicemapper/pkg/blockdevice"
	"github.com/buildbarn/bb-devicemapper/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// BackingFileSizeBytes is the size of the sparse files created
	// to back loop devices.
	BackingFileSizeBytes = 1 << 30
	// BackingFileOffsetBytes is the offset within the backing file
	// at which a loop device starts. Loop devices map entire files.
	BackingFileOffsetBytes = 0
	// WipeSizeBytes is the amount of data at the start of every
	// loop device that is zeroed after attaching it.
	WipeSizeBytes = 1 << 20
)

// CreateBackingFile creates a sparse file of a given size that can be
// used to back a loop device. Space is not reserved on the underlying
// file system, meaning writes against the loop device may fail if the
// file system runs out of space.
func CreateBackingFile(path string, sizeBytes int64) error {
	if sizeBytes <= 0 {
		return status.Errorf(codes.InvalidArgument, "Invalid size for backing file %#v: %d bytes", path, sizeBytes)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return util.StatusWrapf(err, "Failed to create backing file %#v", path)
	}
	defer f.Close()

	if _, err := f.Seek(sizeBytes-1, io.SeekStart); err != nil {
		return util.StatusWrapf(err, "Failed to seek to end of backing file %#v", path)
	}
	if _, err := f.Write([]byte{0}); err != nil {
		return util.StatusWrapf(err, "Failed to grow backing file %#v", path)
	}
	if err := f.Sync(); err != nil {
		return util.StatusWrapf(err, "Failed to flush backing file %#v", path)
	}
	if err := f.Close(); err != nil {
		return util.StatusWrapf(err, "Failed to close backing file %#v", path)
	}
	return nil
}

// TestDevice is a loop device that has a backing file attached to it
// for the duration of a test. Its lifecycle is attached, followed by
// detached. Once detached, a TestDevice cannot be attached again.
type TestDevice struct {
	device          Device
	backingFilePath string
	attached        bool
}

// NewTestDevice claims a free loop device and attaches an existing
// backing file to it. The first WipeSizeBytes of the device are zeroed,
// as device mapper metadata may be left behind by previous tests, even
// if they tore down their devices properly.
//
// If wiping fails, the loop device is detached before returning.
func NewTestDevice(control Control, backingFilePath string) (*TestDevice, error) {
	f, err := os.OpenFile(backingFilePath, os.O_RDWR, 0)
	if err != nil {
		return nil, util.StatusWrapf(err, "Failed to open backing file %#v", backingFilePath)
	}
	f.Close()

	device, err := control.NextFree()
	if err != nil {
		return nil, err
	}
	if err := device.Attach(backingFilePath, BackingFileOffsetBytes); err != nil {
		return nil, err
	}
	td := &TestDevice{
		device:          device,
		backingFilePath: backingFilePath,
		attached:        true,
	}

	if err := blockdevice.WipeSectors(device.Path(), 0, WipeSizeBytes/blockdevice.SectorSizeBytes); err != nil {
		return nil, util.StatusFromMultiple([]error{
			util.StatusWrapf(err, "Failed to wipe loop device %#v", device.Path()),
			td.Detach(),
		})
	}
	return td, nil
}

// Path returns the path of the loop device's node.
func (td *TestDevice) Path() string {
	return td.device.Path()
}

// BackingFilePath returns the path of the file attached to the loop
// device.
func (td *TestDevice) BackingFilePath() string {
	return td.backingFilePath
}

// Detach the backing file from the loop device. Calling this function
// after the device has been detached successfully has no effect.
func (td *TestDevice) Detach() error {
	if !td.attached {
		return nil
	}
	if err := td.device.Detach(); err != nil {
		return err
	}
	td.attached = false
	return nil
}
