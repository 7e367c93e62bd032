package loopback

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/buildbarn/bb-devicemapper/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Provision creates count backing files named "store<index>" in a
// directory and attaches each of them to a free loop device. Devices
// are returned in the same order as the index in the name of their
// backing file.
//
// If provisioning any of the devices fails, all devices that were
// attached up to that point are detached before returning the error.
// Errors that occur while detaching them are reported through an
// ErrorLogger, so that the original error is returned.
func Provision(control Control, count int, directory string, errorLogger util.ErrorLogger) ([]*TestDevice, error) {
	if count < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "Invalid number of loop devices: %d", count)
	}
	devices := make([]*TestDevice, 0, count)
	for i := 0; i < count; i++ {
		td, err := provisionOne(control, filepath.Join(directory, fmt.Sprintf("store%d", i)))
		if err != nil {
			if detachErr := DetachAll(devices); detachErr != nil {
				util.NewStatusWrappingErrorLogger(errorLogger, "Failed to detach loop devices after provisioning failed").Log(detachErr)
			}
			return nil, util.StatusWrapf(err, "Failed to provision loop device %d of %d", i+1, count)
		}
		devices = append(devices, td)
	}
	return devices, nil
}

func provisionOne(control Control, backingFilePath string) (*TestDevice, error) {
	if err := CreateBackingFile(backingFilePath, BackingFileSizeBytes); err != nil {
		return nil, err
	}
	return NewTestDevice(control, backingFilePath)
}

// DetachAll detaches a list of loop devices in reverse order. An
// attempt is made to detach every device, even if some of them fail.
func DetachAll(devices []*TestDevice) error {
	var errs []error
	for i := len(devices) - 1; i >= 0; i-- {
		if err := devices[i].Detach(); err != nil {
			errs = append(errs, err)
		}
	}
	return util.StatusFromMultiple(errs)
}

// DevicePaths returns the paths of the device nodes of a list of loop
// devices.
func DevicePaths(devices []*TestDevice) []string {
	paths := make([]string, 0, len(devices))
	for _, td := range devices {
		paths = append(paths, td.Path())
	}
	return paths
}

// WithDevicesFromControl creates a temporary directory, provisions
// count loop devices in it and calls a test function with the paths of
// the loop devices. Afterwards, the loop devices are detached and the
// temporary directory is removed. This also happens when the test
// function panics, in which case the panic is propagated.
//
// The temporary directory is created in $TEST_TMPDIR if set, so that
// it is cleaned up by Bazel.
func WithDevicesFromControl(control Control, count int, errorLogger util.ErrorLogger, test func(devicePaths []string) error) (err error) {
	directory, err := os.MkdirTemp(os.Getenv("TEST_TMPDIR"), "devicemapper")
	if err != nil {
		return util.StatusWrap(err, "Failed to create temporary directory")
	}
	defer func() {
		if removeErr := os.RemoveAll(directory); removeErr != nil {
			err = util.StatusFromMultiple([]error{
				err,
				util.StatusWrapf(removeErr, "Failed to remove temporary directory %#v", directory),
			})
		}
	}()

	devices, err := Provision(control, count, directory, errorLogger)
	if err != nil {
		return err
	}
	defer func() {
		if detachErr := DetachAll(devices); detachErr != nil {
			err = util.StatusFromMultiple([]error{err, detachErr})
		}
	}()

	return test(DevicePaths(devices))
}

// WithDevices is identical to WithDevicesFromControl, except that it
// uses the loop devices provided by the kernel. Errors that occur while
// cleaning up after a failure are written to the log.
func WithDevices(count int, test func(devicePaths []string) error) error {
	control, err := NewControl()
	if err != nil {
		return err
	}
	defer control.Close()

	return WithDevicesFromControl(NewMetricsControl(control), count, util.DefaultErrorLogger, test)
}
