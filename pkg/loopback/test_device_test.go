package loopback_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/buildbarn/bb-devicemapper/internal/mock"
	"github.com/buildbarn/bb-devicemapper/pkg/loopback"
	"github.com/buildbarn/bb-devicemapper/pkg/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newBackingFile(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "store0")
	require.NoError(t, loopback.CreateBackingFile(path, loopback.BackingFileSizeBytes))
	return path
}

func TestCreateBackingFile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// The file should have exactly the requested size, so
		// that the loop device has the same size.
		path := filepath.Join(t.TempDir(), "store0")
		require.NoError(t, loopback.CreateBackingFile(path, loopback.BackingFileSizeBytes))

		fileInfo, err := os.Stat(path)
		require.NoError(t, err)
		require.True(t, fileInfo.Mode().IsRegular())
		require.Equal(t, int64(loopback.BackingFileSizeBytes), fileInfo.Size())
	})

	t.Run("InvalidSize", func(t *testing.T) {
		for _, sizeBytes := range []int64{0, -1} {
			path := filepath.Join(t.TempDir(), "store0")
			testutil.RequireEqualStatus(
				t,
				status.Errorf(codes.InvalidArgument, "Invalid size for backing file %#v: %d bytes", path, sizeBytes),
				loopback.CreateBackingFile(path, sizeBytes))

			// No file should have been created.
			_, err := os.Stat(path)
			require.True(t, os.IsNotExist(err))
		}
	})
}

func TestNewTestDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	control := mock.NewMockControl(ctrl)

	t.Run("MissingBackingFile", func(t *testing.T) {
		// No loop device should be claimed if the backing file
		// cannot be opened.
		backingFilePath := filepath.Join(t.TempDir(), "store0")

		_, err := loopback.NewTestDevice(control, backingFilePath)
		testutil.RequirePrefixedStatus(t, status.Errorf(codes.Unknown, "Failed to open backing file %#v: ", backingFilePath), err)
	})

	t.Run("NextFreeFailure", func(t *testing.T) {
		backingFilePath := newBackingFile(t)
		control.EXPECT().NextFree().Return(nil, status.Error(codes.ResourceExhausted, "No free loop devices"))

		_, err := loopback.NewTestDevice(control, backingFilePath)
		testutil.RequireEqualStatus(t, status.Error(codes.ResourceExhausted, "No free loop devices"), err)
	})

	t.Run("AttachFailure", func(t *testing.T) {
		// A device that failed to attach has nothing to detach.
		backingFilePath := newBackingFile(t)
		device := mock.NewMockDevice(ctrl)
		control.EXPECT().NextFree().Return(device, nil)
		device.EXPECT().Attach(backingFilePath, uint64(0)).Return(status.Error(codes.PermissionDenied, "Operation not permitted"))

		_, err := loopback.NewTestDevice(control, backingFilePath)
		testutil.RequireEqualStatus(t, status.Error(codes.PermissionDenied, "Operation not permitted"), err)
	})

	t.Run("WipeFailure", func(t *testing.T) {
		// If the device cannot be wiped, it should be detached
		// before returning.
		backingFilePath := newBackingFile(t)
		nonexistentPath := filepath.Join(t.TempDir(), "loop")
		device := mock.NewMockDevice(ctrl)
		device.EXPECT().Path().Return(nonexistentPath).AnyTimes()
		control.EXPECT().NextFree().Return(device, nil)
		device.EXPECT().Attach(backingFilePath, uint64(0))
		device.EXPECT().Detach()

		_, err := loopback.NewTestDevice(control, backingFilePath)
		testutil.RequirePrefixedStatus(t, status.Errorf(codes.Unknown, "Failed to wipe loop device %#v: Failed to open %#v: ", nonexistentPath, nonexistentPath), err)
	})

	t.Run("Success", func(t *testing.T) {
		backingFilePath := newBackingFile(t)
		wipeTarget := newWipeTarget(t)
		device := mock.NewMockDevice(ctrl)
		device.EXPECT().Path().Return(wipeTarget).AnyTimes()
		control.EXPECT().NextFree().Return(device, nil)
		device.EXPECT().Attach(backingFilePath, uint64(0))

		td, err := loopback.NewTestDevice(control, backingFilePath)
		require.NoError(t, err)
		require.Equal(t, wipeTarget, td.Path())
		require.Equal(t, backingFilePath, td.BackingFilePath())
		requireWiped(t, wipeTarget)

		// Detaching should only be forwarded once.
		device.EXPECT().Detach()
		require.NoError(t, td.Detach())
		require.NoError(t, td.Detach())
	})

	t.Run("DetachFailure", func(t *testing.T) {
		// Devices that fail to detach remain attached, so that
		// detaching may be retried.
		backingFilePath := newBackingFile(t)
		device := mock.NewMockDevice(ctrl)
		device.EXPECT().Path().Return(newWipeTarget(t)).AnyTimes()
		control.EXPECT().NextFree().Return(device, nil)
		device.EXPECT().Attach(backingFilePath, uint64(0))

		td, err := loopback.NewTestDevice(control, backingFilePath)
		require.NoError(t, err)

		gomock.InOrder(
			device.EXPECT().Detach().Return(status.Error(codes.Internal, "Device or resource busy")),
			device.EXPECT().Detach())
		testutil.RequireEqualStatus(t, status.Error(codes.Internal, "Device or resource busy"), td.Detach())
		require.NoError(t, td.Detach())
		require.NoError(t, td.Detach())
	})
}
