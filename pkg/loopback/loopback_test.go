package loopback_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/buildbarn/bb-devicemapper/internal/mock"
	"github.com/buildbarn/bb-devicemapper/pkg/loopback"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newWipeTarget creates a file filled with non-zero bytes that may be
// returned by MockDevice.Path(), so that wiping can be observed.
func newWipeTarget(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "loop")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{0xff}, 2*loopback.WipeSizeBytes), 0o600))
	return path
}

// requireWiped asserts that the first WipeSizeBytes of a file are zero,
// while the data after it is left intact.
func requireWiped(t *testing.T, path string) {
	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, contents, 2*loopback.WipeSizeBytes)
	require.Equal(t, make([]byte, loopback.WipeSizeBytes), contents[:loopback.WipeSizeBytes])
	require.Equal(t, bytes.Repeat([]byte{0xff}, loopback.WipeSizeBytes), contents[loopback.WipeSizeBytes:])
}

type mockLoopDevices struct {
	devices          []*mock.MockDevice
	wipeTargets      []string
	backingFilePaths []string
}

// expectDevices sets up expectations for count loop devices being
// claimed and attached in order.
func expectDevices(t *testing.T, ctrl *gomock.Controller, control *mock.MockControl, count int) *mockLoopDevices {
	m := &mockLoopDevices{}
	var calls []any
	for i := 0; i < count; i++ {
		device := mock.NewMockDevice(ctrl)
		wipeTarget := newWipeTarget(t)
		device.EXPECT().Path().Return(wipeTarget).AnyTimes()
		calls = append(
			calls,
			control.EXPECT().NextFree().Return(device, nil),
			device.EXPECT().Attach(gomock.Any(), uint64(0)).DoAndReturn(
				func(backingFilePath string, offsetBytes uint64) error {
					m.backingFilePaths = append(m.backingFilePaths, backingFilePath)
					return nil
				}))
		m.devices = append(m.devices, device)
		m.wipeTargets = append(m.wipeTargets, wipeTarget)
	}
	gomock.InOrder(calls...)
	return m
}

// expectDetach sets up expectations for all loop devices being
// detached in reverse order.
func (m *mockLoopDevices) expectDetach() {
	var calls []any
	for i := len(m.devices) - 1; i >= 0; i-- {
		calls = append(calls, m.devices[i].EXPECT().Detach())
	}
	gomock.InOrder(calls...)
}
