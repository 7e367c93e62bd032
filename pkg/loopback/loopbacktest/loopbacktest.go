// Package loopbacktest contains helpers for tests that need loop
// devices provisioned by package loopback.
package loopbacktest

import (
	"os"
	"testing"

	"github.com/buildbarn/bb-devicemapper/pkg/loopback"
	"github.com/buildbarn/bb-devicemapper/pkg/util"
	"github.com/stretchr/testify/require"
)

const loopControlPath = "/dev/loop-control"

// SkipIfUnavailable skips the current test if loop devices cannot be
// managed by this process. This requires the kernel's loop control
// node to be present and the process to run as root.
func SkipIfUnavailable(t testing.TB) {
	t.Helper()
	if _, err := os.Stat(loopControlPath); err != nil {
		t.Skipf("Loop devices are not available: %s", err)
	}
	if os.Geteuid() != 0 {
		t.Skip("Managing loop devices requires root privileges")
	}
}

// RequireDevices provisions count loop devices for the duration of a
// test and returns the paths of their device nodes. The devices are
// detached and their backing files removed when the test completes.
func RequireDevices(t testing.TB, count int) []string {
	t.Helper()
	SkipIfUnavailable(t)

	directory := t.TempDir()
	control, err := loopback.NewControl()
	require.NoError(t, err)
	t.Cleanup(func() { control.Close() })

	devices, err := loopback.Provision(loopback.NewMetricsControl(control), count, directory, util.DefaultErrorLogger)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, loopback.DetachAll(devices))
	})
	return loopback.DevicePaths(devices)
}
