package util_test

import (
	"errors"
	"testing"

	"github.com/buildbarn/bb-devicemapper/pkg/testutil"
	"github.com/buildbarn/bb-devicemapper/pkg/util"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestStatusWrap(t *testing.T) {
	t.Run("StatusError", func(t *testing.T) {
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.NotFound, "Failed to open device: No such device"),
			util.StatusWrap(status.Error(codes.NotFound, "No such device"), "Failed to open device"))
	})

	t.Run("PlainError", func(t *testing.T) {
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Unknown, "Failed to open device \"/dev/loop0\": Permission denied"),
			util.StatusWrapf(errors.New("Permission denied"), "Failed to open device %#v", "/dev/loop0"))
	})
}

func TestStatusFromMultiple(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		require.NoError(t, util.StatusFromMultiple(nil))
		require.NoError(t, util.StatusFromMultiple([]error{nil, nil}))
	})

	t.Run("Single", func(t *testing.T) {
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Internal, "Device busy"),
			util.StatusFromMultiple([]error{nil, status.Error(codes.Internal, "Device busy")}))
	})

	t.Run("Multiple", func(t *testing.T) {
		// The code of the first error should be retained.
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Internal, "Device busy, No such device"),
			util.StatusFromMultiple([]error{
				status.Error(codes.Internal, "Device busy"),
				nil,
				status.Error(codes.NotFound, "No such device"),
			}))
	})
}
