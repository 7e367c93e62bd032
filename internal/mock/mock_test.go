package mock_test

import (
	"github.com/buildbarn/bb-devicemapper/internal/mock"
	"github.com/buildbarn/bb-devicemapper/pkg/loopback"
	"github.com/buildbarn/bb-devicemapper/pkg/util"
)

// Generated mocks must be regenerated when the interfaces they mock
// change.
var (
	_ loopback.Control = (*mock.MockControl)(nil)
	_ loopback.Device  = (*mock.MockDevice)(nil)
	_ util.ErrorLogger = (*mock.MockErrorLogger)(nil)
)
