package util

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StatusWrap prepends a string to the message of an existing error.
func StatusWrap(err error, msg string) error {
	p := status.Convert(err).Proto()
	p.Message = fmt.Sprintf("%s: %s", msg, p.Message)
	return status.ErrorProto(p)
}

// StatusWrapf prepends a formatted string to the message of an existing error.
func StatusWrapf(err error, format string, args ...interface{}) error {
	return StatusWrap(err, fmt.Sprintf(format, args...))
}

// StatusWrapWithCode prepends a string to the message of an existing
// error, while replacing the error code.
func StatusWrapWithCode(err error, code codes.Code, msg string) error {
	p := status.Convert(err).Proto()
	p.Code = int32(code)
	p.Message = fmt.Sprintf("%s: %s", msg, p.Message)
	return status.ErrorProto(p)
}

// StatusFromMultiple merges a list of errors into a single one. The
// code of the first error is retained, while the messages of all
// errors are concatenated. Nil errors are ignored. If no errors
// remain, nil is returned.
func StatusFromMultiple(errs []error) error {
	var first *status.Status
	var messages []string
	for _, err := range errs {
		if err == nil {
			continue
		}
		s := status.Convert(err)
		if first == nil {
			first = s
		}
		messages = append(messages, s.Message())
	}
	if first == nil {
		return nil
	}
	if len(messages) == 1 {
		return first.Err()
	}
	return status.Error(first.Code(), strings.Join(messages, ", "))
}
