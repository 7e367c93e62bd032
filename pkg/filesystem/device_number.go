package filesystem

import (
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DeviceNumber stores a block or character device number as a
// major/minor pair. Values are immutable and may be compared using ==.
//
// Conversion between a DeviceNumber and its integer representations is
// performed through a CompositeEncoding or LegacyEncoding. The methods
// provided by this type use DefaultCompositeEncoding and
// DefaultLegacyEncoding.
type DeviceNumber struct {
	major, minor uint32
}

// NewDeviceNumberFromMajorMinor creates a new device number based on a
// major/minor pair.
func NewDeviceNumberFromMajorMinor(major, minor uint32) DeviceNumber {
	return DeviceNumber{
		major: major,
		minor: minor,
	}
}

// NewDeviceNumberFromComposite creates a new device number based on a
// 64-bit dev_t value, as returned by stat() in st_rdev.
func NewDeviceNumberFromComposite(raw uint64) DeviceNumber {
	return DefaultCompositeEncoding.Decode(raw)
}

// NewDeviceNumberFromLegacy creates a new device number based on a
// 32-bit kdev_t value, as used by the kernel in device mapper tables
// and ioctl payloads.
func NewDeviceNumberFromLegacy(raw uint32) DeviceNumber {
	return DefaultLegacyEncoding.Decode(raw)
}

// ParseDeviceNumber parses a device number in "<major>:<minor>" format,
// as returned by DeviceNumber.String() and stored in sysfs attributes
// like /sys/block/loop0/dev. A single trailing newline is permitted.
func ParseDeviceNumber(s string) (DeviceNumber, error) {
	majorStr, minorStr, ok := strings.Cut(strings.TrimSuffix(s, "\n"), ":")
	if !ok {
		return DeviceNumber{}, status.Errorf(codes.InvalidArgument, "Device number %#v is not in major:minor format", s)
	}
	major, err := strconv.ParseUint(majorStr, 10, 32)
	if err != nil {
		return DeviceNumber{}, status.Errorf(codes.InvalidArgument, "Invalid major number in device number %#v", s)
	}
	minor, err := strconv.ParseUint(minorStr, 10, 32)
	if err != nil {
		return DeviceNumber{}, status.Errorf(codes.InvalidArgument, "Invalid minor number in device number %#v", s)
	}
	return NewDeviceNumberFromMajorMinor(uint32(major), uint32(minor)), nil
}

// ToMajorMinor returns the major/minor pair of the device number.
func (d DeviceNumber) ToMajorMinor() (uint32, uint32) {
	return d.major, d.minor
}

// ToComposite returns the 64-bit dev_t value of the device number.
// Every device number can be expressed as a dev_t.
func (d DeviceNumber) ToComposite() uint64 {
	return DefaultCompositeEncoding.Encode(d)
}

// ToLegacy returns the 32-bit kdev_t value of the device number. False
// is returned if the major or minor number is too large to be expressed
// as a kdev_t.
func (d DeviceNumber) ToLegacy() (uint32, bool) {
	return DefaultLegacyEncoding.Encode(d)
}

func (d DeviceNumber) String() string {
	return strconv.FormatUint(uint64(d.major), 10) + ":" + strconv.FormatUint(uint64(d.minor), 10)
}
