package filesystem

// CompositeEncoding is a strategy for converting device numbers to and
// from a 64-bit dev_t. Pack and Unpack must be each other's inverse.
type CompositeEncoding struct {
	Pack   func(major, minor uint32) uint64
	Unpack func(raw uint64) (major, minor uint32)
}

// Decode a dev_t into a device number.
func (e CompositeEncoding) Decode(raw uint64) DeviceNumber {
	major, minor := e.Unpack(raw)
	return NewDeviceNumberFromMajorMinor(major, minor)
}

// Encode a device number into a dev_t.
func (e CompositeEncoding) Encode(d DeviceNumber) uint64 {
	return e.Pack(d.major, d.minor)
}

// LegacyEncoding is a strategy for converting device numbers to and
// from a 32-bit kdev_t. Unlike CompositeEncoding, not every device
// number can be represented. Pack returns false in that case.
type LegacyEncoding struct {
	Pack   func(major, minor uint32) (uint32, bool)
	Unpack func(raw uint32) (major, minor uint32)
}

// Decode a kdev_t into a device number.
func (e LegacyEncoding) Decode(raw uint32) DeviceNumber {
	major, minor := e.Unpack(raw)
	return NewDeviceNumberFromMajorMinor(major, minor)
}

// Encode a device number into a kdev_t, if representable.
func (e LegacyEncoding) Encode(d DeviceNumber) (uint32, bool) {
	return e.Pack(d.major, d.minor)
}

// LinuxCompositeEncoding is the dev_t layout used by glibc and the
// Linux kernel's new_encode_dev(), MMMM Mmmm mmmM MMmm in hexadecimal:
//
//   - Bits 0-7: bits 0-7 of the minor number.
//   - Bits 8-19: bits 0-11 of the major number.
//   - Bits 20-43: bits 8-31 of the minor number.
//   - Bits 44-63: bits 12-31 of the major number.
var LinuxCompositeEncoding = CompositeEncoding{
	Pack: func(major, minor uint32) uint64 {
		return uint64(major&0x00000fff)<<8 |
			uint64(major&0xfffff000)<<32 |
			uint64(minor&0x000000ff) |
			uint64(minor&0xffffff00)<<12
	},
	Unpack: func(raw uint64) (uint32, uint32) {
		return uint32((raw>>8)&0x00000fff) | uint32((raw>>32)&0xfffff000),
			uint32(raw&0x000000ff) | uint32((raw>>12)&0xffffff00)
	},
}

const (
	// Largest major number that can be stored in a kdev_t.
	legacyMaximumMajor = 0xfff
	// Largest minor number that can be stored in a kdev_t.
	legacyMaximumMinor = 0xfffff
)

// KdevLegacyEncoding is the kdev_t layout used by the Linux kernel
// internally and in device mapper ioctls, mmmM MMmm in hexadecimal:
//
//   - Bits 0-7: bits 0-7 of the minor number.
//   - Bits 8-19: the major number, which is limited to 12 bits.
//   - Bits 20-31: bits 8-19 of the minor number, which is limited to
//     20 bits.
var KdevLegacyEncoding = LegacyEncoding{
	Pack: func(major, minor uint32) (uint32, bool) {
		if major > legacyMaximumMajor || minor > legacyMaximumMinor {
			return 0, false
		}
		return minor&0xff | major<<8 | (minor&^0xff)<<12, true
	},
	Unpack: func(raw uint32) (uint32, uint32) {
		return (raw & 0x000fff00) >> 8,
			raw&0xff | (raw>>12)&0x000fff00
	},
}

var (
	// DefaultCompositeEncoding is used by DeviceNumber's
	// NewDeviceNumberFromComposite() and ToComposite().
	DefaultCompositeEncoding = LinuxCompositeEncoding
	// DefaultLegacyEncoding is used by DeviceNumber's
	// NewDeviceNumberFromLegacy() and ToLegacy().
	DefaultLegacyEncoding = KdevLegacyEncoding
)
