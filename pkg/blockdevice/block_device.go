package blockdevice

import (
	"io"
	"os"
)

// BlockDevice is an interface for interacting with a block device like
// storage medium. Block devices support random access reads and writes.
// They differ from plain files, in that their size is fixed.
//
// Storage media tend to store data in sectors. These sectors cannot be
// read from and written to partially. Though the ReadAt() and WriteAt()
// methods provided by this interface do not require I/O to be sector
// aligned, not doing so may impact performance, particularly when
// writing.
//
// Because of caching, writes may not be applied against the underlying
// storage medium immediately. The Sync() function can be used to block
// execution until all previous writes are persisted.
//
// Close() must be called before the device node or file backing the
// BlockDevice is torn down. For loop devices this means it must be
// called before the loop device is detached.
type BlockDevice interface {
	io.ReaderAt
	io.WriterAt
	io.Closer

	Sync() error
}

var _ BlockDevice = (*os.File)(nil)
