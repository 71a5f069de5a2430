package mem

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/dacapoday/blocksig"
)

// File is an in-memory implementation of the blocksig.Input and
// blocksig.Output interfaces.
// It is safe for concurrent use by multiple goroutines.
//
// File requires no initialization - just declare and use:
//
//	var f File
//	f.WriteAt([]byte("hello"), 0)
type File struct {
	rw   sync.RWMutex
	data []byte
}

var _ blocksig.Input = new(File)
var _ blocksig.Output = new(File)

// Close clears all data stored in the File and releases memory.
// After Close, the file size becomes 0.
// It is safe to write to the file again after closing.
func (file *File) Close() error {
	file.rw.Lock()
	file.data = nil
	file.rw.Unlock()
	return nil
}

// Size returns the current size of the file in bytes.
// This is a thread-safe operation.
func (file *File) Size() int64 {
	file.rw.RLock()
	defer file.rw.RUnlock()
	return int64(len(file.data))
}

// Stat implements the blocksig.Input interface. Only the Size of the
// returned os.FileInfo carries meaning; the remaining attributes are
// placeholders.
func (file *File) Stat() (os.FileInfo, error) {
	return fileInfo{size: file.Size()}, nil
}

// ReadFrom reads data from r until EOF and replaces the entire file content.
// It implements io.ReaderFrom interface.
//
// Any existing data in the file is discarded.
//
// ReadFrom returns the number of bytes read and any error encountered,
// except that io.EOF is not returned as an error.
func (file *File) ReadFrom(r io.Reader) (n int64, err error) {
	file.rw.Lock()
	defer file.rw.Unlock()
	file.data = nil
	buf := make([]byte, 32*1024)
	for {
		c, err := r.Read(buf)
		if c > 0 {
			n += int64(c)
			file.data = append(file.data, buf[:c]...)
		}
		if err != nil {
			if err == io.EOF {
				err = nil
			}
			return n, err
		}
	}
}

// WriteTo writes the entire file content to w.
// It implements io.WriterTo interface.
//
// WriteTo acquires a read lock to ensure a consistent snapshot.
//
// Returns the number of bytes written and any error encountered.
func (file *File) WriteTo(w io.Writer) (n int64, err error) {
	file.rw.RLock()
	defer file.rw.RUnlock()
	c, err := w.Write(file.data)
	return int64(c), err
}

// WriteAt writes len(p) bytes from p to the file starting at byte offset off.
// It implements io.WriterAt interface.
//
// If the write position extends beyond the current file size, the file
// is automatically grown and the gap is filled with zero bytes.
//
// WriteAt returns the number of bytes written (always len(p) if err is nil)
// and any error encountered. It returns an error if off is negative.
func (file *File) WriteAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, io.ErrUnexpectedEOF
	}
	if len(p) == 0 {
		return 0, nil
	}

	file.rw.Lock()
	defer file.rw.Unlock()
	if grown := off + int64(len(p)) - int64(len(file.data)); grown > 0 {
		file.data = append(file.data, make([]byte, grown)...)
	}
	return copy(file.data[off:], p), nil
}

// ReadAt reads len(p) bytes into p starting at byte offset off in the file.
// It implements io.ReaderAt interface.
//
// ReadAt returns the number of bytes read and any error encountered.
// Reads that reach the end of the file return io.EOF, as the
// io.ReaderAt contract requires.
//
// This is a thread-safe operation that can run concurrently with other reads.
func (file *File) ReadAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, io.ErrUnexpectedEOF
	}
	if len(p) == 0 {
		return 0, nil
	}

	file.rw.RLock()
	defer file.rw.RUnlock()
	if off >= int64(len(file.data)) {
		return 0, io.EOF
	}
	n = copy(p, file.data[off:])
	if n < len(p) {
		err = io.EOF
	}
	return
}

// Truncate changes the size of the file.
//
// If the new size is smaller than the current size, the extra data is discarded.
// If the new size is larger, the file is extended and the new space is filled
// with zero bytes.
func (file *File) Truncate(size int64) error {
	file.rw.Lock()
	defer file.rw.Unlock()
	if bias := size - int64(len(file.data)); bias > 0 {
		file.data = append(file.data, make([]byte, bias)...)
	} else if bias < 0 {
		file.data = file.data[:size]
	}
	return nil
}

// Sync is a no-op for in-memory files.
// It exists for drop-in compatibility with *os.File and always returns nil.
func (file *File) Sync() error {
	return nil
}

// fileInfo is the os.FileInfo returned by File.Stat.
type fileInfo struct {
	size int64
}

func (info fileInfo) Name() string       { return "mem" }
func (info fileInfo) Size() int64        { return info.size }
func (info fileInfo) Mode() os.FileMode  { return 0600 }
func (info fileInfo) ModTime() time.Time { return time.Time{} }
func (info fileInfo) IsDir() bool        { return false }
func (info fileInfo) Sys() any           { return nil }
