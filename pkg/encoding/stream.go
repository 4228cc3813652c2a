package encoding

import (
	"github.com/zeusync/voxkit/pkg/errs"
)

// BinaryStream is an append-only byte buffer with a forward-moving read cursor.
//
// Writes always append to the end of the buffer and never touch the cursor. Reads
// consume bytes at the cursor and only advance it when they succeed, so a failed
// read leaves the stream exactly as it was.
//
// Slices returned by Get, GetRemaining and Buffer alias the stream's storage and are
// only valid until the next Reset or SetBuffer. A BinaryStream is not safe for
// concurrent use.
type BinaryStream struct {
	buffer []byte
	offset int
}

// NewBinaryStream creates a stream reading buffer from the start. The stream takes
// ownership of buffer.
func NewBinaryStream(buffer []byte) *BinaryStream {
	return &BinaryStream{buffer: buffer}
}

// NewBinaryStreamAt creates a stream reading buffer from offset.
func NewBinaryStreamAt(buffer []byte, offset int) (*BinaryStream, error) {
	s := &BinaryStream{}
	if err := s.SetBuffer(buffer, offset); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *BinaryStream) Offset() int {
	return s.offset
}

// SetOffset moves the read cursor. Offsets past the end are allowed; reads there fail.
func (s *BinaryStream) SetOffset(offset int) error {
	if offset < 0 {
		return errs.InvalidArgument("offset must not be negative, got %d", offset)
	}
	s.offset = offset
	return nil
}

func (s *BinaryStream) Buffer() []byte {
	return s.buffer
}

// SetBuffer replaces the buffer and the read cursor.
func (s *BinaryStream) SetBuffer(buffer []byte, offset int) error {
	if offset < 0 {
		return errs.InvalidArgument("offset must not be negative, got %d", offset)
	}
	s.buffer = buffer
	s.offset = offset
	return nil
}

// Rewind moves the read cursor back to the start.
func (s *BinaryStream) Rewind() {
	s.offset = 0
}

// Reset empties the buffer, keeping its capacity, and rewinds.
func (s *BinaryStream) Reset() {
	s.buffer = s.buffer[:0]
	s.offset = 0
}

// Len returns the total number of bytes in the buffer.
func (s *BinaryStream) Len() int {
	return len(s.buffer)
}

// Remaining returns the number of unread bytes.
func (s *BinaryStream) Remaining() int {
	if s.offset >= len(s.buffer) {
		return 0
	}
	return len(s.buffer) - s.offset
}

// EOF reports whether there is no byte at the read cursor.
func (s *BinaryStream) EOF() bool {
	return s.offset >= len(s.buffer)
}

// Get reads the next n bytes.
func (s *BinaryStream) Get(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	if n < 0 {
		return nil, errs.InvalidArgument("length must be positive, got %d", n)
	}

	remaining := len(s.buffer) - s.offset
	if remaining < n {
		return nil, shortData(n, remaining)
	}

	out := s.buffer[s.offset : s.offset+n : s.offset+n]
	s.offset += n
	return out, nil
}

// GetRemaining reads every byte from the cursor to the end of the buffer.
func (s *BinaryStream) GetRemaining() ([]byte, error) {
	if s.offset >= len(s.buffer) {
		return nil, &DataError{Need: 1, Have: 0, Reason: "no bytes left to read"}
	}

	out := s.buffer[s.offset:len(s.buffer):len(s.buffer)]
	s.offset = len(s.buffer)
	return out, nil
}

// Put appends b to the buffer.
func (s *BinaryStream) Put(b []byte) {
	s.buffer = append(s.buffer, b...)
}

// peek returns the unread bytes without moving the cursor.
func (s *BinaryStream) peek() []byte {
	if s.offset >= len(s.buffer) {
		return nil
	}
	return s.buffer[s.offset:]
}
