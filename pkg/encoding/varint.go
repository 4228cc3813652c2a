package encoding

import (
	"encoding/binary"
	"fmt"
)

// LEB128 varints: 7 payload bits per byte, low groups first, high bit set on every
// byte but the last. Signed forms are zigzag folded before encoding.

const (
	// MaxVarIntLen is the longest encoding of a 32-bit varint.
	MaxVarIntLen = 5
	// MaxVarLongLen is the longest encoding of a 64-bit varint.
	MaxVarLongLen = 10
)

// ZigZag32 maps signed to unsigned so that small magnitudes stay small.
func ZigZag32(v int32) uint32 {
	return uint32((v << 1) ^ (v >> 31))
}

// UnZigZag32 reverses ZigZag32.
func UnZigZag32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}

// ZigZag64 maps signed to unsigned so that small magnitudes stay small.
func ZigZag64(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// UnZigZag64 reverses ZigZag64.
func UnZigZag64(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// AppendUnsignedVarInt appends the varint encoding of v to dst.
func AppendUnsignedVarInt(dst []byte, v uint32) []byte {
	return binary.AppendUvarint(dst, uint64(v))
}

// AppendUnsignedVarLong appends the varint encoding of v to dst.
func AppendUnsignedVarLong(dst []byte, v uint64) []byte {
	return binary.AppendUvarint(dst, v)
}

// decodeVarint reads a varint of at most maxLen bytes from buf and returns the
// value and the number of bytes consumed.
func decodeVarint(buf []byte, maxLen int) (uint64, int, error) {
	var value uint64
	for i := 0; i < maxLen; i++ {
		if i >= len(buf) {
			return 0, 0, shortData(i+1, len(buf))
		}
		b := buf[i]
		value |= uint64(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			return value, i + 1, nil
		}
	}
	return 0, 0, &DataError{
		Need:   maxLen,
		Have:   len(buf),
		Reason: fmt.Sprintf("varint did not terminate after %d bytes", maxLen),
	}
}

func (s *BinaryStream) readVarint(maxLen int) (uint64, error) {
	v, n, err := decodeVarint(s.peek(), maxLen)
	if err != nil {
		return 0, err
	}
	s.offset += n
	return v, nil
}

// GetUnsignedVarInt reads a 32-bit unsigned varint. Bits beyond 32 are discarded.
func (s *BinaryStream) GetUnsignedVarInt() (uint32, error) {
	v, err := s.readVarint(MaxVarIntLen)
	return uint32(v), err
}

func (s *BinaryStream) PutUnsignedVarInt(v uint32) {
	s.buffer = AppendUnsignedVarInt(s.buffer, v)
}

// GetVarInt reads a zigzag-encoded 32-bit signed varint.
func (s *BinaryStream) GetVarInt() (int32, error) {
	v, err := s.GetUnsignedVarInt()
	if err != nil {
		return 0, err
	}
	return UnZigZag32(v), nil
}

func (s *BinaryStream) PutVarInt(v int32) {
	s.buffer = AppendUnsignedVarInt(s.buffer, ZigZag32(v))
}

func (s *BinaryStream) GetUnsignedVarLong() (uint64, error) {
	return s.readVarint(MaxVarLongLen)
}

func (s *BinaryStream) PutUnsignedVarLong(v uint64) {
	s.buffer = AppendUnsignedVarLong(s.buffer, v)
}

// GetVarLong reads a zigzag-encoded 64-bit signed varint.
func (s *BinaryStream) GetVarLong() (int64, error) {
	v, err := s.GetUnsignedVarLong()
	if err != nil {
		return 0, err
	}
	return UnZigZag64(v), nil
}

func (s *BinaryStream) PutVarLong(v int64) {
	s.buffer = AppendUnsignedVarLong(s.buffer, ZigZag64(v))
}
