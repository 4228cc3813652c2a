package encoding

import (
	"encoding/binary"
	"math"

	"github.com/zeusync/voxkit/pkg/round"
)

// Fixed-width codecs. Plain names are big-endian, L-prefixed names are little-endian.

func (s *BinaryStream) GetBool() (bool, error) {
	b, err := s.Get(1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

func (s *BinaryStream) PutBool(v bool) {
	if v {
		s.buffer = append(s.buffer, 1)
		return
	}
	s.buffer = append(s.buffer, 0)
}

func (s *BinaryStream) GetByte() (byte, error) {
	b, err := s.Get(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *BinaryStream) PutByte(v byte) {
	s.buffer = append(s.buffer, v)
}

func (s *BinaryStream) GetShort() (uint16, error) {
	b, err := s.Get(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (s *BinaryStream) GetSignedShort() (int16, error) {
	v, err := s.GetShort()
	return int16(v), err
}

// PutShort writes the low 16 bits of v; signed values are written as uint16(int16(v)).
func (s *BinaryStream) PutShort(v uint16) {
	s.buffer = binary.BigEndian.AppendUint16(s.buffer, v)
}

func (s *BinaryStream) GetLShort() (uint16, error) {
	b, err := s.Get(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (s *BinaryStream) GetSignedLShort() (int16, error) {
	v, err := s.GetLShort()
	return int16(v), err
}

func (s *BinaryStream) PutLShort(v uint16) {
	s.buffer = binary.LittleEndian.AppendUint16(s.buffer, v)
}

// GetTriad reads a 3-byte big-endian unsigned integer.
func (s *BinaryStream) GetTriad() (uint32, error) {
	b, err := s.Get(3)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32([]byte{0, b[0], b[1], b[2]}), nil
}

// PutTriad writes the low 24 bits of v as 3 big-endian bytes.
func (s *BinaryStream) PutTriad(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	s.buffer = append(s.buffer, tmp[1:]...)
}

// GetLTriad reads a 3-byte little-endian unsigned integer.
func (s *BinaryStream) GetLTriad() (uint32, error) {
	b, err := s.Get(3)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32([]byte{b[0], b[1], b[2], 0}), nil
}

// PutLTriad writes the low 24 bits of v as 3 little-endian bytes.
func (s *BinaryStream) PutLTriad(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	s.buffer = append(s.buffer, tmp[:3]...)
}

func (s *BinaryStream) GetInt() (int32, error) {
	b, err := s.Get(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func (s *BinaryStream) PutInt(v int32) {
	s.buffer = binary.BigEndian.AppendUint32(s.buffer, uint32(v))
}

func (s *BinaryStream) GetLInt() (int32, error) {
	b, err := s.Get(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func (s *BinaryStream) PutLInt(v int32) {
	s.buffer = binary.LittleEndian.AppendUint32(s.buffer, uint32(v))
}

func (s *BinaryStream) GetFloat() (float32, error) {
	b, err := s.Get(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(b)), nil
}

// GetRoundedFloat reads a big-endian float and rounds it half-up to precision decimal places.
func (s *BinaryStream) GetRoundedFloat(precision int) (float64, error) {
	v, err := s.GetFloat()
	if err != nil {
		return 0, err
	}
	return round.Float(float64(v), precision, round.HalfUp), nil
}

func (s *BinaryStream) PutFloat(v float32) {
	s.buffer = binary.BigEndian.AppendUint32(s.buffer, math.Float32bits(v))
}

func (s *BinaryStream) GetLFloat() (float32, error) {
	b, err := s.Get(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

// GetRoundedLFloat reads a little-endian float and rounds it half-up to precision decimal places.
func (s *BinaryStream) GetRoundedLFloat(precision int) (float64, error) {
	v, err := s.GetLFloat()
	if err != nil {
		return 0, err
	}
	return round.Float(float64(v), precision, round.HalfUp), nil
}

func (s *BinaryStream) PutLFloat(v float32) {
	s.buffer = binary.LittleEndian.AppendUint32(s.buffer, math.Float32bits(v))
}

func (s *BinaryStream) GetDouble() (float64, error) {
	b, err := s.Get(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

func (s *BinaryStream) PutDouble(v float64) {
	s.buffer = binary.BigEndian.AppendUint64(s.buffer, math.Float64bits(v))
}

func (s *BinaryStream) GetLDouble() (float64, error) {
	b, err := s.Get(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

func (s *BinaryStream) PutLDouble(v float64) {
	s.buffer = binary.LittleEndian.AppendUint64(s.buffer, math.Float64bits(v))
}

// GetLong reads a 64-bit integer stored as a big-endian high half then low half.
func (s *BinaryStream) GetLong() (int64, error) {
	b, err := s.Get(8)
	if err != nil {
		return 0, err
	}
	hi := binary.BigEndian.Uint32(b[:4])
	lo := binary.BigEndian.Uint32(b[4:])
	return int64(uint64(hi)<<32 | uint64(lo)), nil
}

func (s *BinaryStream) PutLong(v int64) {
	s.buffer = binary.BigEndian.AppendUint32(s.buffer, uint32(uint64(v)>>32))
	s.buffer = binary.BigEndian.AppendUint32(s.buffer, uint32(v))
}

// GetLLong reads a 64-bit integer stored as a little-endian low half then high half.
func (s *BinaryStream) GetLLong() (int64, error) {
	b, err := s.Get(8)
	if err != nil {
		return 0, err
	}
	lo := binary.LittleEndian.Uint32(b[:4])
	hi := binary.LittleEndian.Uint32(b[4:])
	return int64(uint64(hi)<<32 | uint64(lo)), nil
}

func (s *BinaryStream) PutLLong(v int64) {
	s.buffer = binary.LittleEndian.AppendUint32(s.buffer, uint32(v))
	s.buffer = binary.LittleEndian.AppendUint32(s.buffer, uint32(uint64(v)>>32))
}
