package encoding

// Serializable is a record that writes itself to and reads itself from a BinaryStream.
type Serializable interface {
	Encode(s *BinaryStream)
	Decode(s *BinaryStream) error
}

// Marshal encodes v into a fresh byte slice.
func Marshal(v Serializable) []byte {
	s := NewBinaryStream(nil)
	v.Encode(s)
	return s.Buffer()
}

// Unmarshal decodes v from data. Trailing bytes are an error.
func Unmarshal(data []byte, v Serializable) error {
	s := NewBinaryStream(data)
	if err := v.Decode(s); err != nil {
		return err
	}
	if !s.EOF() {
		return &DataError{Need: 0, Have: s.Remaining(), Reason: "trailing bytes after record"}
	}
	return nil
}
