package trace

import (
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/zeusync/voxkit/pkg/encoding"
	"github.com/zeusync/voxkit/pkg/errs"
	"github.com/zeusync/voxkit/pkg/vector"
)

// ErrDigestMismatch reports a frame whose trailing checksum does not match its body.
var ErrDigestMismatch = errors.New("frame digest mismatch")

// minVoxelLen is the smallest encoding of one voxel: three 1-byte varints.
const minVoxelLen = 3

// Frame is the encoded path of one job:
//
//	job id      16 bytes
//	count       unsigned varint
//	voxels      count × (varint x, varint y, varint z)
//	digest      little-endian xxhash64 of everything above
type Frame struct {
	JobID  uuid.UUID
	Voxels []vector.Vector3
	Digest uint64
}

var _ encoding.Serializable = (*Frame)(nil)

// Encode appends the frame to s and records the digest it wrote.
func (f *Frame) Encode(s *encoding.BinaryStream) {
	start := s.Len()

	s.Put(f.JobID[:])
	s.PutUnsignedVarInt(uint32(len(f.Voxels)))
	for _, v := range f.Voxels {
		s.PutVarInt(int32(v.FloorX()))
		s.PutVarInt(int32(v.FloorY()))
		s.PutVarInt(int32(v.FloorZ()))
	}

	f.Digest = xxhash.Sum64(s.Buffer()[start:])
	s.PutLLong(int64(f.Digest))
}

// Decode reads one frame. On failure the stream offset is restored.
func (f *Frame) Decode(s *encoding.BinaryStream) (err error) {
	start := s.Offset()
	defer func() {
		if err != nil {
			_ = s.SetOffset(start)
		}
	}()

	id, err := s.Get(len(f.JobID))
	if err != nil {
		return fmt.Errorf("job id: %w", err)
	}
	count, err := s.GetUnsignedVarInt()
	if err != nil {
		return fmt.Errorf("voxel count: %w", err)
	}
	if need := int(count) * minVoxelLen; need > s.Remaining() {
		return &encoding.DataError{Need: need, Have: s.Remaining()}
	}

	voxels := make([]vector.Vector3, 0, count)
	for i := range int(count) {
		var xyz [3]int32
		for axis := range xyz {
			if xyz[axis], err = s.GetVarInt(); err != nil {
				return fmt.Errorf("voxel %d: %w", i, err)
			}
		}
		voxels = append(voxels, vector.New(float64(xyz[0]), float64(xyz[1]), float64(xyz[2])))
	}

	body := s.Buffer()[start:s.Offset()]
	got, err := s.GetLLong()
	if err != nil {
		return fmt.Errorf("digest: %w", err)
	}
	if want := xxhash.Sum64(body); uint64(got) != want {
		return fmt.Errorf("%w: stored %016x, computed %016x", ErrDigestMismatch, uint64(got), want)
	}

	copy(f.JobID[:], id)
	f.Voxels = voxels
	f.Digest = uint64(got)
	return nil
}

// DecodeFrame decodes exactly one frame.
func DecodeFrame(data []byte) (Frame, error) {
	var f Frame
	if err := encoding.Unmarshal(data, &f); err != nil {
		return Frame{}, err
	}
	return f, nil
}

// DecodeFrames decodes back-to-back frames until data is exhausted.
func DecodeFrames(data []byte) ([]Frame, error) {
	s := encoding.NewBinaryStream(data)

	var frames []Frame
	for !s.EOF() {
		var f Frame
		if err := f.Decode(s); err != nil {
			return nil, fmt.Errorf("frame %d at offset %d: %w", len(frames), s.Offset(), err)
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// checkRange rejects voxels that cannot be written as 32-bit varints.
func checkRange(v vector.Vector3) error {
	for _, c := range [3]int{v.FloorX(), v.FloorY(), v.FloorZ()} {
		if c < math.MinInt32 || c > math.MaxInt32 {
			return errs.InvalidArgument("voxel %s is outside the 32-bit coordinate range", v)
		}
	}
	return nil
}
