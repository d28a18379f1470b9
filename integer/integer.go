package integer

import (
	"encoding/binary"
	"math"
)

// Block is a signed integer number stored as a magnitude and a sign.
type Block struct {
	Magnitude uint64
	Negative  bool
}

// FromInt64 returns the block for v.
func FromInt64(v int64) Block {
	if v < 0 {
		// Negating in uint64 keeps math.MinInt64 exact.
		return Block{
			Magnitude: -uint64(v),
			Negative:  true,
		}
	}

	return Block{
		Magnitude: uint64(v),
	}
}

// Int64 returns the block as an int64. It fails if the magnitude does not fit.
func (b Block) Int64() (v int64, err error) {
	if b.Negative {
		if b.Magnitude > 1<<63 {
			return 0, Error.New("overflow: -%d", b.Magnitude)
		}

		return -int64(b.Magnitude), nil
	}

	if b.Magnitude > math.MaxInt64 {
		return 0, Error.New("overflow: %d", b.Magnitude)
	}

	return int64(b.Magnitude), nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The magnitude is shifted
// left one bit and the sign is stored in the lowest bit, then written as
// big-endian bytes without leading zeros. Zero is a single zero byte.
func (b Block) MarshalBinary() (data []byte, err error) {
	if b.Magnitude >= 1<<63 {
		return nil, Error.New("magnitude too large: %d", b.Magnitude)
	}

	v := b.Magnitude << 1
	if b.Negative {
		v |= 1
	}

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)

	i := 0
	for i < len(buf)-1 && buf[i] == 0 {
		i++
	}

	return append([]byte(nil), buf[i:]...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Only the encoding
// MarshalBinary produces is accepted: no leading zero bytes and no negative
// zero.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	switch {
	case len(data) == 0:
		return Error.New("empty")
	case len(data) > 8:
		return Error.New("too large: %d bytes", len(data))
	case len(data) > 1 && data[0] == 0:
		return Error.New("leading zero byte")
	}

	var v uint64
	for _, d := range data {
		v = v<<8 | uint64(d)
	}

	if v == 1 {
		return Error.New("negative zero")
	}

	b.Negative = v&1 == 1
	b.Magnitude = v >> 1

	return nil
}
