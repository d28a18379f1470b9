package control

import (
	"errors"
	"io"

	"github.com/calebcase/oops"
)

// Decoder reads control blocks.
type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
}

type decoder struct {
	r io.Reader
	s io.Seeker

	consumed uint64

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

// NewDecoder returns a decoder that reads from r. If r is also an io.Seeker
// unread payloads are skipped by seeking.
func NewDecoder(r io.Reader) Decoder {
	d := &decoder{
		r: r,
	}

	d.s, _ = r.(io.Seeker)

	return d
}

// seek moves the input stream's current position using an io.Seeker if
// available otherwise it falls back to a discarding copy.
func (d *decoder) seek(size uint64) (err error) {
	if d.s != nil {
		_, err = d.s.Seek(int64(size), io.SeekCurrent)
		if err != nil {
			return oops.Trace(err)
		}

		d.consumed += size

		return nil
	}

	n, err := io.CopyN(io.Discard, d.r, int64(size))
	d.consumed += uint64(n)
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

// skip moves past the payload of the current field if it was not read.
func (d *decoder) skip() (err error) {
	switch d.t {
	case Data, Empty, Null, Unknown:
		// No additional bytes need to be read.
		return nil
	}

	size, err := d.Size()
	if err != nil {
		return err
	}

	switch d.t {
	case Data1, Data2:
		// The control byte holds the first byte of data.
		size--
	}

	return d.seek(size)
}

// Next advances to the next field. It returns false at the end of the input
// or on error; Err distinguishes the two.
func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	if !d.finished {
		d.err = d.skip()
		if d.err != nil {
			return false
		}
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown
	d.size = 0
	d.data = d.data[:0]
	d.finished = false

	// Read the field control block.
	_, d.err = io.ReadFull(d.r, d.value[:])
	if d.err != nil {
		if errors.Is(d.err, io.EOF) {
			d.err = nil
			return false
		}

		d.err = oops.Trace(d.err)

		return false
	}

	d.consumed += 1

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	switch t {
	case Data, Empty, Null:
		d.finished = true
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in the current field. If the field
// does not contain data it returns 0 and ErrInvalidOperation.
func (d *decoder) Size() (_ uint64, err error) {
	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	default:
		return 0, ErrInvalidOperation
	}

	return d.size, nil
}

// Data reads data bits and bytes from the field. If the field does not contain
// data it returns nil and ErrInvalidOperation. The returned slice is only
// valid until the next call to Next.
func (d *decoder) Data() (data []byte, err error) {
	size, err := d.Size()
	if err != nil {
		return nil, err
	}

	if len(d.data) != 0 {
		return d.data, nil
	}

	defer func() {
		if err != nil {
			d.data = d.data[:0]
			d.err = err
		}
	}()

	if d.finished && d.t != Data {
		return nil, Error.New("field already consumed")
	}

	switch d.t {
	case Data:
		d.data = append(d.data[:0], d.value[0]&d.t.Mask)
	case DataSize:
		d.data = grow(d.data, int(size))

		_, err = io.ReadFull(d.r, d.data)
		if err != nil {
			return nil, oops.Trace(err)
		}

		d.consumed += size
	case Data1, Data2:
		d.data = grow(d.data, int(size))
		d.data[0] = d.value[0] & d.t.Mask

		_, err = io.ReadFull(d.r, d.data[1:])
		if err != nil {
			return nil, oops.Trace(err)
		}

		d.consumed += size - 1
	}

	d.finished = true

	return d.data, nil
}

func grow(b []byte, n int) []byte {
	if cap(b) < n {
		return make([]byte, n)
	}

	return b[:n]
}
