package control

import (
	"io"

	"github.com/calebcase/oops"
)

// MaxDataSize is the largest payload a single data field can carry.
const MaxDataSize = 64

// Encoder writes control blocks.
type Encoder interface {
	Data(data []byte) (err error)
	Empty() (err error)
	Null() (err error)
}

type encoder struct {
	w io.Writer

	// buf holds the field being written so each field is a single write.
	buf [MaxDataSize + 1]byte
}

// NewEncoder returns an encoder that writes to w.
func NewEncoder(w io.Writer) Encoder {
	return &encoder{
		w: w,
	}
}

func (e *encoder) write(field []byte) (err error) {
	_, err = e.w.Write(field)
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

// Data writes data with the smallest block type that can hold it.
func (e *encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		e.buf[0] = Data.Prefix | data[0]

		return e.write(e.buf[:1])
	case size == 2 && data[0]&Data1.Mask == data[0]:
		e.buf[0] = Data1.Prefix | data[0]
		e.buf[1] = data[1]

		return e.write(e.buf[:2])
	case size == 3 && data[0]&Data2.Mask == data[0]:
		e.buf[0] = Data2.Prefix | data[0]
		e.buf[1] = data[1]
		e.buf[2] = data[2]

		return e.write(e.buf[:3])
	case size <= MaxDataSize:
		e.buf[0] = DataSize.Prefix | byte(size-1)
		copy(e.buf[1:], data)

		return e.write(e.buf[:size+1])
	}

	return Error.New("invalid: size=%d > %d", size, MaxDataSize)
}

// Empty writes an Empty block.
func (e *encoder) Empty() (err error) {
	e.buf[0] = Empty.Prefix

	return e.write(e.buf[:1])
}

// Null writes a Null block.
func (e *encoder) Null() (err error) {
	e.buf[0] = Null.Prefix

	return e.write(e.buf[:1])
}
