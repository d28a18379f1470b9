package decimal

import (
	"io"

	"github.com/calebcase/wide/control"
	"github.com/calebcase/wide/integer"
)

// Schema represents a configured decimal field.
type Schema struct {
	// Scale is applied to decoded values when Rescale is set.
	Scale   int
	Rescale bool

	// Nullable fields write NaN as a Null block.
	Nullable bool
}

// Encoder writes decimals as control blocks.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes w as a single field. The field data is the significand as an
// integer block followed by the rank byte.
func (e *Encoder) Encode(w Wide) (err error) {
	defer Error.WrapP(&err)

	if w.IsNaN() && e.schema.Nullable {
		return e.ce.Null()
	}

	significand, rank := unpack(w)

	data, err := integer.FromInt64(significand).MarshalBinary()
	if err != nil {
		return err
	}

	return e.ce.Data(append(data, byte(rank)))
}

// Decoder reads decimals from control blocks.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode reads the next field. It returns io.EOF when the input is exhausted.
func (d *Decoder) Decode() (w Wide, err error) {
	if !d.cd.Next() {
		err = d.cd.Err()
		if err == nil {
			return NaN, io.EOF
		}

		return NaN, Error.Wrap(err)
	}

	defer Error.WrapP(&err)

	switch d.cd.Type() {
	case control.Null:
		if !d.schema.Nullable {
			return NaN, Error.New("unexpected null")
		}

		return NaN, nil
	case control.Empty:
		return NaN, Error.New("unexpected empty field")
	}

	data, err := d.cd.Data()
	if err != nil {
		return NaN, err
	}

	if len(data) < 2 {
		return NaN, Error.New("short field: %d bytes", len(data))
	}

	b := integer.Block{}

	err = b.UnmarshalBinary(data[:len(data)-1])
	if err != nil {
		return NaN, err
	}

	significand, err := b.Int64()
	if err != nil {
		return NaN, err
	}

	rank := int(data[len(data)-1])

	switch {
	case significand > MaxSignificand || significand < MinSignificand:
		return NaN, Error.New("significand out of range: %d", significand)
	case rank == 0 && significand != nonFinite(significand).Significand():
		return NaN, Error.New("invalid special value: %d", significand)
	}

	w = pack(significand, rank)

	if d.schema.Rescale {
		w = w.ToScale(d.schema.Scale)
	}

	return w, nil
}
