package control

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when a field is read in a way that its
// control block type does not support.
var ErrInvalidOperation = Error.New("invalid operation")

// Type is a control block type. A byte b has type t when the bits outside of
// t.Mask equal t.Prefix.
type Type struct {
	Prefix byte
	Mask   byte
	Abbr   string
}

// Match returns true if this control type matches the given byte.
func (t Type) Match(b byte) bool {
	return b&^t.Mask == t.Prefix
}

type types []Type

func (ts types) Match(b byte) (t Type, ok bool) {
	for _, t := range ts {
		if t.Match(b) {
			return t, true
		}
	}

	return t, false
}

var (
	Unknown  = Type{}
	Data     = Type{0b_1000_0000, 0b_0111_1111, "d"}
	DataSize = Type{0b_0100_0000, 0b_0011_1111, "dz"}
	Data1    = Type{0b_0010_0000, 0b_0001_1111, "d1"}
	Data2    = Type{0b_0001_0000, 0b_0000_1111, "d2"}
	Empty    = Type{0b_0000_0001, 0b_0000_0000, "e"}
	Null     = Type{0b_0000_0000, 0b_0000_0000, "n"}

	// Types lists the supported control block types. The bytes from
	// 0b_0000_0010 to 0b_0000_1111 are reserved.
	Types = types{
		Data,
		DataSize,
		Data1,
		Data2,
		Empty,
		Null,
	}
)
