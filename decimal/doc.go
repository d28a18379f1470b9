// Package decimal provides a base 10 floating point number packed into a
// single 64 bit word.
//
// The equation for a wide decimal is:
//
//  number = significand * 10 ^ (128 - rank)
//
// Where significand is a signed 56 bit integer and rank is an unsigned byte.
// The scale of a number is rank - 128, the count of fractional digits. For
// example:
//
//  1.23 = 123 * 10^-2 (rank 130)
//
// Layout
//
// The significand occupies the high 56 bits (two's complement) and the rank
// the low 8 bits:
//
//  | 63 ............................... 8 | 7 ........... 0 |
//  |--------------------------------------|-----------------|
//  | significand (signed)                 | rank (unsigned) |
//  |--------------------------------------|-----------------|
//
// Rank zero is reserved for the special values:
//
//  | significand | rank || Value     | Word    |
//  |-------------|------||-----------|---------|
//  |  0          | 0    || NaN       |  0x000  |
//  | +1          | 0    || +Infinity | +0x100  |
//  | -1          | 0    || -Infinity | -0x100  |
//  |-------------|------||-----------|---------|
//
// The zero word is NaN so an unset Wide is undefined rather than zero. Finite
// values use ranks 1 through 255 which gives scales from -127 to +127.
//
// Canonical Form
//
// Every operation produces a value whose significand fits in 56 bits and
// whose rank is in range. Values that are too large to fit become infinities.
// Values that are too small become zero. Operations that would lose digits
// round half up on the last kept digit.
//
// Each operation has a preferred scale. Results are moved toward the
// preferred scale only when doing so is exact; ToScale asks for the same
// thing explicitly, while Round always reaches the requested scale and rounds
// when it must.
//
// Text
//
// Parse accepts an optional sign, digits with an optional decimal point, and
// an optional exponent (e.g. "-1.25", "3e-4", ".5"). The literals NaN,
// Infinity, +Infinity and -Infinity are accepted as well. Digits past the
// nineteenth are truncated and the rest rounded to fit the significand.
//
// String prints plain notation when it needs at most a few leading or
// trailing zeros and scientific notation otherwise:
//
//  | Value              | Text     |
//  |--------------------|----------|
//  | 1 * 10^-6          | 0.000001 |
//  | 1 * 10^-7          | 1E-7     |
//  | 1 * 10^6           | 1000000  |
//  | 1 * 10^7           | 1E7      |
//  | 15 * 10^6          | 15000000 |
//  |--------------------|----------|
//
// Streams
//
// Encoder and Decoder carry values in control blocks. Each value is a single
// data field holding the significand as an integer block followed by the rank
// byte:
//
//  | integer block (1..8 bytes)  | rank (1 byte) |
//  |-----------------------------|---------------|
//
// USD 0.0001 (2 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 1 | 0 . 0 . 0 . 1 | 0 | Data + 1 Control Block with value of +1.
//  |-------------------------------|
//  | 1 . 0 . 0 . 0 . 0 . 1 . 0 . 0 | Rank 132 (scale 4).
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// USD -20.47 (3 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 0 . 1 | 1 . 1 . 1 . 1 | Data + 2 Control Block with value of -2047.
//  | 1 . 1 . 1 . 1 . 1 . 1 . 1 | 1 |
//  |-------------------------------|
//  | 1 . 0 . 0 . 0 . 0 . 0 . 1 . 0 | Rank 130 (scale 2).
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// Nullable schemas write NaN as a Null control block.
package decimal
