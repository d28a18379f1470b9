// Package control provides the prefix coded blocks that carry encoded values.
//
// Control blocks use a prefix coding scheme to indicate the type of the
// current byte (which then further indicates how many bytes the field
// contains). The intention is to minimize signaling overhead and pack as much
// data directly into the control block as possible.
//
// Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Only the first byte of a field is a
// control byte.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type      |                                  |
//  |---------------|---------------||-----------|----------------------------------|
//  | 1 |                           || Data      | 2^7 = 128 values                 |
//  | 0 . 1 |                       || Data Size | 2^6 = 64 bytes; 2^(64*8) values  |
//  | 0 . 0 . 1 |                   || Data + 1  | 2^(5+8) = 2^13 = 8192 values     |
//  | 0 . 0 . 0 . 1 |               || Data + 2  | 2^(4+8+8) = 2^20 values          |
//  | 0 . 0 . 0 . 0 . x . x . x . x || Reserved  |                                  |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty     | Empty value                      |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null      | Null value (for nullable fields) |
//  |---------------|---------------||-----------|----------------------------------|
//
// Sizes are indexed starting at 1 to maximize their effective range. To
// encode zero length data use the Empty block.
//
// Data blocks hold 7 bits of data directly in the control byte.
//
// Data Size blocks have two parts:
//
//  1. Number of bytes that contain data
//  2. Data
//
// Data + 1 and Data + 2 blocks are two and three byte sequences whose first
// data bits live in the control byte. They hold 13 and 20 bits of data.
//
// Null blocks indicate that the field is set to the null value (e.g. an
// optional decimal that was never assigned).
package control
