// Package interop converts wide decimals to and from other Go decimal types:
// cockroachdb/apd, shopspring/decimal, govalues/decimal and inf.v0.
//
// Conversions into a wide decimal never fail for finite inputs. Coefficients
// wider than 56 bits keep their leading digits and values outside of the wide
// range become infinities. Conversions out of a wide decimal fail for NaN and
// the infinities when the target type has no such values.
package interop
