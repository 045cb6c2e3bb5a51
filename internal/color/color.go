// Package color implements the sRGB transfer functions used to turn the
// linear color values produced by the accumulator into display values.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
package color

// Max8 is the largest 8-bit channel value.
const Max8 = 255
