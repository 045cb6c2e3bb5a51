package color

import "math"

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB (OETF - Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input and output are in range [0,1].
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// Encode gamma-encodes a linear component in [0,1] and scales it to the
// integer range [0,max], rounding down. Inputs outside [0,1] are clamped.
func Encode(l float64, max int) int {
	l = clamp01(l)
	if l == 1 {
		// LinearToSRGB(1) rounds to just below 1.
		return max
	}
	s := LinearToSRGB(l)
	v := int(math.Floor(s * float64(max)))
	if v > max {
		return max
	}
	if v < 0 {
		return 0
	}
	return v
}

// Encode8 is Encode with max = 255.
func Encode8(l float64) uint8 {
	return uint8(Encode(l, Max8)) //nolint:gosec // G115: Encode clamps to [0,255]
}

// clamp01 clamps v to [0,1]; NaN maps to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
