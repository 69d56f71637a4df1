// Package colormodel implements the 8- and 16-bit-per-channel RGB colour
// model used throughout the renderer: construction from packed integers,
// depth conversion, affine mixing, Manhattan dissimilarity, and bilinear
// blending of four corner colours.
package colormodel

// Color8 is an RGB triple with 8-bit components, matching the depth of
// an 8-bit-per-channel output image.
type Color8 struct {
	R, G, B uint8
}

// Color16 is an RGB triple with 16-bit components, matching the depth of
// a 16-bit-per-channel output image.
type Color16 struct {
	R, G, B uint16
}

// Color8FromUint32 builds a Color8 from a packed 24-bit integer
// 0xRRGGBB, as read from a hex token in a rendering-parameter file.
func Color8FromUint32(packed uint32) Color8 {
	return Color8{
		R: uint8(packed >> 16),
		G: uint8(packed >> 8),
		B: uint8(packed),
	}
}

// Color16FromUint64 builds a Color16 from a packed 48-bit integer
// 0xRRRRGGGGBBBB.
func Color16FromUint64(packed uint64) Color16 {
	return Color16{
		R: uint16(packed >> 32),
		G: uint16(packed >> 16),
		B: uint16(packed),
	}
}

// roundHalfUp scales a value from one bit depth to another with
// round-half-up: multiply then divide with a rounding term of half the
// divisor, rather than the bit-replication method some libraries use.
func roundHalfUp(v, srcMax, dstMax uint32) uint16 {
	return uint16((v*dstMax + srcMax/2) / srcMax)
}

// To16 converts c to 16-bit depth, scaling 0..255 to 0..65535 with
// round-half-up.
func (c Color8) To16() Color16 {
	return Color16{
		R: roundHalfUp(uint32(c.R), 255, 65535),
		G: roundHalfUp(uint32(c.G), 255, 65535),
		B: roundHalfUp(uint32(c.B), 255, 65535),
	}
}

// To8 converts c to 8-bit depth, scaling 0..65535 to 0..255 with
// round-half-up.
func (c Color16) To8() Color8 {
	return Color8{
		R: uint8(roundHalfUp(uint32(c.R), 65535, 255)),
		G: uint8(roundHalfUp(uint32(c.G), 65535, 255)),
		B: uint8(roundHalfUp(uint32(c.B), 65535, 255)),
	}
}

// Mix8 computes the affine combination c1*w1 + c2*w2 for arbitrary real
// weights (not necessarily summing to 1, and not necessarily in [0,1]),
// clamping each channel to [0,255].
func Mix8(c1, c2 Color8, w1, w2 float64) Color8 {
	return Color8{
		R: clamp8(float64(c1.R)*w1 + float64(c2.R)*w2),
		G: clamp8(float64(c1.G)*w1 + float64(c2.G)*w2),
		B: clamp8(float64(c1.B)*w1 + float64(c2.B)*w2),
	}
}

// Mix16 is the 16-bit analogue of Mix8.
func Mix16(c1, c2 Color16, w1, w2 float64) Color16 {
	return Color16{
		R: clamp16(float64(c1.R)*w1 + float64(c2.R)*w2),
		G: clamp16(float64(c1.G)*w1 + float64(c2.G)*w2),
		B: clamp16(float64(c1.B)*w1 + float64(c2.B)*w2),
	}
}

func clamp8(v float64) uint8 {
	v += 0.5
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

func clamp16(v float64) uint16 {
	v += 0.5
	if v <= 0 {
		return 0
	}
	if v >= 65535 {
		return 65535
	}
	return uint16(v)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Dissimilarity8 computes the Manhattan colour distance of c1 and c2,
// normalised to [0,1]: (|Δr|+|Δg|+|Δb|) / (3*255).
func Dissimilarity8(c1, c2 Color8) float64 {
	d := absInt(int(c1.R)-int(c2.R)) + absInt(int(c1.G)-int(c2.G)) + absInt(int(c1.B)-int(c2.B))
	return float64(d) / (3 * 255)
}

// Dissimilarity16 is the 16-bit analogue of Dissimilarity8.
func Dissimilarity16(c1, c2 Color16) float64 {
	d := absInt(int(c1.R)-int(c2.R)) + absInt(int(c1.G)-int(c2.G)) + absInt(int(c1.B)-int(c2.B))
	return float64(d) / (3 * 65535)
}

// QuadDissimilarity8 computes the mean distance of four corner colours
// from their mean colour. The adaptive evaluator does not call it; it
// measures flatness on escape values instead of colours.
func QuadDissimilarity8(c [4]Color8) float64 {
	var sr, sg, sb float64
	for _, c := range c {
		sr += float64(c.R)
		sg += float64(c.G)
		sb += float64(c.B)
	}
	mean := Color8{clamp8(sr / 4), clamp8(sg / 4), clamp8(sb / 4)}
	var total float64
	for _, ci := range c {
		total += Dissimilarity8(ci, mean)
	}
	return total / 4
}

// Bilinear8 blends the four corner colours c[0..3] (top-left, top-right,
// bottom-left, bottom-right) at the normalised position (x,y) in [0,1]x[0,1].
func Bilinear8(c [4]Color8, x, y float64) Color8 {
	top := Mix8(c[0], c[1], 1-x, x)
	bottom := Mix8(c[2], c[3], 1-x, x)
	return Mix8(top, bottom, 1-y, y)
}

// Bilinear16 is the 16-bit analogue of Bilinear8.
func Bilinear16(c [4]Color16, x, y float64) Color16 {
	top := Mix16(c[0], c[1], 1-x, x)
	bottom := Mix16(c[2], c[3], 1-x, x)
	return Mix16(top, bottom, 1-y, y)
}
