// Package imagebuf implements the dense row-major pixel grid used as the
// renderer's working image buffer, at either 8- or 16-bit component
// depth, with an unchecked accessor for hot paths and a bounds-clamping
// sampler for filter and downscale border handling.
package imagebuf

import (
	"github.com/fracgo/fracgo/fracerr"
	"github.com/fracgo/fracgo/internal/pool"
)

// Image is a dense W x H grid of RGB pixels at a fixed component depth.
// Components are stored as uint8 or uint16 and exchanged through this
// interface as float64 in [0, max-depth], so that filters and blends
// need not special-case depth; Set quantizes and clamps to the image's
// own depth.
type Image interface {
	Width() int
	Height() int
	// BitDepth returns 8 or 16.
	BitDepth() int
	// At returns the pixel at (x,y). The caller must guarantee
	// 0<=x<Width() and 0<=y<Height(); out-of-range access is undefined.
	At(x, y int) (r, g, b float64)
	// Set writes the pixel at (x,y), clamping each component to the
	// image's depth. The caller must guarantee the coordinate is in
	// bounds.
	Set(x, y int, r, g, b float64)
	// Sample returns the pixel nearest (x,y), clamping each coordinate
	// independently to [0,dim-1]. This is the clamp-to-edge policy used
	// by separable filters near image borders.
	Sample(x, y int) (r, g, b float64)
}

// image8 is a row-major image with 8-bit components, laid out like
// image.RGBA's Pix slice (3 bytes per pixel, no padding).
type image8 struct {
	w, h int
	pix  []uint8
}

// New8 allocates a zeroed 8-bit image of the given dimensions.
func New8(w, h int) (Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fracerr.Newf(fracerr.InvalidArgument, "imagebuf.New8", "non-positive dimensions %dx%d", w, h)
	}
	return &image8{w: w, h: h, pix: make([]uint8, w*h*3)}, nil
}

func (im *image8) Width() int    { return im.w }
func (im *image8) Height() int   { return im.h }
func (im *image8) BitDepth() int { return 8 }

func (im *image8) offset(x, y int) int { return (y*im.w + x) * 3 }

func (im *image8) At(x, y int) (r, g, b float64) {
	o := im.offset(x, y)
	return float64(im.pix[o]), float64(im.pix[o+1]), float64(im.pix[o+2])
}

func (im *image8) Set(x, y int, r, g, b float64) {
	o := im.offset(x, y)
	im.pix[o] = clamp8(r)
	im.pix[o+1] = clamp8(g)
	im.pix[o+2] = clamp8(b)
}

func (im *image8) Sample(x, y int) (r, g, b float64) {
	return im.At(clampCoord(x, im.w), clampCoord(y, im.h))
}

// image16 is the 16-bit-per-component analogue of image8.
type image16 struct {
	w, h int
	pix  []uint16
}

// New16 allocates a zeroed 16-bit image of the given dimensions.
func New16(w, h int) (Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fracerr.Newf(fracerr.InvalidArgument, "imagebuf.New16", "non-positive dimensions %dx%d", w, h)
	}
	return &image16{w: w, h: h, pix: make([]uint16, w*h*3)}, nil
}

func (im *image16) Width() int    { return im.w }
func (im *image16) Height() int   { return im.h }
func (im *image16) BitDepth() int { return 16 }

func (im *image16) offset(x, y int) int { return (y*im.w + x) * 3 }

func (im *image16) At(x, y int) (r, g, b float64) {
	o := im.offset(x, y)
	return float64(im.pix[o]), float64(im.pix[o+1]), float64(im.pix[o+2])
}

func (im *image16) Set(x, y int, r, g, b float64) {
	o := im.offset(x, y)
	im.pix[o] = clamp16(r)
	im.pix[o+1] = clamp16(g)
	im.pix[o+2] = clamp16(b)
}

func (im *image16) Sample(x, y int) (r, g, b float64) {
	return im.At(clampCoord(x, im.w), clampCoord(y, im.h))
}

// NewLike allocates a zeroed image with the same dimensions and bit
// depth as src.
func NewLike(src Image) (Image, error) {
	if src.BitDepth() == 16 {
		return New16(src.Width(), src.Height())
	}
	return New8(src.Width(), src.Height())
}

// New8Pooled allocates an 8-bit image backed by a pixel buffer borrowed
// from the package's byte pool instead of a fresh make(), for
// short-lived scratch images (e.g. a separable filter's intermediate
// pass) that are never returned to a caller. The release function must
// be called exactly once, after the image is no longer needed, to
// return the buffer to the pool.
func New8Pooled(w, h int) (Image, func(), error) {
	if w <= 0 || h <= 0 {
		return nil, nil, fracerr.Newf(fracerr.InvalidArgument, "imagebuf.New8Pooled", "non-positive dimensions %dx%d", w, h)
	}
	pix := pool.Get(w * h * 3)
	for i := range pix {
		pix[i] = 0
	}
	im := &image8{w: w, h: h, pix: pix}
	release := func() { pool.Put(pix) }
	return im, release, nil
}

// clampCoord clamps a coordinate to [0, dim-1]. The 9 border regions
// (4 corners, 4 edges, interior) fall out of clamping x and y
// independently: a corner clamps both, an edge clamps one, the
// interior clamps neither.
func clampCoord(v, dim int) int {
	if v < 0 {
		return 0
	}
	if v >= dim {
		return dim - 1
	}
	return v
}

func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func clamp16(v float64) uint16 {
	if v <= 0 {
		return 0
	}
	if v >= 65535 {
		return 65535
	}
	return uint16(v + 0.5)
}
