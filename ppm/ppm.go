// Package ppm encodes and decodes the raw PPM (P6) image format used as
// the renderer's output, at both 8- and 16-bit component depth. It sits
// outside the core rendering pipeline, giving the end-to-end CLI a
// concrete output path. 16-bit samples are written big-endian, matching
// the PPM/NetPBM standard.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fracgo/fracgo/fracerr"
	"github.com/fracgo/fracgo/internal/imagebuf"
)

// Encode writes img to w in PPM P6 format, at img's own bit depth.
func Encode(w io.Writer, img imagebuf.Image) error {
	const op = "ppm.Encode"
	width, height := img.Width(), img.Height()
	maxVal := 255
	if img.BitDepth() == 16 {
		maxVal = 65535
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n%d\n", width, height, maxVal); err != nil {
		return fracerr.New(fracerr.FileIO, op, err)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b := img.At(x, y)
			if img.BitDepth() == 16 {
				if err := writeSample16(bw, r, g, b); err != nil {
					return fracerr.New(fracerr.FileIO, op, err)
				}
			} else {
				if err := bw.WriteByte(byte(r)); err != nil {
					return fracerr.New(fracerr.FileIO, op, err)
				}
				if err := bw.WriteByte(byte(g)); err != nil {
					return fracerr.New(fracerr.FileIO, op, err)
				}
				if err := bw.WriteByte(byte(b)); err != nil {
					return fracerr.New(fracerr.FileIO, op, err)
				}
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fracerr.New(fracerr.FileIO, op, err)
	}
	return nil
}

func writeSample16(bw *bufio.Writer, r, g, b float64) error {
	for _, v := range [3]float64{r, g, b} {
		u := uint16(v)
		if err := bw.WriteByte(byte(u >> 8)); err != nil {
			return err
		}
		if err := bw.WriteByte(byte(u)); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a PPM P6 image from r, at whichever bit depth its max
// value header implies (255 -> 8-bit, 65535 -> 16-bit).
func Decode(r io.Reader) (imagebuf.Image, error) {
	const op = "ppm.Decode"
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, fracerr.New(fracerr.FileIO, op, err)
	}
	if magic != "P6" {
		return nil, fracerr.Newf(fracerr.FileIO, op, "unsupported PPM magic %q, want P6", magic)
	}

	width, err := readIntToken(br, op, "width")
	if err != nil {
		return nil, err
	}
	height, err := readIntToken(br, op, "height")
	if err != nil {
		return nil, err
	}
	maxVal, err := readIntToken(br, op, "maxval")
	if err != nil {
		return nil, err
	}

	var img imagebuf.Image
	switch maxVal {
	case 255:
		img, err = imagebuf.New8(width, height)
	case 65535:
		img, err = imagebuf.New16(width, height)
	default:
		return nil, fracerr.Newf(fracerr.FileIO, op, "unsupported PPM maxval %d, want 255 or 65535", maxVal)
	}
	if err != nil {
		return nil, fracerr.New(fracerr.FileIO, op, err)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if maxVal == 65535 {
				r, g, b, err := readSample16(br)
				if err != nil {
					return nil, fracerr.New(fracerr.FileIO, op, err)
				}
				img.Set(x, y, r, g, b)
			} else {
				var rgb [3]byte
				if _, err := io.ReadFull(br, rgb[:]); err != nil {
					return nil, fracerr.New(fracerr.FileIO, op, err)
				}
				img.Set(x, y, float64(rgb[0]), float64(rgb[1]), float64(rgb[2]))
			}
		}
	}
	return img, nil
}

func readSample16(br *bufio.Reader) (r, g, b float64, err error) {
	var buf [6]byte
	if _, err := io.ReadFull(br, buf[:]); err != nil {
		return 0, 0, 0, err
	}
	r = float64(uint16(buf[0])<<8 | uint16(buf[1]))
	g = float64(uint16(buf[2])<<8 | uint16(buf[3]))
	b = float64(uint16(buf[4])<<8 | uint16(buf[5]))
	return r, g, b, nil
}

// readToken reads one whitespace-delimited header token, skipping '#'
// comments per the PPM standard.
func readToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		c, err := br.ReadByte()
		if err != nil {
			return "", err
		}
		if c == '#' {
			for {
				c, err := br.ReadByte()
				if err != nil {
					return "", err
				}
				if c == '\n' {
					break
				}
			}
			continue
		}
		if isSpace(c) {
			if len(tok) > 0 {
				return string(tok), nil
			}
			continue
		}
		tok = append(tok, c)
	}
}

func readIntToken(br *bufio.Reader, op, field string) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, fracerr.New(fracerr.FileIO, op, err)
	}
	var v int
	for _, c := range []byte(tok) {
		if c < '0' || c > '9' {
			return 0, fracerr.Newf(fracerr.FileIO, op, "%s: %q is not a non-negative integer", field, tok)
		}
		v = v*10 + int(c-'0')
	}
	return v, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
