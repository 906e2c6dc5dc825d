// seehuhn.de/go/predict - undo PDF, TIFF and PNG predictor filters
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package predict

// PNG filter types, as found in the tag byte at the start of each row.
const (
	pngNone    = 0
	pngSub     = 1
	pngUp      = 2
	pngAverage = 3
	pngPaeth   = 4
)

// Decode undoes the effect of the predictor described by p on data.
//
// The input must already be decompressed.  Only whole rows are decoded;
// trailing bytes which do not form a complete row are ignored.  For
// predictor 1 the input slice is returned unchanged, otherwise the result
// is newly allocated and data is not modified.
//
// A nil p is treated like predictor 1.  If an error is returned, the
// result is nil.  All errors are of type [*Error].
func Decode(p *Params, data []byte) ([]byte, error) {
	if p == nil {
		return data, nil
	}
	if err := checkParams(p); err != nil {
		return nil, err
	}
	if p.Predictor == 1 {
		return data, nil
	}

	inSize := p.inputRowSize()
	rows := len(data) / inSize
	out := make([]byte, 0, rows*p.rowStride())

	d := newRowDecoder(p)
	for i := range rows {
		row, err := d.decodeRow(data[i*inSize : (i+1)*inSize])
		if err != nil {
			return nil, err
		}
		out = append(out, row...)
	}
	return out, nil
}

// checkParams is like p.Validate, but also rejects the parameter
// combinations which are valid but not implemented.
func checkParams(p *Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.isTIFF() && p.BitsPerComponent != 8 {
		return &Error{Kind: NotImplemented, Value: p.BitsPerComponent}
	}
	return nil
}

// rowDecoder holds the state carried from one row to the next.
type rowDecoder struct {
	png bool
	bpp int

	// prev holds the previous reconstructed row (all zeros before the
	// first row), cur receives the row being reconstructed.  The two
	// buffers are swapped after each PNG row.
	prev []byte
	cur  []byte

	row int
}

func newRowDecoder(p *Params) *rowDecoder {
	stride := p.rowStride()
	d := &rowDecoder{
		png: p.isPNG(),
		bpp: p.bytesPerPixel(),
		cur: make([]byte, stride),
	}
	if d.png {
		d.prev = make([]byte, stride)
	}
	return d
}

// decodeRow reconstructs one row.  The input must be exactly one encoded
// row.  The returned slice is only valid until the next call.
func (d *rowDecoder) decodeRow(in []byte) ([]byte, error) {
	if d.png {
		return d.decodePNGRow(in)
	}
	d.decodeTIFFRow(in)
	return d.cur, nil
}

// decodeTIFFRow undoes horizontal differencing for 8-bit samples.
// TIFF rows do not depend on each other.
func (d *rowDecoder) decodeTIFFRow(x []byte) {
	out := d.cur
	for j, v := range x {
		out[j] = v + byteAt(out, j-d.bpp)
	}
}

func (d *rowDecoder) decodePNGRow(in []byte) ([]byte, error) {
	tag := in[0]
	x := in[1:]
	out, prev, bpp := d.cur, d.prev, d.bpp

	switch tag {
	case pngNone:
		copy(out, x)
	case pngSub:
		for j, v := range x {
			out[j] = v + byteAt(out, j-bpp)
		}
	case pngUp:
		for j, v := range x {
			out[j] = v + prev[j]
		}
	case pngAverage:
		for j, v := range x {
			a := int(byteAt(out, j-bpp))
			b := int(prev[j])
			out[j] = v + byte((a+b)/2)
		}
	case pngPaeth:
		for j, v := range x {
			a := byteAt(out, j-bpp)
			b := prev[j]
			c := byteAt(prev, j-bpp)
			out[j] = v + paethPredictor(a, b, c)
		}
	default:
		return nil, &Error{Kind: UnsupportedFilterType, Value: int(tag), Row: d.row}
	}

	d.prev, d.cur = out, prev
	d.row++
	return out, nil
}

// byteAt returns row[j], or 0 if j is negative.
func byteAt(row []byte, j int) byte {
	if j < 0 {
		return 0
	}
	return row[j]
}

// paethPredictor returns whichever of a (the byte to the left), b (the
// byte above) and c (the byte above and to the left) is closest to
// a + b - c.  Ties are broken in the order a, b, c.
func paethPredictor(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))

	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
