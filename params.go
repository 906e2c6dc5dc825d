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

import "math"

// Params describes the geometry of a predicted byte stream.  In PDF files,
// the values are taken from the /DecodeParms dictionary of a stream.
type Params struct {
	// Colors is the number of color components per pixel.
	// Valid range: at least 1.
	// Only used if Predictor > 1.
	Colors int

	// BitsPerComponent is the number of bits used to represent each color component.
	// Valid values: 1, 2, 4, 8, or 16.
	BitsPerComponent int

	// Columns is the width of the image in pixels.
	// Valid range: at least 1.
	Columns int

	// Predictor selects the prediction algorithm:
	//   1: no prediction, the data is passed through unchanged
	//   2: TIFF horizontal differencing
	//  10 and above: PNG filters, selected per row by a tag byte
	//
	// All PNG predictor values are decoded the same way, since every row
	// carries its own filter type.
	Predictor int
}

// Validate checks that the parameters describe a supported predictor.
// The returned error, if any, is of type [*Error].  A nil Params value
// means no prediction.
func (p *Params) Validate() error {
	if p == nil || p.Predictor == 1 {
		// Predictor 1 does not require any parameters
		return nil
	}

	if !p.isTIFF() && !p.isPNG() {
		return &Error{Kind: UnsupportedPredictor, Value: p.Predictor}
	}

	// The upper bound keeps Colors*BitsPerComponent inside an int.
	if p.Colors < 1 || p.Colors > math.MaxInt/16 {
		return &Error{Kind: InvalidParameters, Value: p.Colors,
			Err: errColors}
	}

	switch p.BitsPerComponent {
	case 1, 2, 4, 8, 16:
		// valid
	default:
		return &Error{Kind: UnsupportedBitDepth, Value: p.BitsPerComponent}
	}

	// The encoded row, including the PNG tag byte, must fit inside an int.
	if p.Columns < 1 || p.Columns > (math.MaxInt-1)/p.bytesPerPixel() {
		return &Error{Kind: InvalidParameters, Value: p.Columns,
			Err: errColumns}
	}

	return nil
}

func (p *Params) isTIFF() bool {
	return p.Predictor == 2
}

func (p *Params) isPNG() bool {
	return p.Predictor >= 10
}

func (p *Params) bitsPerPixel() int {
	return p.Colors * p.BitsPerComponent
}

// bytesPerPixel is the lookback distance used by the reconstruction rules.
// For bit depths below 8 this is a whole byte, even if several pixels share
// the byte.
func (p *Params) bytesPerPixel() int {
	return max(1, (p.bitsPerPixel()+7)/8)
}

// rowStride is the number of content bytes in a row, not counting the PNG
// tag byte.  Every pixel occupies bytesPerPixel bytes, also for bit depths
// below 8.
func (p *Params) rowStride() int {
	return p.Columns * p.bytesPerPixel()
}

// inputRowSize is the number of encoded bytes per row.
func (p *Params) inputRowSize() int {
	if p.isPNG() {
		return p.rowStride() + 1
	}
	return p.rowStride()
}
