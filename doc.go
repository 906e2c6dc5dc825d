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

// Package predict undoes the predictor transformations which PDF, TIFF and
// PNG apply to image data before compression.
//
// A predictor replaces every byte by its difference to a value predicted
// from bytes which are already known: the byte one pixel to the left, the
// byte in the row above, or a combination of these.  Decoding adds the
// predicted values back, row by row, to restore the original data.
//
// Three kinds of predictor are supported, selected by [Params.Predictor]:
//
//   - 1: no prediction; the data is passed through unchanged.
//   - 2: TIFF horizontal differencing.  Only 8 bits per component are
//     implemented.
//   - 10 and above: PNG filters.  Each row starts with a tag byte which
//     selects one of the filter types None, Sub, Up, Average or Paeth.
//
// [Decode] works on a complete byte slice, [NewReader] decodes a stream
// one row at a time.  Decompression of Flate or LZW streams is not part of
// this package; see the filter subpackage for convenience functions which
// combine both steps.
package predict
