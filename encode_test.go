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

// encode applies the predictor described by p to data.  This is the inverse
// of Decode and is only used to produce test data.  For PNG predictors, the
// filter type of row i is tags[i%len(tags)].  Trailing bytes which do not
// form a complete row are dropped.
func encode(p *Params, data []byte, tags []byte) []byte {
	if p.Predictor == 1 {
		return data
	}

	stride := p.rowStride()
	bpp := p.bytesPerPixel()
	rows := len(data) / stride

	var out []byte
	prev := make([]byte, stride)
	for i := range rows {
		row := data[i*stride : (i+1)*stride]

		if p.isTIFF() {
			for j, v := range row {
				out = append(out, v-byteAt(row, j-bpp))
			}
			continue
		}

		tag := tags[i%len(tags)]
		out = append(out, tag)
		for j, v := range row {
			var predictor byte
			switch tag {
			case pngSub:
				predictor = byteAt(row, j-bpp)
			case pngUp:
				predictor = prev[j]
			case pngAverage:
				left := int(byteAt(row, j-bpp))
				up := int(prev[j])
				predictor = byte((left + up) / 2)
			case pngPaeth:
				predictor = paethPredictor(byteAt(row, j-bpp), prev[j], byteAt(prev, j-bpp))
			}
			out = append(out, v-predictor)
		}
		prev = row
	}
	return out
}
