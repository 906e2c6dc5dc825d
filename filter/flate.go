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

package filter

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"seehuhn.de/go/predict"
)

// FlateDecode decompresses zlib data and then undoes the predictor given
// in p.  If p is nil, [DefaultParams] are used.  Errors from the predictor
// are returned unchanged, so that they can be inspected using the
// sentinel errors of the predict package.
func FlateDecode(data []byte, p *Params) ([]byte, error) {
	if p == nil {
		p = DefaultParams()
	}

	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("filter: FlateDecode: %w", err)
	}
	defer zr.Close()

	raw, err := readAllLenient(zr, "FlateDecode")
	if err != nil {
		return nil, err
	}
	return predict.Decode(&p.Params, raw)
}

// NewFlateReader returns a reader which decompresses the zlib data read
// from r and undoes the predictor given in p.  If p is nil, [DefaultParams]
// are used.  The zlib header is read before the function returns.
func NewFlateReader(r io.Reader, p *Params) (io.ReadCloser, error) {
	if p == nil {
		p = DefaultParams()
	}

	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("filter: FlateDecode: %w", err)
	}
	pr, err := predict.NewReader(zr, &p.Params)
	if err != nil {
		zr.Close()
		return nil, err
	}
	return &readCloser{Reader: pr, Closer: zr}, nil
}
