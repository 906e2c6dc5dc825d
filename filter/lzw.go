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
	"compress/lzw"
	"fmt"
	"io"

	tifflzw "golang.org/x/image/tiff/lzw"

	"seehuhn.de/go/predict"
)

// LZWDecode decompresses LZW data and then undoes the predictor given in p.
// If p is nil, [DefaultParams] are used.
func LZWDecode(data []byte, p *Params) ([]byte, error) {
	if p == nil {
		p = DefaultParams()
	}

	lr, err := newLZWReader(bytes.NewReader(data), p.EarlyChange)
	if err != nil {
		return nil, err
	}
	defer lr.Close()

	raw, err := readAllLenient(lr, "LZWDecode")
	if err != nil {
		return nil, err
	}
	return predict.Decode(&p.Params, raw)
}

// NewLZWReader returns a reader which decompresses the LZW data read from r
// and undoes the predictor given in p.  If p is nil, [DefaultParams] are
// used.
func NewLZWReader(r io.Reader, p *Params) (io.ReadCloser, error) {
	if p == nil {
		p = DefaultParams()
	}

	lr, err := newLZWReader(r, p.EarlyChange)
	if err != nil {
		return nil, err
	}
	pr, err := predict.NewReader(lr, &p.Params)
	if err != nil {
		lr.Close()
		return nil, err
	}
	return &readCloser{Reader: pr, Closer: lr}, nil
}

// newLZWReader selects the LZW variant.  PDF uses MSB-first codes with
// 8-bit literals in both cases.
func newLZWReader(r io.Reader, earlyChange int) (io.ReadCloser, error) {
	switch earlyChange {
	case 0:
		return lzw.NewReader(r, lzw.MSB, 8), nil
	case 1:
		return tifflzw.NewReader(r, tifflzw.MSB, 8), nil
	default:
		return nil, fmt.Errorf("filter: LZWDecode: %w %d", errEarlyChange, earlyChange)
	}
}
