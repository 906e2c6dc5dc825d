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

// Package filter combines the decompression filters used in PDF files
// with the predictor decoding from [seehuhn.de/go/predict].
//
// Decompression itself is delegated to existing libraries:
// github.com/klauspost/compress/zlib for FlateDecode, and
// golang.org/x/image/tiff/lzw or compress/lzw for LZWDecode, depending on
// the EarlyChange parameter.
package filter

import (
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/predict"
)

// Params holds the decode parameters of a FlateDecode or LZWDecode
// stream.
type Params struct {
	predict.Params

	// EarlyChange selects the LZW code length switch.  If 1, the code
	// length increases one code early, as in TIFF.  If 0, the code length
	// increases exactly when needed.  Only used for LZWDecode.
	EarlyChange int
}

// DefaultParams returns the values used when a PDF stream has no
// /DecodeParms entry.
func DefaultParams() *Params {
	return &Params{
		Params: predict.Params{
			Predictor:        1,
			Colors:           1,
			BitsPerComponent: 8,
			Columns:          1,
		},
		EarlyChange: 1,
	}
}

var errEarlyChange = errors.New("invalid EarlyChange value")

// readCloser closes the decompressor below the predictor.
type readCloser struct {
	io.Reader
	io.Closer
}

// readAllLenient reads all data from r.  A stream which ends prematurely
// is accepted, as long as some data could be read.
func readAllLenient(r io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(r)
	if errors.Is(err, io.ErrUnexpectedEOF) && len(data) > 0 {
		err = nil
	}
	if err != nil {
		return nil, fmt.Errorf("filter: %s: %w", name, err)
	}
	return data, nil
}
