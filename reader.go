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

import (
	"errors"
	"io"
)

// reader undoes the effects of a prediction filter on the data read from it.
// This is used on decompressed data when reading LZW/Flate compressed streams.
type reader struct {
	r io.Reader
	d *rowDecoder

	in      []byte // one encoded row
	pending []byte // decoded data not yet returned
	err     error  // sticky; io.EOF once the input is exhausted
}

// NewReader returns an [io.Reader] which undoes the predictor described by p
// on the data read from r.  The parameters are checked before any data is
// read, and the same errors as for [Decode] are returned.  For predictor 1,
// or if p is nil, r itself is returned.
//
// Rows are decoded one at a time, so data from rows before a malformed row
// may already have been returned when the error is reported.  A trailing
// partial row is silently discarded.
func NewReader(r io.Reader, p *Params) (io.Reader, error) {
	if p == nil {
		return r, nil
	}
	if err := checkParams(p); err != nil {
		return nil, err
	}
	if p.Predictor == 1 {
		return r, nil
	}

	return &reader{
		r:  r,
		d:  newRowDecoder(p),
		in: make([]byte, p.inputRowSize()),
	}, nil
}

// Read implements the [io.Reader] interface.
func (r *reader) Read(buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		if len(r.pending) > 0 {
			m := copy(buf[n:], r.pending)
			r.pending = r.pending[m:]
			n += m
			continue
		}
		if r.err != nil {
			break
		}

		_, err := io.ReadFull(r.r, r.in)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			r.err = io.EOF
			break
		} else if err != nil {
			r.err = err
			break
		}

		row, err := r.d.decodeRow(r.in)
		if err != nil {
			r.err = err
			break
		}
		r.pending = row
	}

	if n == 0 && r.err != nil {
		return 0, r.err
	}
	return n, nil
}
