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
	"fmt"
	"math"
	"testing"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{
			name:   "valid TIFF predictor",
			params: Params{Colors: 3, BitsPerComponent: 8, Columns: 100, Predictor: 2},
		},
		{
			name:   "valid PNG predictor",
			params: Params{Colors: 4, BitsPerComponent: 8, Columns: 50, Predictor: 12},
		},
		{
			name:   "no predictor ignores other fields",
			params: Params{Predictor: 1},
		},
		{
			name:   "large PNG predictor value",
			params: Params{Colors: 1, BitsPerComponent: 8, Columns: 1, Predictor: 99},
		},
		{
			name:   "sub-byte PNG",
			params: Params{Colors: 1, BitsPerComponent: 1, Columns: 17, Predictor: 10},
		},
		{
			name:   "16 bit TIFF is valid",
			params: Params{Colors: 3, BitsPerComponent: 16, Columns: 10, Predictor: 2},
		},
		{
			name:    "Colors zero",
			params:  Params{Colors: 0, BitsPerComponent: 8, Columns: 10, Predictor: 2},
			wantErr: ErrInvalidParameters,
		},
		{
			name:   "many colors for TIFF",
			params: Params{Colors: 61, BitsPerComponent: 8, Columns: 10, Predictor: 2},
		},
		{
			name:   "many colors for PNG",
			params: Params{Colors: 257, BitsPerComponent: 8, Columns: 10, Predictor: 12},
		},
		{
			name:   "wide image",
			params: Params{Colors: 1, BitsPerComponent: 8, Columns: 1<<20 + 1, Predictor: 12},
		},
		{
			name:    "Colors overflow",
			params:  Params{Colors: math.MaxInt, BitsPerComponent: 8, Columns: 1, Predictor: 12},
			wantErr: ErrInvalidParameters,
		},
		{
			name:    "BitsPerComponent zero",
			params:  Params{Colors: 3, BitsPerComponent: 0, Columns: 10, Predictor: 2},
			wantErr: ErrUnsupportedBitDepth,
		},
		{
			name:    "BitsPerComponent 3",
			params:  Params{Colors: 3, BitsPerComponent: 3, Columns: 10, Predictor: 11},
			wantErr: ErrUnsupportedBitDepth,
		},
		{
			name:    "BitsPerComponent 32",
			params:  Params{Colors: 3, BitsPerComponent: 32, Columns: 10, Predictor: 2},
			wantErr: ErrUnsupportedBitDepth,
		},
		{
			name:    "Columns zero",
			params:  Params{Colors: 3, BitsPerComponent: 8, Columns: 0, Predictor: 2},
			wantErr: ErrInvalidParameters,
		},
		{
			name:    "Columns negative",
			params:  Params{Colors: 3, BitsPerComponent: 8, Columns: -1, Predictor: 12},
			wantErr: ErrInvalidParameters,
		},
		{
			name:    "row size overflow",
			params:  Params{Colors: 3, BitsPerComponent: 8, Columns: math.MaxInt / 2, Predictor: 12},
			wantErr: ErrInvalidParameters,
		},
		{
			name:    "Predictor zero",
			params:  Params{Colors: 3, BitsPerComponent: 8, Columns: 10, Predictor: 0},
			wantErr: ErrUnsupportedPredictor,
		},
		{
			name:    "Predictor negative",
			params:  Params{Colors: 3, BitsPerComponent: 8, Columns: 10, Predictor: -2},
			wantErr: ErrUnsupportedPredictor,
		},
		{
			name:    "Predictor in 3 to 9 range",
			params:  Params{Colors: 3, BitsPerComponent: 8, Columns: 10, Predictor: 5},
			wantErr: ErrUnsupportedPredictor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
			var e *Error
			if !errors.As(err, &e) {
				t.Errorf("error %v is not of type *Error", err)
			}
		})
	}
}

func TestGeometry(t *testing.T) {
	tests := []struct {
		params       Params
		bpp          int
		stride       int
		inputRowSize int
	}{
		{Params{Colors: 1, BitsPerComponent: 8, Columns: 5, Predictor: 12}, 1, 5, 6},
		{Params{Colors: 3, BitsPerComponent: 8, Columns: 5, Predictor: 12}, 3, 15, 16},
		{Params{Colors: 4, BitsPerComponent: 16, Columns: 2, Predictor: 15}, 8, 16, 17},
		{Params{Colors: 1, BitsPerComponent: 1, Columns: 9, Predictor: 10}, 1, 9, 10},
		{Params{Colors: 3, BitsPerComponent: 4, Columns: 2, Predictor: 11}, 2, 4, 5},
		{Params{Colors: 1, BitsPerComponent: 2, Columns: 8, Predictor: 2}, 1, 8, 8},
		{Params{Colors: 3, BitsPerComponent: 8, Columns: 4, Predictor: 2}, 3, 12, 12},
	}

	for _, tt := range tests {
		t.Run(tt.params.String(), func(t *testing.T) {
			if got := tt.params.bytesPerPixel(); got != tt.bpp {
				t.Errorf("bytesPerPixel: got %d, want %d", got, tt.bpp)
			}
			if got := tt.params.rowStride(); got != tt.stride {
				t.Errorf("rowStride: got %d, want %d", got, tt.stride)
			}
			if got := tt.params.inputRowSize(); got != tt.inputRowSize {
				t.Errorf("inputRowSize: got %d, want %d", got, tt.inputRowSize)
			}
		})
	}
}

// String method for Params to help with test output
func (p Params) String() string {
	return fmt.Sprintf("Colors=%d,BPC=%d,Cols=%d,Pred=%d",
		p.Colors, p.BitsPerComponent, p.Columns, p.Predictor)
}
