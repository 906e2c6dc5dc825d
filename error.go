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
	"strconv"
)

// Kind classifies the errors returned by this package.
type Kind int

// These are the possible values of [Error.Kind].
const (
	// UnsupportedPredictor indicates a predictor value other than 1, 2 or
	// 10 and above.
	UnsupportedPredictor Kind = iota + 1

	// UnsupportedBitDepth indicates a BitsPerComponent value which is not
	// valid for the selected predictor.
	UnsupportedBitDepth

	// NotImplemented indicates a parameter combination which is defined by
	// the file formats, but which this package cannot decode.  Currently
	// this is the TIFF predictor with BitsPerComponent other than 8.
	NotImplemented

	// UnsupportedFilterType indicates a PNG row with a tag byte outside 0-4.
	UnsupportedFilterType

	// InvalidParameters indicates a Colors or Columns value out of range.
	InvalidParameters
)

func (k Kind) String() string {
	switch k {
	case UnsupportedPredictor:
		return "unsupported predictor"
	case UnsupportedBitDepth:
		return "unsupported bit depth"
	case NotImplemented:
		return "not implemented"
	case UnsupportedFilterType:
		return "unsupported filter type"
	case InvalidParameters:
		return "invalid parameters"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Sentinel errors which can be used with [errors.Is] to test the kind of
// an [*Error].
var (
	ErrUnsupportedPredictor  = errors.New("predict: unsupported predictor")
	ErrUnsupportedBitDepth   = errors.New("predict: unsupported bit depth")
	ErrNotImplemented        = errors.New("predict: not implemented")
	ErrUnsupportedFilterType = errors.New("predict: unsupported filter type")
	ErrInvalidParameters     = errors.New("predict: invalid parameters")
)

var (
	errColors  = errors.New("invalid Colors value")
	errColumns = errors.New("invalid Columns value")
)

// Error is the error type returned by [Decode], [NewReader] and
// [Params.Validate].  Once an error has been returned, no part of the
// output is meaningful.
type Error struct {
	Kind Kind

	// Value is the offending predictor, bit depth, filter type or
	// parameter value.
	Value int

	// Row is the zero-based index of the row where the error was found.
	// Only used for UnsupportedFilterType.
	Row int

	// Err optionally gives more detail.
	Err error
}

func (err *Error) Error() string {
	v := strconv.Itoa(err.Value)
	var msg string
	switch err.Kind {
	case UnsupportedPredictor:
		msg = "unsupported predictor " + v
	case UnsupportedBitDepth:
		msg = "unsupported BitsPerComponent " + v
	case NotImplemented:
		msg = "TIFF predictor not implemented for BitsPerComponent " + v
	case UnsupportedFilterType:
		msg = "unsupported PNG filter type " + v + " in row " + strconv.Itoa(err.Row)
	default:
		msg = err.Kind.String()
		if err.Err != nil {
			msg = err.Err.Error()
		}
		msg += " " + v
	}
	return "predict: " + msg
}

// Is reports whether target is the sentinel error for err.Kind.
// A NotImplemented error also matches [ErrUnsupportedBitDepth].
func (err *Error) Is(target error) bool {
	switch target {
	case ErrUnsupportedPredictor:
		return err.Kind == UnsupportedPredictor
	case ErrUnsupportedBitDepth:
		return err.Kind == UnsupportedBitDepth || err.Kind == NotImplemented
	case ErrNotImplemented:
		return err.Kind == NotImplemented
	case ErrUnsupportedFilterType:
		return err.Kind == UnsupportedFilterType
	case ErrInvalidParameters:
		return err.Kind == InvalidParameters
	}
	return false
}

func (err *Error) Unwrap() error {
	return err.Err
}
