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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/predict"
	"seehuhn.de/go/predict/filter"
	"seehuhn.de/go/predict/internal/buildinfo"
	"seehuhn.de/go/predict/internal/profile"
)

// config holds all command-line flag values.
type config struct {
	filter string
	params filter.Params
	force  bool
}

var errTerminal = errors.New("refusing to write binary data to a terminal (use -f to override)")

func main() {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile := flag.String("memprofile", "", "write memory profile to `file`")

	cfg := config{params: *filter.DefaultParams()}
	flag.StringVar(&cfg.filter, "filter", "flate", "decompression filter (flate, lzw or none)")
	flag.IntVar(&cfg.params.Predictor, "predictor", cfg.params.Predictor, "predictor (1, 2, or 10 and above)")
	flag.IntVar(&cfg.params.Colors, "colors", cfg.params.Colors, "color components per pixel")
	flag.IntVar(&cfg.params.BitsPerComponent, "bpc", cfg.params.BitsPerComponent, "bits per color component")
	flag.IntVar(&cfg.params.Columns, "columns", cfg.params.Columns, "pixels per row")
	flag.IntVar(&cfg.params.EarlyChange, "early-change", cfg.params.EarlyChange, "LZW EarlyChange parameter (0 or 1)")
	flag.BoolVar(&cfg.force, "f", false, "write binary output even if stdout is a terminal")
	help := flag.Bool("help", false, "show help information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "unpredict - decode the data of a PDF stream\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("unpredict"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  unpredict [options] <input> <output>\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  input    encoded stream data, or - for stdin\n")
		fmt.Fprintf(os.Stderr, "  output   decoded data, or - for stdout\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  unpredict -predictor 12 -columns 5 xref.bin xref.raw\n")
		fmt.Fprintf(os.Stderr, "  unpredict -filter none -predictor 2 -colors 3 -columns 640 img.bin -\n")
	}

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(cfg, flag.Arg(0), flag.Arg(1), *cpuprofile, *memprofile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config, inName, outName, cpuprofile, memprofile string) (err error) {
	stop, err := profile.Start(cpuprofile, memprofile)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, stop())
	}()

	var in io.Reader = os.Stdin
	if inName != "-" {
		f, err := os.Open(inName)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	if outName == "-" {
		if !cfg.force && term.IsTerminal(int(os.Stdout.Fd())) {
			return errTerminal
		}
	} else {
		var f *os.File
		f, err = os.Create(outName)
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		out = f
	}

	r, err := openDecoder(in, &cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	_, err = io.Copy(out, r)
	return err
}

// openDecoder stacks the selected decompression filter and the predictor
// on top of r.
func openDecoder(r io.Reader, cfg *config) (io.ReadCloser, error) {
	switch cfg.filter {
	case "flate":
		return filter.NewFlateReader(r, &cfg.params)
	case "lzw":
		return filter.NewLZWReader(r, &cfg.params)
	case "none":
		pr, err := predict.NewReader(r, &cfg.params.Params)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(pr), nil
	default:
		return nil, fmt.Errorf("unknown filter %q", cfg.filter)
	}
}
