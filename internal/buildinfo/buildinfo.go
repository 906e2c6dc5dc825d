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

// Package buildinfo describes the version of the running binary.
package buildinfo

import (
	"runtime/debug"
)

// Version returns the module version of the binary, or a shortened VCS
// revision for development builds.  The second return value is false if no
// version information is available.
func Version() (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	return version(info)
}

func version(info *debug.BuildInfo) (string, bool) {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return info.Main.Path + " " + v, true
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return "", false
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if dirty {
		rev += "+dirty"
	}
	return info.Main.Path + " " + rev, true
}

// Short returns a short version string for a command line tool, e.g.
// "unpredict (seehuhn.de/go/predict v0.1.0)".
func Short(toolName string) string {
	v, ok := Version()
	if !ok {
		return toolName
	}
	return toolName + " (" + v + ")"
}
