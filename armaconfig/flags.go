// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package armaconfig

import "fmt"

// Flags is a set of named diagnostic or output options, built directly
// as a []string rather than parsed from a comma-separated string: the
// set of recognized names is small and fixed, so there is nothing a
// parser would buy beyond what Validate already checks.
type Flags []string

// Recognized flag names, shared between the verification and output
// option sets.
const (
	FlagNone    = "none"
	FlagSummary = "summary"
	FlagQQ      = "qq"
	FlagWaves   = "waves"
	FlagACF     = "acf"
	FlagCSV     = "csv"
	FlagBlitz   = "blitz"
	FlagBinary  = "binary"
	FlagSurface = "surface"
)

var recognizedFlags = map[string]bool{
	FlagNone:    true,
	FlagSummary: true,
	FlagQQ:      true,
	FlagWaves:   true,
	FlagACF:     true,
	FlagCSV:     true,
	FlagBlitz:   true,
	FlagBinary:  true,
	FlagSurface: true,
}

// Validate rejects any name outside the recognized set.
func (f Flags) Validate() error {
	for _, name := range f {
		if !recognizedFlags[name] {
			return invalid("flags", fmt.Sprintf("unrecognized flag %q", name))
		}
	}
	return nil
}

// Has reports whether name is present in the set.
func (f Flags) Has(name string) bool {
	for _, v := range f {
		if v == name {
			return true
		}
	}
	return false
}
