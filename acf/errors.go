// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acf

import "fmt"

// ErrUnknownFamily is returned by Lookup when no analytic family is
// registered under the requested name.
type ErrUnknownFamily struct {
	Name string
}

func (e *ErrUnknownFamily) Error() string {
	return fmt.Sprintf("acf: unknown family %q", e.Name)
}
