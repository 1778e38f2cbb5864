// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package armaconfig

import "fmt"

// ErrInvalidConfig reports a configuration record that fails validation
// before any computation starts: an unrecognized enumerated value, a
// missing required field, or a non-finite or non-positive numeric
// value where one is required.
type ErrInvalidConfig struct {
	Field  string
	Reason string
}

func (e *ErrInvalidConfig) Error() string {
	return fmt.Sprintf("armaconfig: %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ErrInvalidConfig{Field: field, Reason: reason}
}
