// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nit

import "errors"

// ErrNoConvergentOrder is returned when no interpolation order between 1
// and MaxInterpolationOrder produced a finite Gram-Charlier expansion.
var ErrNoConvergentOrder = errors.New("nit: no interpolation order converged to a usable expansion")
