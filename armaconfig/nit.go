// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package armaconfig

import "github.com/stochasticwave/arma/nit"

// NIT configures the optional non-linear inertialess transform applied
// between ACF construction and coefficient fitting (correcting the ACF
// toward Target) and again after surface generation (reshaping the
// generated values toward Target). A nil *NIT in Config skips both
// steps, leaving the surface Gaussian.
type NIT = nit.Transform
