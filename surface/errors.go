// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import "errors"

// ErrCancelled is returned by Generate when its context is cancelled
// before every partition has been computed.
var ErrCancelled = errors.New("surface: generation cancelled")
