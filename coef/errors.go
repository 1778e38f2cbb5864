// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coef

import "errors"

// ErrNotPositiveDefinite is returned when the Yule-Walker covariance
// matrix assembled from an ACF fails Cholesky factorization.
var ErrNotPositiveDefinite = errors.New("coef: covariance matrix is not positive definite")

// ErrNonStationary is returned by a fitted AR model whose coefficients
// fail the |phi| < 1 stability bound.
var ErrNonStationary = errors.New("coef: fitted AR model is not stationary")

// ErrIterationFailure is returned when an MA fixed-point or
// Newton-Raphson solve fails to converge, produces a non-finite
// coefficient, or drives the white noise variance to or below
// MAOptions.MinWhiteNoiseVariance.
var ErrIterationFailure = errors.New("coef: MA coefficient iteration failed to converge")

// ErrBadOrder is returned when a requested model order exceeds the
// bounds of the supplied ACF.
var ErrBadOrder = errors.New("coef: model order exceeds ACF bounds")
