// Package quad provides globally adaptive one-dimensional numerical
// integration.
//
// [Adaptive] integrates a scalar integrand over a finite interval using
// a 15-point Gauss–Kronrod rule with the embedded 7-point Gauss rule as
// the error estimator (the QUADPACK QAG scheme): the interval with the
// largest estimated error is bisected until the total error falls below
// the configured tolerance or the interval budget is exhausted.
package quad
