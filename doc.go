// Package lagrange fits exact polynomials through sample points — dense
// coefficient arithmetic, Lagrange interpolation and best-rational display,
// all in pure Go.
//
// 🚀 What is lagrange?
//
//	A small, focused numerical library that brings together:
//		• Polynomial values: canonical dense coefficients, Horner evaluation
//		• Arithmetic: add, subtract, multiply (convolution), scalar scale/divide
//		• Interpolation: the unique degree ≤ n−1 polynomial through n points
//		• Least-squares fits: Vandermonde/QR fitting for noisy data
//		• Rational display: continued-fraction best approximations (1/3, 355/113, …)
//		• Fit diagnostics: residuals and precision statistics
//
// ✨ Why choose lagrange?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable values, canonical form, sentinel errors
//   - Pure functions – no globals, no hidden state, deterministic results
//
// Under the hood, everything is organized under three subpackages:
//
//	polynomial/  — the immutable dense-coefficient Polynomial value & arithmetic
//	rational/    — continued-fraction best-rational approximation for display
//	interpolate/ — Lagrange construction, Vandermonde fits & residual statistics
//
// Quick sketch:
//
//	    (1,1) (2,2) (3,3) (4,4) (5,98756)
//	          │ interpolate.Interpolate
//	          ▼
//	    ip ≡ [98751, -205730.25, 144011.875, -41146.25, 4114.625]
//
// Dive into each package's doc.go for full examples, the algorithms used,
// and their complexity bounds.
//
//	go get github.com/katalvlaran/lagrange
package lagrange
