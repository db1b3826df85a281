// Package linearize converts power-law and exponential relationships into
// straight lines so that a single linear fit can test all three families.
//
// For data (x, y, dy) it builds three coordinate systems:
//
//	linear:   (x,    y,    dy)
//	semilog:  (x,    ln y, dy/y)   y = A e^(Bx)  becomes  ln y = Bx + ln A
//	log-log:  (ln x, ln y, dy/y)   y = A x^B     becomes  ln y = B ln x + ln A
//
// The uncertainty of ln y is propagated to first order, d(ln y) = dy/y; it is
// never ln(dy).
//
// Logarithms of non-positive values are rejected with errs.ErrNonPositiveValue:
// y <= 0 whenever the semilog or log-log view is requested, x <= 0 whenever the
// log-log view is requested. Use WithViews to request only the views a data
// set supports.
//
// After fitting a line with slope m and intercept b in one of the log views,
// map the result back with SemilogToExponential or LoglogToPowerLaw:
//
//	views, _ := linearize.Linearize(x, y, dy)
//	// fit ln y = m*x + b on views.Semilog ...
//	A, B := linearize.SemilogToExponential(m, b) // y = A e^(Bx)
package linearize
