// Package fit finds model parameters that minimise the reduced chi-squared of
// a sample set, and compares model families against each other.
//
// It is a consumer of the core packages: every score it reports comes from
// chisq, every model from model, and the exponential and power-law fits go
// through linearize.
//
// # Closed-form fits
//
// Linear and Polynomial solve the weighted least-squares problem directly
// (weights 1/dy²). Exponential and PowerLaw fit a straight line in the
// semilog or log-log frame and map the line back:
//
//	s, _ := sample.New(x, y, dy)
//	res, err := fit.PowerLaw(s)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Formula, res.ChiSquared, res.Linearized.ChiSquared)
//
// # Model comparison
//
// Compare fits the linear, exponential and power-law families and ranks them
// by reduced chi-squared on the original data, lowest first:
//
//	cmp, _ := fit.Compare(s)
//	for _, r := range cmp.All {
//	    fmt.Printf("%s: %.3f\n", r.Kind, r.ChiSquared)
//	}
//
// Families that cannot be linearized (non-positive data) are listed in
// Comparison.Skipped together with the reason.
//
// # Numerical search
//
// Minimize runs a gonum optimizer (Nelder-Mead by default) over the
// chi-squared objective of any model, and Grid scores a rectangular parameter
// grid, optionally across several goroutines:
//
//	res, err := fit.Minimize(s, model.Exponential{}, []float64{1, 0.1},
//	    fit.WithMethod(fit.MethodLBFGS))
//
//	g, err := fit.Grid(s, model.Linear{}, []fit.Axis{
//	    {Min: -2, Max: 2, Steps: 41},
//	    {Min: 0, Max: 3, Steps: 61},
//	}, fit.WithConcurrency(4))
package fit
