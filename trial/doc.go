// Package trial reduces repeated measurements into a mean and a standard
// error of the mean per independent-variable setting.
//
// A Table has one row per setting and one column per repeated trial. Reduce
// returns, for every row,
//
//	mean = Σ v / T
//	sem  = s / √T,  with s the Bessel-corrected (T-1) sample standard deviation
//
// The sample estimator is fixed: trial counts are small and the population
// variance is unknown. A table with fewer than two trials has no defined
// standard error and is rejected with errs.ErrInsufficientTrials rather than
// reported as zero uncertainty.
//
// Generate produces synthetic tables of normally distributed trials around a
// known model, which is how measurement exercises are usually simulated:
//
//	tbl, _ := trial.Generate(x, 5, trial.WithNoise(1), trial.WithSeed(42))
//	set, _ := tbl.Sample(x) // (x, mean, sem) ready for chisq
package trial
