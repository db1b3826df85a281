package fit_test

import (
	"fmt"
	"log"

	"github.com/arloliu/chifit/fit"
	"github.com/arloliu/chifit/model"
	"github.com/arloliu/chifit/sample"
)

// ExampleCompare ranks the three families on data that follows a power law.
func ExampleCompare() {
	s, err := sample.New(
		[]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		[]float64{3, 9, 21, 33, 50, 77, 103, 130, 166, 205},
		[]float64{2, 4, 2, 4, 2, 4, 2, 4, 2, 4},
	)
	if err != nil {
		log.Fatal(err)
	}

	c, err := fit.Compare(s)
	if err != nil {
		log.Fatal(err)
	}

	for _, r := range c.All {
		fmt.Printf("%-11s χ²ν=%.3f %s\n", r.Kind, r.ChiSquared, r.Formula)
	}

	// Output:
	// powerlaw    χ²ν=0.444 y = 2.259 * x^1.956
	// exponential χ²ν=17.577 y = 13.94 * e^(0.2748*x)
	// linear      χ²ν=40.411 y = -37.35 + 21.23*x
}

// ExampleGrid scans intercept and slope the way a pair of sliders would.
func ExampleGrid() {
	s, err := sample.WithUniformUncertainty(
		[]float64{0, 1, 2, 3, 4, 5},
		[]float64{1, 3, 5, 7, 9, 11},
		0.5,
	)
	if err != nil {
		log.Fatal(err)
	}

	g, err := fit.Grid(s, model.Linear{}, []fit.Axis{
		{Min: -1, Max: 3, Steps: 41},
		{Min: 0, Max: 4, Steps: 41},
	}, fit.WithConcurrency(4))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("cells=%d best=(%.2f, %.2f) score=%.3f\n", len(g.Scores), g.Best[0], g.Best[1], g.BestScore)

	// Output:
	// cells=1681 best=(1.00, 2.00) score=0.000
}

// ExampleMinimize refines an exponential fit directly on the original data.
func ExampleMinimize() {
	s, err := sample.New(
		[]float64{0, 1, 2, 3, 4},
		[]float64{1.02, 1.49, 2.21, 3.35, 4.92},
		[]float64{0.05, 0.08, 0.11, 0.17, 0.25},
	)
	if err != nil {
		log.Fatal(err)
	}

	start, err := fit.Exponential(s)
	if err != nil {
		log.Fatal(err)
	}

	res, err := fit.Minimize(s, model.Exponential{}, start.Params)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.ChiSquared <= start.ChiSquared)

	// Output:
	// true
}
