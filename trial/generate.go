package trial

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/arloliu/chifit/errs"
	"github.com/arloliu/chifit/internal/options"
	"github.com/arloliu/chifit/model"
)

// GenerateConfig controls synthetic trial generation.
type GenerateConfig struct {
	// Noise is the standard deviation of every trial around the true value.
	Noise float64
	// Seed makes the generated table reproducible when Seeded is true.
	Seed   uint64
	Seeded bool
	// Truth and TruthArgs define the true value at each setting.
	Truth     model.Model
	TruthArgs []float64
}

// GenerateOption configures Generate.
type GenerateOption = options.Option[*GenerateConfig]

func defaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		Noise:     1,
		Truth:     model.Linear{},
		TruthArgs: []float64{0, 1},
	}
}

// WithNoise sets the standard deviation of the trials. It must be positive.
func WithNoise(sigma float64) GenerateOption {
	return options.New(func(cfg *GenerateConfig) error {
		if !(sigma > 0) {
			return fmt.Errorf("%w: noise must be positive, got %g", errs.ErrInvalidOption, sigma)
		}
		cfg.Noise = sigma

		return nil
	})
}

// WithSeed makes Generate deterministic.
func WithSeed(seed uint64) GenerateOption {
	return options.NoError(func(cfg *GenerateConfig) {
		cfg.Seed = seed
		cfg.Seeded = true
	})
}

// WithTruth sets the model the trials scatter around. The default is y = x.
func WithTruth(m model.Model, args []float64) GenerateOption {
	return options.New(func(cfg *GenerateConfig) error {
		if m == nil || len(args) != m.NumParams() {
			return fmt.Errorf("%w: truth model needs %d parameters", errs.ErrInvalidParameters, paramCount(m))
		}
		cfg.Truth = m
		cfg.TruthArgs = append([]float64(nil), args...)

		return nil
	})
}

// Generate draws trials normally distributed around the true value at each
// setting x[i], producing a len(x)×trials Table.
func Generate(x []float64, trials int, opts ...GenerateOption) (Table, error) {
	if len(x) == 0 {
		return Table{}, fmt.Errorf("%w: no settings", errs.ErrEmptyInput)
	}
	if trials < 1 {
		return Table{}, fmt.Errorf("%w: trials must be positive, got %d", errs.ErrInvalidOption, trials)
	}

	cfg := defaultGenerateConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Table{}, err
	}

	truth, err := model.Evaluate(cfg.Truth, x, cfg.TruthArgs)
	if err != nil {
		return Table{}, err
	}

	seed := cfg.Seed
	if !cfg.Seeded {
		seed = rand.Uint64()
	}
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)

	rows := make([][]float64, len(x))
	for i, mu := range truth {
		dist := distuv.Normal{Mu: mu, Sigma: cfg.Noise, Src: src}
		row := make([]float64, trials)
		for j := range row {
			row[j] = dist.Rand()
		}
		rows[i] = row
	}

	return NewTable(rows)
}

func paramCount(m model.Model) int {
	if m == nil {
		return 0
	}

	return m.NumParams()
}
