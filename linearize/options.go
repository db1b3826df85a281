package linearize

import (
	"fmt"

	"github.com/arloliu/chifit/errs"
	"github.com/arloliu/chifit/internal/options"
)

// View identifies one of the linearized coordinate systems.
type View int

const (
	// ViewLinear keeps (x, y, dy) unchanged.
	ViewLinear View = iota
	// ViewSemilog is (x, ln y, dy/y).
	ViewSemilog
	// ViewLogLog is (ln x, ln y, dy/y).
	ViewLogLog

	numViews
)

// String returns the string representation of the view.
func (v View) String() string {
	switch v {
	case ViewLinear:
		return "linear"
	case ViewSemilog:
		return "semilog"
	case ViewLogLog:
		return "loglog"
	default:
		return "unknown"
	}
}

// Config selects the views Linearize builds.
type Config struct {
	views [numViews]bool
}

// Option configures Linearize.
type Option = options.Option[*Config]

func defaultConfig() Config {
	return Config{views: [numViews]bool{true, true, true}}
}

// WithViews restricts Linearize to the given views. Views that are not
// requested are neither validated nor built.
func WithViews(views ...View) Option {
	return options.New(func(cfg *Config) error {
		if len(views) == 0 {
			return fmt.Errorf("%w: at least one view is required", errs.ErrInvalidOption)
		}

		var sel [numViews]bool
		for _, v := range views {
			if v < 0 || v >= numViews {
				return fmt.Errorf("%w: unknown view %d", errs.ErrInvalidOption, v)
			}
			sel[v] = true
		}
		cfg.views = sel

		return nil
	})
}
