package rebin

type config struct {
	workers  int
	observer Observer
	regime   Regime
}

// Option configures a rebin call.
type Option func(*config)

// WithWorkers spreads independent output bins over n goroutines.
// Values below 1 are ignored; the default is 1 (synchronous).
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// WithObserver installs a progress observer. With more than one worker the
// observer is called concurrently.
func WithObserver(o Observer) Option {
	return func(cfg *config) {
		cfg.observer = o
	}
}

// WithRegime forces the interpolation or box regime for [Rebin1D] and
// [RebinCubeAxis0]. [RegimeAuto] restores the spacing-based choice.
func WithRegime(r Regime) Option {
	return func(cfg *config) {
		if r >= RegimeAuto && r <= RegimeBox {
			cfg.regime = r
		}
	}
}

func defaultConfig() config {
	return config{
		workers: 1,
		regime:  RegimeAuto,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
