package engine

// ============================================================================
// ENGINE OPTIONS — Functional options for BuildReport()
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	SampleCap   int   // max geographic points per report
	SampleSeed  int64 // fixed seed for reproducible sampling
	DefaultTopN int   // top-N for categorical bar charts
	CompareTopN int   // top-N for the comparison chart
}

// WithSampleCap sets the maximum number of geographic sample points.
func WithSampleCap(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.SampleCap = n
		}
	}
}

// WithSampleSeed overrides the sampling seed. The default seed is fixed so
// identical filters yield identical samples.
func WithSampleSeed(seed int64) Option {
	return func(c *config) { c.SampleSeed = seed }
}

// WithTopN sets the default top-N for categorical bar charts. The floor
// is 5.
func WithTopN(n int) Option {
	return func(c *config) {
		if n >= 5 {
			c.DefaultTopN = n
		}
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		SampleCap:   5000,
		SampleSeed:  42,
		DefaultTopN: 10,
		CompareTopN: 15,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
