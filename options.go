package solver

import "github.com/inconshreveable/log15"

// Option configures an app wrapper (Counter, Token).
type Option func(*config)

// config holds shared app configuration.
type config struct {
	log    log15.Logger
	schema *Schema
}

// defaultConfig returns the default configuration: logging discarded,
// schema as declared by the app.
func defaultConfig(schema *Schema) *config {
	logger := log15.New("module", "solver")
	logger.SetHandler(log15.DiscardHandler())
	return &config{
		log:    logger,
		schema: schema,
	}
}

// WithLogger routes the app's debug records to l.
// By default all logging is discarded.
func WithLogger(l log15.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

// WithSchema overrides the app's storage schema. The schema must match the
// layout the deployed contract was compiled with; a mismatch silently
// targets the wrong slots.
func WithSchema(s *Schema) Option {
	return func(c *config) {
		c.schema = s
	}
}
