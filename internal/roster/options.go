package roster

import "go.uber.org/zap"

// DefaultMajor is the major tracked by a roster unless WithMajor is given.
const DefaultMajor = "csc"

// Option is a roster configuration option.
type Option interface {
	apply(*rosterOptions)
}

type rosterOptions struct {
	major  string
	logger *zap.Logger
}

func newDefaultRosterOptions() rosterOptions {
	return rosterOptions{
		major:  DefaultMajor,
		logger: zap.NewNop(),
	}
}

// WithMajor option configures the major whose students are kept on the major view.
//
// The zero value configures DefaultMajor.
func WithMajor(major string) Option {
	return funcOption(func(opts *rosterOptions) {
		if major == "" {
			major = DefaultMajor
		}
		opts.major = truncate(major, majorWidth)
	})
}

// WithLogger option configures the roster logger.
//
// A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return funcOption(func(opts *rosterOptions) {
		if logger == nil {
			logger = zap.NewNop()
		}
		opts.logger = logger
	})
}

type funcOption func(*rosterOptions)

func (o funcOption) apply(opts *rosterOptions) {
	o(opts)
}
