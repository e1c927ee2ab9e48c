package driver

// options holds Session configuration assembled from Option values.
type options struct {
	maxRefinements int // 0 means unbounded
}

// Option configures a Session at construction time.
type Option func(*options)

// WithMaxRefinements bounds the number of refinement iterations Verify
// will attempt before giving up with ErrResourceExhausted. 0 (the
// default) means unbounded, modeled after `machine-check-exec-prepare`'s
// execution-settings knob.
func WithMaxRefinements(n int) Option {
	return func(o *options) { o.maxRefinements = n }
}
