package ordered

const defaultLabel = "default"

// Option is a functional option for Sort and Naive.
type Option func(*options)

type options struct {
	descending bool
	label      string
}

func newOptions(opts []Option) options {
	o := options{label: defaultLabel}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Descending reverses the order: both the key and the fallback comparison
// are wrapped in compare.Reverse. Items that compare equal still keep their
// input order.
func Descending() Option {
	return func(o *options) {
		o.descending = true
	}
}

// WithLabel sets the collection label reported in metrics. Empty labels are ignored.
func WithLabel(label string) Option {
	return func(o *options) {
		if label != "" {
			o.label = label
		}
	}
}
