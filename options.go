package dynbitset

type options struct {
	capacity uint
}

// Option configures BitVector construction.
type Option func(*options)

// WithCapacity preallocates backing storage for at least bits bits.
//
// It does not change the logical length. Use it when the vector is expected
// to grow through PushBack or ShiftLeft.
func WithCapacity(bits uint) Option {
	return func(o *options) {
		o.capacity = bits
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
