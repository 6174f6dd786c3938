package rdbrain

// Squad is the innovation squad: five cooperating agent roles sharing one
// generator and the retrieval adapters, driven by Run.
type Squad struct {
	options Options
}

func New(opts ...Option) *Squad {
	options := NewOptions(opts...)

	if options.Generator == nil {
		panic("generator is required")
	}

	return &Squad{
		options: options,
	}
}
