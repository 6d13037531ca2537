package png

// ParseOption configures Parse.
type ParseOption func(*parseOptions)

type parseOptions struct {
	strictTypes bool
}

func defaultParseOptions() *parseOptions {
	return &parseOptions{
		strictTypes: false,
	}
}

// WithStrictTypes makes Parse reject chunks whose type has the reserved bit
// set, failing with ErrReservedBit.
func WithStrictTypes() ParseOption {
	return func(o *parseOptions) {
		o.strictTypes = true
	}
}
