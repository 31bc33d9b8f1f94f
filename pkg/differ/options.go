package differ

// Option is a functional option for configuring Differ
type Option func(*differ)

// WithIgnoredFields sets additional fields to skip during comparison,
// on top of the dataset's protected fields.
func WithIgnoredFields(fields ...string) Option {
	return func(d *differ) {
		for _, field := range fields {
			d.ignoreFields[field] = true
		}
	}
}
