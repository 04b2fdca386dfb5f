package pi

// prepareSeries resolves options and validates a truncation index shared by
// the integer-parameter methods. Negative k passes only with AllowDegenerate,
// in which case the loops below run zero times.
func prepareSeries(m Method, k int, opts *Options) (Options, error) {
	o, err := resolve(opts)
	if err != nil {
		return o, methodErrorf(m, k, err)
	}
	if k < 0 && !o.AllowDegenerate {
		return o, methodErrorf(m, k, ErrInvalidParameter)
	}

	return o, nil
}
