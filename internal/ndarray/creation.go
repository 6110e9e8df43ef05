package ndarray

// Zeros allocates a matrix of the given dtype with every element zero. A
// one-element shape builds a 1×n row vector; a two-element shape builds
// rows×cols. Any other shape, or a negative component, is rejected with
// ErrInvalidArgument.
func Zeros(shape Shape, dtype DataType) (*Matrix, error) {
	rows, cols, err := shape.dims()
	if err != nil {
		return nil, err
	}
	return New(rows, cols, dtype)
}

// Ones is Zeros with every element set to one. The fill goes through the
// typed writer, so it is correct for every supported dtype.
func Ones(shape Shape, dtype DataType) (*Matrix, error) {
	m, err := Zeros(shape, dtype)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.buf.Len(); i++ {
		m.buf.SetAt(i, 1)
	}
	return m, nil
}

// EyeOption configures Eye.
type EyeOption func(*eyeConfig)

type eyeConfig struct {
	rows    int
	hasRows bool
	offset  int
	dtype   DataType
}

// WithRows sets the row count (default: n, a square matrix).
func WithRows(m int) EyeOption {
	return func(c *eyeConfig) { c.rows, c.hasRows = m, true }
}

// WithOffset shifts the ones diagonal by k: positive k moves it k columns to
// the right, negative k moves it |k| rows down.
func WithOffset(k int) EyeOption {
	return func(c *eyeConfig) { c.offset = k }
}

// WithDType selects the element type (default Float64).
func WithDType(dt DataType) EyeOption {
	return func(c *eyeConfig) { c.dtype = dt }
}

// Eye allocates a rows×n matrix (rows defaults to n) with ones along the
// offset diagonal and zeros elsewhere. An offset that places the whole
// diagonal outside the matrix yields an all-zero matrix, not an error.
func Eye(n int, opts ...EyeOption) (*Matrix, error) {
	cfg := eyeConfig{dtype: Float64}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasRows {
		cfg.rows = n
	}

	m, err := New(cfg.rows, n, cfg.dtype)
	if err != nil {
		return nil, err
	}
	if k := cfg.offset; k >= 0 {
		for i := 0; i+k < n && i < cfg.rows; i++ {
			m.Set(i, i+k, 1)
		}
	} else {
		for i := 0; i-k < cfg.rows && i < n; i++ {
			m.Set(i-k, i, 1)
		}
	}
	return m, nil
}
