package wordlist

// DefaultMaxAttempts bounds the retries spent looking for one new value.
const DefaultMaxAttempts = 50

// SampleOptions tunes SampleUnique.
type SampleOptions struct {
	// MaxAttempts is the retry budget per slot. Zero means DefaultMaxAttempts.
	MaxAttempts int
	// AllowDuplicates calls the producer exactly n times.
	AllowDuplicates bool
}

// SampleUnique calls produce until it has n distinct values, returned in
// the order first seen. When a slot cannot be filled within MaxAttempts
// calls, sampling stops and the shorter result is returned without error.
// Producer errors abort sampling.
func SampleUnique[T comparable](produce func() (T, error), n int, opts SampleOptions) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	out := make([]T, 0, n)
	if opts.AllowDuplicates {
		for i := 0; i < n; i++ {
			v, err := produce()
			if err != nil {
				return out, err
			}
			out = append(out, v)
		}
		return out, nil
	}

	attempts := opts.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	seen := make(map[T]struct{}, n)
	for i := 0; i < n; i++ {
		added := false
		for j := 0; j < attempts; j++ {
			v, err := produce()
			if err != nil {
				return out, err
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
			added = true
			break
		}
		if !added {
			break
		}
	}
	return out, nil
}
