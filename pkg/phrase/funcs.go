package phrase

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/bastiangx/randomname/pkg/wordlist"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// randReader adapts a wordlist.Rand to io.Reader so identifiers follow
// the shared seed.
type randReader struct {
	r *wordlist.Rand
}

func (rr randReader) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(buf[:], rr.r.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}

// truncate cuts s to the length given as the first argument, if any.
func truncate(s string, args []string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return s, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return "", fmt.Errorf("%w: length %q", wordlist.ErrInvalidValue, args[0])
	}
	if n < len(s) {
		s = s[:n]
	}
	return s, nil
}

// Funcs returns the builtin generators keyed by category name:
//
//	uuid[/n]      random UUID, or its first n hex digits
//	ulid[/n]      lowercase ULID, or its last n characters
//	hex[/n]       n random hex digits (default 8)
//	number[/a[/b]] integer in [0, a) or [a, b] (default [0, 100))
//
// Every generator draws from r, so reseeding repeats its output. The one
// exception is the timestamp in the first 10 characters of a ulid, which
// is the current time; its last 16 characters follow the seed.
func Funcs(r *wordlist.Rand) map[string]wordlist.Generator {
	if r == nil {
		r = wordlist.Shared()
	}
	src := randReader{r: r}
	return map[string]wordlist.Generator{
		"uuid": func(args ...string) (string, error) {
			id, err := uuid.NewRandomFromReader(src)
			if err != nil {
				return "", fmt.Errorf("failed to generate uuid: %w", err)
			}
			if len(args) == 0 {
				return id.String(), nil
			}
			return truncate(strings.ReplaceAll(id.String(), "-", ""), args)
		},
		"ulid": func(args ...string) (string, error) {
			id, err := ulid.New(ulid.Now(), src)
			if err != nil {
				return "", fmt.Errorf("failed to generate ulid: %w", err)
			}
			s := strings.ToLower(id.String())
			if len(args) == 0 {
				return s, nil
			}
			tail, err := truncate(reverse(s), args)
			return reverse(tail), err
		},
		"hex": func(args ...string) (string, error) {
			n := 8
			if len(args) > 0 && args[0] != "" {
				v, err := strconv.Atoi(args[0])
				if err != nil || v <= 0 {
					return "", fmt.Errorf("%w: length %q", wordlist.ErrInvalidValue, args[0])
				}
				n = v
			}
			var b strings.Builder
			for b.Len() < n {
				fmt.Fprintf(&b, "%016x", r.Uint64())
			}
			return b.String()[:n], nil
		},
		"number": func(args ...string) (string, error) {
			lo, hi := 0, 100
			bounds := make([]int, 0, 2)
			for _, a := range args[:min(len(args), 2)] {
				v, err := strconv.Atoi(a)
				if err != nil {
					return "", fmt.Errorf("%w: bound %q", wordlist.ErrInvalidValue, a)
				}
				bounds = append(bounds, v)
			}
			switch len(bounds) {
			case 1:
				hi = bounds[0]
			case 2:
				lo, hi = bounds[0], bounds[1]+1
			}
			if hi <= lo {
				return "", fmt.Errorf("%w: empty range [%d, %d)", wordlist.ErrInvalidValue, lo, hi)
			}
			return strconv.Itoa(lo + r.IntN(hi-lo)), nil
		},
	}
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
