// Package version compares dotted numeric version strings.
package version

import (
	"strconv"
	"strings"

	"github.com/thoreinstein/mcphub/internal/errors"
)

// ErrMalformed indicates a version string has a component that is not a
// non-negative integer.
var ErrMalformed = errors.New("malformed version")

// Ordering is the result of comparing two versions.
type Ordering int

// Orderings.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "equal"
	}
}

// Version is a parsed dotted numeric version.
type Version []int

// Parse splits s on "." and parses each component as a decimal integer.
// A single leading "v" is accepted. Empty, signed or non-numeric components,
// including pre-release suffixes such as "1.0.0-beta", are rejected.
func Parse(s string) (Version, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "v")
	if trimmed == "" {
		return nil, errors.Wrapf(ErrMalformed, "%q", s)
	}

	parts := strings.Split(trimmed, ".")
	v := make(Version, len(parts))
	for i, p := range parts {
		// Atoi alone would accept signed forms such as "+2" and "-0".
		n, err := strconv.Atoi(p)
		if err != nil || strings.TrimLeft(p, "0123456789") != "" {
			return nil, errors.Wrapf(ErrMalformed, "%q: component %d is %q", s, i+1, p)
		}
		v[i] = n
	}
	return v, nil
}

// Compare orders v against other. Missing trailing components count as 0,
// so 1.0 equals 1.0.0.
func (v Version) Compare(other Version) Ordering {
	n := max(len(v), len(other))
	for i := range n {
		a, b := v.at(i), other.at(i)
		if a > b {
			return Greater
		}
		if a < b {
			return Less
		}
	}
	return Equal
}

func (v Version) at(i int) int {
	if i < len(v) {
		return v[i]
	}
	return 0
}

// String renders v in dotted form.
func (v Version) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// Compare parses a and b and orders a against b.
func Compare(a, b string) (Ordering, error) {
	va, err := Parse(a)
	if err != nil {
		return Equal, err
	}
	vb, err := Parse(b)
	if err != nil {
		return Equal, err
	}
	return va.Compare(vb), nil
}
