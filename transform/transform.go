package transform

import (
	"strings"
)

// TrimSpace runs [strings.TrimSpace] on every non-nil string.
func TrimSpace(ps ...*string) {
	Apply(strings.TrimSpace, ps...)
}

// ToLower runs [strings.ToLower] on every non-nil string.
func ToLower(ps ...*string) {
	Apply(strings.ToLower, ps...)
}

// Apply replaces every non-nil string with f applied to it.
func Apply(f func(string) string, ps ...*string) {
	for _, p := range ps {
		if p != nil {
			*p = f(*p)
		}
	}
}

// Chain returns a function running fns in order.
func Chain(fns ...func(string) string) func(string) string {
	return func(s string) string {
		for _, f := range fns {
			s = f(s)
		}
		return s
	}
}

// Default sets *p to v when p is nil and returns the possibly new pointer.
func Default[T any](p *T, v T) *T {
	if p != nil {
		return p
	}
	return &v
}
