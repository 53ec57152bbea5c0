package ruleset

import (
	"context"
)

// Normalizer is implemented by records that clean themselves up after
// decoding, for example trimming or lower-casing fields and applying defaults.
// Called by DecodeAndValidate before validation.
type Normalizer interface {
	Normalize()
}

// ContextNormalizer is like Normalizer but receives a context.
type ContextNormalizer interface {
	Normalize(context.Context)
}

// normalize calls Normalize on dst, or on the value dst points to when only
// that implements it.
func normalize[T any](ctx context.Context, dst *T) {
	if callNormalize(ctx, dst) {
		return
	}
	callNormalize(ctx, *dst)
}

func callNormalize(ctx context.Context, v any) bool {
	if v == nil {
		return false
	}
	if n, ok := v.(ContextNormalizer); ok {
		n.Normalize(ctx)
		return true
	}
	if n, ok := v.(Normalizer); ok {
		n.Normalize()
		return true
	}
	return false
}
