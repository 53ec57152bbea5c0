// Package transform provides small string normalizers for optional record
// fields. These utilities are commonly used inside [ruleset.Normalizer]
// implementations.
package transform
