// Package variant resolves semantic style inputs into ordered style directives.
//
// Resolution runs in fixed stages:
//
//  1. Shorthand: an unset treatment or color is derived from the Kind.
//  2. Danger: a default color becomes danger when the danger flag is set.
//  3. Base directives shared by every control.
//  4. Per-axis directives (treatment, block, shape, ghost).
//  5. Combination directives keyed by (color, treatment), then by size.
//  6. Caller overrides, appended by Resolution.With.
//
// Directives for the same property override earlier ones, so the stage order
// is the precedence order. Set.Collapse performs that merge.
//
// The package is pure: it has no renderer dependency and never fails.
// Textual values are converted with the Parse functions, which return a
// configuration error for anything unrecognized.
package variant
