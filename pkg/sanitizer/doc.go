// Package sanitizer normalizes form input before validation: recursive
// pruning of nested parameter maps (CleanParams), small pure string
// transforms composable via Apply and Compose, and per-field pipelines over
// a parameter map (NormalizeFields). All functions are side-effect free;
// inputs are never mutated.
package sanitizer
