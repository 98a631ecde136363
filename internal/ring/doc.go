// Package ring resolves the raw user parameters of a circular road into a
// single validated parameter set. It owns the radius-versus-dimension rule
// and every validation check that must pass before anything is written.
package ring
