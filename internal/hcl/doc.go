// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It parses ring parameter files, evaluates their expressions
// against a small cty context and translates the result into the
// format-agnostic config model.
package hcl
