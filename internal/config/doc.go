// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for reading it from files.
//
// Every field of the model is optional: a nil value means "not set by this
// source", so sources can be layered over the built-in defaults in order.
// Concrete loaders, such as for HCL, are provided in separate packages.
package config
