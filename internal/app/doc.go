// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the ring generation pipeline: resolve
// parameters, build geometry, write the plain XML files, compile the network
// and write the additionals. It is decoupled from any specific entrypoint.
package app
