// Package sumoxml renders ring geometry and loop routes as the plain XML
// inputs understood by SUMO: a node file, an edge file for netconvert and an
// additional file with routes and rerouters for the simulation itself.
//
// Rendering returns etree documents and never touches the file system;
// WriteFile persists a document.
package sumoxml
