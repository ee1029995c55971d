// Package inspire asks a text model for a short typewriter aphorism.
//
// Service.Inspire never fails: a missing backend, a transport error or an
// empty reply all produce a fixed placeholder that is typed onto the page
// like any other inspiration.
package inspire
