// Package carriage derives where the caret sits on the page: the line, the
// visual column, and how far the carriage must slide so the caret stays
// under the fixed type guide.
//
// Everything here is a pure function of the active text, the cursor and the
// in-progress composition; nothing is cached between renders.
package carriage
