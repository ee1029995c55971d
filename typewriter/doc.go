// Package typewriter is a Bubble Tea component that renders a typewriter
// page, a carriage that slides under a fixed type guide, an on-screen
// keyboard and a wall of torn-off stickers.
//
// Key presses are applied to a surface.Surface first. The surface's change
// and composition events feed a reconcile.Reconciler, and after every event
// the surface is forced back to the reconciler's active text unless a
// composition is open. The ledger is the only source of truth for what is
// drawn on the page.
package typewriter
