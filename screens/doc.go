// Package screens contains the routed pages and modal flows of the shell.
//
// Allowed here:
// - page implementations that satisfy core.Page (home, about, forms, profile, preferences)
// - modal screens that satisfy core.Screen (command palette)
// - page-specific presentation and interaction wiring
//
// Not allowed here:
// - app-wide routing tables and key registry ownership
// - low-level widget/layout primitives
package screens
