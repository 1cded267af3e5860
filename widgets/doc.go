// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (stacks, bars, popup and overlay compositor, dimming)
// - menu, drawer and action-button chrome fed with already-resolved labels
// - click-zone marking and hit testing
//
// Not allowed here:
// - key handling, app state transitions, scope logic, or routing policy
package widgets
