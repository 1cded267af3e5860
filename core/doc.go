// Package core contains the shell's contracts and state orchestration.
//
// Allowed here:
// - the root model, page routing, message contracts, command and key registries
// - the projection of shared state into components (Connect) and the action dispatcher
// - the responsive navigation controller and its state machine
//
// Not allowed here:
// - concrete page/modal rendering implementations
// - low-level widget rendering primitives
// - storage or session logic (reached only through interfaces)
package core
