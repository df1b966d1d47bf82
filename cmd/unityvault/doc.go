// Command unityvault is an interactive single-use token session.
//
// A token is a unit vector (cos θ, sin θ) drawn from a random angle. Content
// is accepted into the in-memory vault only while the active token passes
// the unity check, and the token is burned by the commit that uses it.
//
// Usage:
//
//	unityvault                     # interactive session
//	unityvault demo --content "launch codes"
//	unityvault --output yaml config show
package main
