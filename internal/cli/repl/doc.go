// Package repl implements the interactive unityvault session.
//
// Each line is a verb with an optional argument. The REPL owns no state of
// its own beyond history; every verb calls into a service.Session.
//
//	unityvault> generate
//	unityvault> write launch codes
//	unityvault> burn
package repl
