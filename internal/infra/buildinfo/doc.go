// Package buildinfo reports the unityvault version for the version command.
package buildinfo
