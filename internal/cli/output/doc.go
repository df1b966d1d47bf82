// Package output renders CLI results as table, JSON or YAML.
//
// The table formatter is reflection based: a struct becomes a FIELD/VALUE
// table, a slice of structs becomes one row per element with headers taken
// from json tags. Fields tagged `table:"-"` are skipped.
package output
