// Package debindex parses Debian style package index files ("Packages")
// into ordered records of control fields, including wrapped continuation
// lines.
package debindex
