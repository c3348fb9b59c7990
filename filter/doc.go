// Package filter holds typed per-attribute filter descriptors and the parser
// that builds them from "<attribute>.<operator>=<value>" query strings.
package filter
