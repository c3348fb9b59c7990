// Package contact is the service facade of the contact module: a generic
// bun-backed Service and the ContactService that applies the write rules of
// contacts and runs their criteria searches.
package contact
