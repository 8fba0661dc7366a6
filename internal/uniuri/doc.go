// Package uniuri generates cryptographically secure random strings suitable
// for use as unique identifiers. The web service uses it to assign request
// ids surfaced in the access log and the X-Request-ID response header.
package uniuri
