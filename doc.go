// Package main provides the entry point for the SocioShare admin service.
// It runs a web server using the Fiber framework that lets merchants of an
// embedded storefront extension configure social sharing buttons (platform
// selection, button style and size) through a REST API and an embedded
// settings page. Settings are persisted per shop in a pluggable key-value
// store backed by either one JSON file per shop or a database table.
package main
