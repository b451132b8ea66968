package fetch

// Package fetch implements the HTTP transport for page loads: a single GET
// per request with browser-like headers, a capped body read, and context
// driven deadlines. Decoding and parsing live elsewhere; this package only
// moves bytes.
