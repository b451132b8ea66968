package platform

// Package platform contains OS and encoding integration glue: character set
// resolution for response bodies and handing links off to the system default
// browser.
