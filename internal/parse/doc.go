package parse

// Package parse extracts the page title and outbound links from decoded HTML
// text using golang.org/x/net/html. It never renders anything; the output is
// a flat summary the page state stores wholesale.
