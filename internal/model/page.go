package model

import (
	"net/http"
	"strconv"
	"strings"
)

// ParsedLink is a single outbound link extracted from a page.
// Text falls back to Href when the anchor carried no visible text.
type ParsedLink struct {
	Href string
	Text string
}

// PageSummary holds everything the parser extracts from one page.
type PageSummary struct {
	Title string
	Links []ParsedLink
}

// FetchResponse is the raw result of one HTTP GET: undecoded body bytes plus
// the headers the decode step consults.
type FetchResponse struct {
	Body        []byte
	ContentType string
	StatusCode  int
	Status      string // full status line text, e.g. "200 OK"
}

// IsSuccess reports whether the response carries a 2xx status code.
func (r *FetchResponse) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Reason returns the reason phrase of the status line ("OK" for "200 OK").
// Falls back to the numeric code when the phrase is missing.
func (r *FetchResponse) Reason() string {
	reason := strings.TrimSpace(strings.TrimPrefix(r.Status, strconv.Itoa(r.StatusCode)))
	if reason == "" {
		return http.StatusText(r.StatusCode)
	}
	return reason
}
