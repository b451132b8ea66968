package platform

import (
	"mime"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

// Charset detection constants
const (
	// MetaSniffLimit is how many leading body bytes are scanned for an
	// in-document charset hint when the header declares none.
	MetaSniffLimit = 2048

	CharsetUTF8 = "utf-8"
)

// ResolveCharset returns the charset label governing a response body:
// the Content-Type parameter when present, otherwise a hint sniffed from the
// first bytes of the body, otherwise "".
func ResolveCharset(contentType string, body []byte) string {
	if label := headerCharset(contentType); label != "" {
		return label
	}
	return metaCharset(body)
}

// DecodeText converts raw response bytes to a UTF-8 string. Unknown or
// missing charset labels, and decoder failures, fall back to treating the
// bytes as UTF-8.
func DecodeText(body []byte, contentType string) string {
	label := ResolveCharset(contentType, body)
	if label == "" || strings.EqualFold(label, CharsetUTF8) {
		return string(body)
	}

	enc := lookupEncoding(label)
	if enc == nil {
		return string(body)
	}

	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return string(body)
	}
	return string(decoded)
}

// lookupEncoding maps a charset label to a decoder, nil if unknown.
func lookupEncoding(label string) encoding.Encoding {
	enc, name := charset.Lookup(label)
	if enc == nil || name == CharsetUTF8 {
		// UTF-8 needs no transformation
		return nil
	}
	return enc
}

// headerCharset extracts the charset parameter from a Content-Type header.
func headerCharset(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(params["charset"])
}

// metaCharset scans the leading body bytes for a charset= hint, covering
// both <meta charset="..."> and http-equiv content attributes.
func metaCharset(body []byte) string {
	if len(body) > MetaSniffLimit {
		body = body[:MetaSniffLimit]
	}
	low := strings.ToLower(string(body))

	i := strings.Index(low, "charset=")
	if i == -1 {
		return ""
	}

	rest := low[i+len("charset="):]
	rest = strings.Trim(rest, `"' `)
	end := strings.IndexFunc(rest, func(r rune) bool {
		return r == '"' || r == '\'' || r == '>' || r == ';' || r == ' ' || r == '/'
	})
	if end == -1 {
		return rest
	}
	return rest[:end]
}
