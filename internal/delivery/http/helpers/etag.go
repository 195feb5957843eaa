package helpers

import (
	"encoding/hex"
	"net/http"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// ETag derives a strong validator from the snapshot version and the raw query string,
// so the same criteria against the same snapshot always yield the same tag.
func ETag(version string, r *http.Request) string {
	h, _ := blake2b.New(16, nil)
	h.Write([]byte(version))
	h.Write([]byte{0})
	h.Write([]byte(r.URL.Path))
	h.Write([]byte{0})
	h.Write([]byte(r.URL.Query().Encode()))
	return `"` + hex.EncodeToString(h.Sum(nil)) + `"`
}

// NotModified sets the ETag header and reports whether the request already holds it.
// When true a 304 has been written and the caller should return.
func NotModified(w http.ResponseWriter, r *http.Request, etag string) bool {
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	for _, candidate := range strings.Split(r.Header.Get("If-None-Match"), ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == etag || candidate == "*" {
			w.WriteHeader(http.StatusNotModified)
			return true
		}
	}
	return false
}
