// Package web serves the embedded patient registry form. The page is a thin
// client of the JSON API; all validation worth trusting happens server side.
package web

import (
	_ "embed"
	"net/http"
	"patient-registry-service/internal/pkg/constvars"
)

//go:embed index.html
var indexHTML []byte

func IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
		w.WriteHeader(constvars.StatusOK)
		w.Write(indexHTML)
	}
}
