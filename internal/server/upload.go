package server

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/scholarfolio/scholarfolio/internal/docpath"
)

const maxUploadBytes = 8 << 20

// handleUpload accepts a multipart upload and stores it inline on the
// addressed item as a data URI, so exports stay self-contained. The
// default kind "image" writes the URI to the item's image and clears
// its icon in the same history entry; kind "file" attaches the URI as
// a downloadable file link instead and accepts any content type.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	target := r.FormValue("path")
	if target == "" {
		http.Error(w, "missing path", http.StatusBadRequest)
		return
	}
	kind := r.FormValue("kind")
	if kind == "" {
		kind = "image"
	}
	if kind != "image" && kind != "file" {
		http.Error(w, "unknown kind: "+kind, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		http.Error(w, "read file: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(data) > maxUploadBytes {
		http.Error(w, "file too large", http.StatusRequestEntityTooLarge)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if kind == "image" && !strings.HasPrefix(contentType, "image/") {
		http.Error(w, "not an image: "+contentType, http.StatusBadRequest)
		return
	}

	uri := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	updates := []docpath.Update{
		{Path: docpath.Parse(target + ".image"), Value: uri},
		{Path: docpath.Parse(target + ".icon"), Value: ""},
	}
	if kind == "file" {
		updates = []docpath.Update{
			{Path: docpath.Parse(target + ".url"), Value: uri},
			{Path: docpath.Parse(target + ".linkType"), Value: "file"},
		}
	}
	applied := s.sess.UpdateMany(updates)
	if applied == 0 {
		http.Error(w, "path did not resolve: "+target, http.StatusBadRequest)
		return
	}
	s.writeRenderJSON(w)
}
