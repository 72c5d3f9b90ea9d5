package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"hotel_detail/internal/domain"
)

const maxBody = 5 << 20

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// envelope is the JSON shape shared by the /api routes.
type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeFail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{"success": false, "error": msg})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeHTML(w http.ResponseWriter, status int, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(html)); err != nil {
		log.Error().Err(err).Msg("write HTML response failed")
	}
}

// writeError maps service errors onto the envelope. notFound is the message
// used for a missing row of the resource being handled.
func writeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeFail(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, domain.ErrHotelNotFound):
		writeFail(w, http.StatusNotFound, "존재하지 않는 호텔입니다.")
	case errors.Is(err, domain.ErrNotFound):
		writeFail(w, http.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrMockData):
		writeFail(w, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Error().Err(err).Str("route", routeOf(r)).Msg("request failed")
		writeFail(w, http.StatusInternalServerError, "요청 처리 중 오류가 발생했습니다.")
	}
}

// decodeObject reads a JSON object body. On failure it has already answered 400.
func decodeObject(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var m map[string]any
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&m); err != nil || m == nil {
		writeFail(w, http.StatusBadRequest, "잘못된 JSON 형식입니다.")
		return nil, false
	}
	return m, true
}

// calcETag hashes a response body into a weak validator.
func calcETag(body []byte) string {
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`
}

// notModified sets the ETag and reports whether the client copy is current.
func notModified(w http.ResponseWriter, r *http.Request, etag string) bool {
	w.Header().Set("ETag", etag)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}
