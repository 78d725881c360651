package http

import (
	"bytes"
	"crypto/hmac"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/MKhiriev/health-vault/internal/app"
	"github.com/MKhiriev/health-vault/internal/utils"
)

// bookingHashing checks the HashSHA256 header against the HMAC-SHA256 of the
// raw body. Without a configured key every request passes. The body is
// restored for the next handler.
func (h *Handler) bookingHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		h.logger.Debug().Str("func", "*Handler.bookingHashing").Msg("checking hash begins")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.bookingHashing").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		received, err := hex.DecodeString(r.Header.Get(utils.HashHeader))
		expected := utils.Hash(body)
		if err != nil || !hmac.Equal(received, expected) {
			h.logger.Error().Str("func", "*Handler.bookingHashing").
				Str("hash from request", r.Header.Get(utils.HashHeader)).
				Str("hashed body", hex.EncodeToString(expected)).
				Msg("hashes are not equal")
			http.Error(w, app.MsgInvalidHash, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
