package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"

	"github.com/couchcryptid/ascendant-service/internal/domain"
)

const maxBodyBytes = 1 << 16

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAscendant(calc Calculator, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			sharedobs.WriteJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Use POST"})
			return
		}

		q, err := decodeQuery(r)
		if err != nil {
			sharedobs.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		ctx := r.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		resp, err := calc.Compute(ctx, q)
		if err != nil {
			s.logger.Info("ascendant request rejected",
				"request_id", requestIDFrom(r.Context()),
				"kind", domain.ErrorKind(err),
				"error", err,
			)
			sharedobs.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: domain.PublicMessage(err)})
			return
		}
		sharedobs.WriteJSON(w, http.StatusOK, resp)
	}
}

// decodeQuery reads the JSON body. An empty body is treated as an empty
// object so validation reports the missing fields.
func decodeQuery(r *http.Request) (domain.BirthQuery, error) {
	var q domain.BirthQuery
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&q); err != nil && !errors.Is(err, io.EOF) {
		return domain.BirthQuery{}, errors.New("invalid JSON body")
	}
	return q, nil
}
