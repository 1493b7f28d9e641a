package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"movies-api/pkg/apperr"
	"movies-api/pkg/utils"
)

const maxBodyBytes = 1 << 20

// handleServiceError maps service outcomes onto status codes:
// invalid id or input is 400, a missing document 404, anything else 500.
// The cause of a 500 is only echoed to the client in debug mode.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, debug bool, err error, operation string) {
	var ve *apperr.ValidationError

	switch {
	case errors.Is(err, apperr.ErrInvalidIdentifier):
		log.Warn(operation+" failed - invalid id", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid movie ID format", nil)

	case errors.As(err, &ve):
		log.Warn(operation+" validation failed", zap.Error(err))
		if len(ve.Fields) > 0 {
			utils.ResponseBadRequest(w, ve.Message, ve.Fields)
			return
		}
		utils.ResponseBadRequest(w, ve.Message, nil)

	case errors.Is(err, apperr.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Movie not found")

	case errors.Is(err, apperr.ErrStoreUnavailable):
		log.Error(operation+" failed - store unavailable", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to "+operation, errorDetail(debug, err))

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to "+operation, errorDetail(debug, err))
	}
}

func errorDetail(debug bool, err error) any {
	if !debug {
		return nil
	}
	return err.Error()
}

// decodeJSON reads a bounded JSON body into dst and writes the 4xx itself
// when the body is unusable.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.ResponseTooLarge(w, "Request body too large")
			return false
		}
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return false
	}
	return true
}
