package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"dunkstore-backend/internal/domain"
	"dunkstore-backend/internal/usecase"
	"dunkstore-backend/pkg/logger"
	"dunkstore-backend/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// requestError carries per-field validation problems.
type requestError struct {
	message string
	details map[string]string
}

func (e *requestError) Error() string { return e.message }

// decodeJSONBody decodes a single JSON object into dest and validates it.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dest any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() {
		_, _ = io.Copy(io.Discard, r.Body)
	}()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return &requestError{message: "invalid request body", details: map[string]string{"body": err.Error()}}
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return &requestError{message: "validation failed", details: map[string]string{"body": err.Error()}}
	}
	details := map[string]string{}
	for _, fe := range errs {
		details[fe.Field()] = validationMessage(fe)
	}
	return &requestError{message: "validation failed", details: details}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	}
	return "is invalid"
}

func writeRequestError(w http.ResponseWriter, err error) {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		utils.WriteValidationError(w, reqErr.details)
		return
	}
	utils.WriteError(w, http.StatusBadRequest, err.Error())
}

// writeDomainError maps domain errors onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		utils.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrInvalidCredentials):
		utils.WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoSession):
		utils.WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrSlotUnavailable):
		logger.WithContext(r.Context()).Error().Err(err).Msg("Session storage unavailable")
		w.Header().Set("Retry-After", "1")
		utils.WriteError(w, http.StatusServiceUnavailable, "storage temporarily unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		utils.WriteError(w, http.StatusGatewayTimeout, "request timed out")
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to write.
		logger.WithContext(r.Context()).Debug().Err(err).Msg("Request cancelled")
	default:
		logger.WithContext(r.Context()).Error().Err(err).Msg("Request failed")
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

// stateResponse wraps a store snapshot. A snapshot that was applied but could
// not be persisted is still returned, flagged in the message.
func stateResponse(w http.ResponseWriter, r *http.Request, data any, persistErr error) {
	resp := domain.Response{Success: true, Data: data}
	if persistErr != nil {
		logger.WithContext(r.Context()).Warn().Err(persistErr).Msg("State applied but not persisted")
		resp.Message = "changes applied but not saved"
	}
	utils.WriteJSON(w, http.StatusOK, resp)
}

// sessionStores resolves the store bundle of the calling shopper.
func sessionStores(w http.ResponseWriter, r *http.Request, sessions *usecase.SessionUsecase) (*usecase.SessionStores, bool) {
	session, ok := r.Context().Value(domain.SessionContextKey).(*domain.Session)
	if !ok || session == nil {
		utils.WriteError(w, http.StatusUnauthorized, "no session")
		return nil, false
	}
	stores, err := sessions.Stores(r.Context(), session.ID)
	if err != nil {
		writeDomainError(w, r, err)
		return nil, false
	}
	return stores, true
}
