// Package httpx agrupa los helpers HTTP que antes estaban duplicados en cada módulo
// (writeJSON). Con seis módulos usando lo mismo, ya conviene tenerlos en un solo lugar.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/logger"
)

// Códigos de error estables para clientes (la UI los usa para decidir mensajes).
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternal           = "INTERNAL_ERROR"
)

// ErrorBody es el cuerpo JSON de cualquier respuesta de error.
type ErrorBody struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// MessageBody se usa en respuestas sin entidad (logout, delete).
type MessageBody struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, MessageBody{Message: msg})
}

func WriteErrorCode(w http.ResponseWriter, status int, code, msg string) {
	WriteJSON(w, status, ErrorBody{Message: msg, Code: code})
}

// WriteError traduce un error de dominio a status + cuerpo JSON.
// Los errores desconocidos se loguean y salen como 500 genérico (sin detalle interno).
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		WriteJSON(w, http.StatusBadRequest, ErrorBody{
			Message: "validation failed",
			Code:    CodeValidation,
			Errors:  ve.Fields,
		})
	case errors.Is(err, apperr.ErrInvalidInput):
		WriteErrorCode(w, http.StatusBadRequest, CodeValidation, err.Error())
	case errors.Is(err, apperr.ErrInvalidCredentials):
		WriteErrorCode(w, http.StatusUnauthorized, CodeInvalidCredentials, "invalid username or password")
	case errors.Is(err, apperr.ErrUnauthenticated):
		WriteErrorCode(w, http.StatusUnauthorized, CodeUnauthorized, "authentication required")
	case errors.Is(err, apperr.ErrForbidden):
		WriteErrorCode(w, http.StatusForbidden, CodeForbidden, "admin role required")
	case errors.Is(err, apperr.ErrNotFound):
		WriteErrorCode(w, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		WriteErrorCode(w, http.StatusConflict, CodeConflict, err.Error())
	default:
		logger.FromContext(r.Context()).Error("request failed", map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
			"error":  err.Error(),
		})
		WriteErrorCode(w, http.StatusInternalServerError, CodeInternal, "internal error")
	}
}

// DecodeJSON decodifica el body rechazando campos desconocidos.
// Devuelve un error que ya envuelve apperr.ErrInvalidInput.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errInvalidJSON
	}
	return nil
}

var errInvalidJSON = wrapInvalid("invalid json")

func wrapInvalid(msg string) error {
	return &invalidInput{msg: msg}
}

type invalidInput struct{ msg string }

func (e *invalidInput) Error() string        { return e.msg }
func (e *invalidInput) Is(target error) bool { return target == apperr.ErrInvalidInput }
