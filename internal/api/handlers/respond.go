// Package handlers содержит общие помощники HTTP слоя: декодирование
// запросов и формирование ответов.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationErrorResponse тело ответа 422 с нарушениями по полям
type ValidationErrorResponse struct {
	Detail interface{} `json:"detail"`
}

// DecodeJSON декодирует тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("empty request body")
	}
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// RespondJSON пишет v в тело ответа со статусом status
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// RespondError пишет ошибку со статусом status
func RespondError(w http.ResponseWriter, status int, detail string) {
	RespondJSON(w, status, ErrorResponse{Detail: detail})
}

// RespondBadRequest пишет 400
func RespondBadRequest(w http.ResponseWriter, detail string) {
	RespondError(w, http.StatusBadRequest, detail)
}

// RespondNotFound пишет 404
func RespondNotFound(w http.ResponseWriter, detail string) {
	RespondError(w, http.StatusNotFound, detail)
}

// RespondConflict пишет 409
func RespondConflict(w http.ResponseWriter, detail string) {
	RespondError(w, http.StatusConflict, detail)
}

// RespondValidationErrors пишет 422 со всеми нарушениями по полям
func RespondValidationErrors(w http.ResponseWriter, violations interface{}) {
	RespondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: violations})
}

// RespondInternalError пишет 500 без внутренних деталей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "Internal server error")
}
