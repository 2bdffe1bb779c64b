package httpx

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// Envelope is the body shape of every JSON response.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "err", err)
	}
}

// JSONSuccess writes a success envelope. message and data are omitted when empty.
func JSONSuccess(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// JSONFail writes a fail envelope.
func JSONFail(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, Envelope{
		Status:  StatusFail,
		Message: message,
	})
}

// Text writes a plain text body.
func Text(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = io.WriteString(w, body)
}

// ErrEmptyBody is returned by DecodeJSON when the body holds no JSON value.
var ErrEmptyBody = errors.New("empty request body")

// DecodeJSON reads the whole body into v. The body must hold exactly one JSON
// value; anything but whitespace after it is an error.
func DecodeJSON(r *http.Request, v interface{}) error {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyBody
	}
	return json.Unmarshal(data, v)
}
