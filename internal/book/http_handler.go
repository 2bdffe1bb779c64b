package book

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"bookshelf/internal/httpx"
)

const (
	msgCreated          = "Book added successfully"
	msgCreateNoName     = "Failed to add book. Please provide the book name"
	msgCreateReadPage   = "Failed to add book. readPage must not be greater than pageCount"
	msgCreateFailed     = "Failed to add book"
	msgNotFound         = "Book not found"
	msgUpdated          = "Book updated successfully"
	msgUpdateNoName     = "Failed to update book. Please provide the book name"
	msgUpdateReadPage   = "Failed to update book. readPage must not be greater than pageCount"
	msgUpdateNotFound   = "Failed to update book. Id not found"
	msgDeleted          = "Book deleted successfully"
	msgDeleteNotFound   = "Failed to delete book. Id not found"
	msgInvalidPayload   = "Invalid request payload"
	msgPayloadTooLarge  = "Request body too large"
	msgInternal         = "An internal error occurred"
	msgResourceNotFound = "Resource not found"
	msgMethodNotAllowed = "Method not allowed"
)

// HTTPHandler exposes the book Service over HTTP.
type HTTPHandler struct {
	service *Service
}

// NewHTTPHandler returns a handler backed by service.
func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Routes registers the catalog endpoints on mux.
func (h *HTTPHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("GET /books/{bookId}", h.Get)
	mux.HandleFunc("PUT /books/{bookId}", h.Update)
	mux.HandleFunc("DELETE /books/{bookId}", h.Delete)

	// method-less patterns lose to the ones above, so they only see the
	// methods a known path does not serve
	mux.HandleFunc("/{$}", methodNotAllowed(http.MethodGet))
	mux.HandleFunc("/books", methodNotAllowed(http.MethodGet, http.MethodPost))
	mux.HandleFunc("/books/{bookId}", methodNotAllowed(http.MethodGet, http.MethodPut, http.MethodDelete))
	mux.HandleFunc("/", h.NotFound)
}

// Home handles GET /
func (h *HTTPHandler) Home(w http.ResponseWriter, r *http.Request) {
	httpx.Text(w, http.StatusOK, "Homepage")
}

// NotFound answers every unmatched route.
func (h *HTTPHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	httpx.JSONFail(w, http.StatusNotFound, msgResourceNotFound)
}

func methodNotAllowed(allowed ...string) http.HandlerFunc {
	allow := strings.Join(allowed, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		httpx.JSONFail(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	}
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	id, err := h.service.Create(r.Context(), in)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			httpx.JSONFail(w, http.StatusBadRequest, validationMessage(verr, msgCreateNoName, msgCreateReadPage))
		default:
			slog.Error("create book", "request_id", httpx.RequestIDFrom(r), "err", err)
			httpx.JSONFail(w, http.StatusInternalServerError, msgCreateFailed)
		}
		return
	}

	httpx.JSONSuccess(w, http.StatusCreated, msgCreated, map[string]any{
		"bookId": id,
	})
}

// List handles GET /books
//
// Flag parameters use the "1" convention: "1" filters for true, any other
// non-empty value filters for false, and an absent or empty value disables the filter.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	q := Query{
		Name:     query.Get("name"),
		Reading:  parseFlag(query.Get("reading")),
		Finished: parseFlag(query.Get("finished")),
	}

	books, err := h.service.List(r.Context(), q)
	if err != nil {
		slog.Error("list books", "request_id", httpx.RequestIDFrom(r), "err", err)
		httpx.JSONFail(w, http.StatusInternalServerError, msgInternal)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, "", map[string]any{
		"books": books,
	})
}

// Get handles GET /books/{bookId}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Get(r.Context(), r.PathValue("bookId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONFail(w, http.StatusNotFound, msgNotFound)
			return
		}
		slog.Error("get book", "request_id", httpx.RequestIDFrom(r), "err", err)
		httpx.JSONFail(w, http.StatusInternalServerError, msgInternal)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, "", map[string]any{
		"book": b,
	})
}

// Update handles PUT /books/{bookId}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	b, err := h.service.Update(r.Context(), r.PathValue("bookId"), in)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			httpx.JSONFail(w, http.StatusBadRequest, validationMessage(verr, msgUpdateNoName, msgUpdateReadPage))
		case errors.Is(err, ErrNotFound):
			httpx.JSONFail(w, http.StatusNotFound, msgUpdateNotFound)
		default:
			slog.Error("update book", "request_id", httpx.RequestIDFrom(r), "err", err)
			httpx.JSONFail(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, msgUpdated, map[string]any{
		"book": b,
	})
}

// Delete handles DELETE /books/{bookId}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("bookId")); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONFail(w, http.StatusNotFound, msgDeleteNotFound)
			return
		}
		slog.Error("delete book", "request_id", httpx.RequestIDFrom(r), "err", err)
		httpx.JSONFail(w, http.StatusInternalServerError, msgInternal)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, msgDeleted, nil)
}

func decodeInput(w http.ResponseWriter, r *http.Request) (Input, bool) {
	var in Input
	if err := httpx.DecodeJSON(r, &in); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.JSONFail(w, http.StatusRequestEntityTooLarge, msgPayloadTooLarge)
			return Input{}, false
		}
		httpx.JSONFail(w, http.StatusBadRequest, msgInvalidPayload)
		return Input{}, false
	}
	return in, true
}

func validationMessage(verr *ValidationError, noName, readPage string) string {
	if verr.Reason == ReasonReadPageExceeds {
		return readPage
	}
	return noName
}

func parseFlag(v string) *bool {
	if v == "" {
		return nil
	}
	b := v == "1"
	return &b
}
