package book

import (
	"errors"
	"net/http"

	"bookstore/internal/httpx"
)

const (
	msgBookNotFound   = "Book not found"
	msgAuthorNotFound = "No books found for this author"
	msgTitleNotFound  = "No books found with this title"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// RegisterRoutes mounts the book endpoints on mux. The /books/async and
// /books/callback trees are served by the same delayed handlers.
func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("GET /books/isbn/{isbn}", h.GetByISBN)
	mux.HandleFunc("GET /books/author/{author}", h.FindByAuthor)
	mux.HandleFunc("GET /books/title/{title}", h.FindByTitle)

	mux.HandleFunc("GET /books/review/{isbn}", h.GetReview)
	mux.HandleFunc("PUT /books/review/{isbn}", h.UpdateReview)
	mux.HandleFunc("DELETE /books/review/{isbn}", h.DeleteReview)

	for _, prefix := range []string{"/books/async", "/books/callback"} {
		mux.HandleFunc("GET "+prefix, h.ListDelayed)
		mux.HandleFunc("GET "+prefix+"/{isbn}", h.GetByISBNDelayed)
		mux.HandleFunc("GET "+prefix+"/author/{author}", h.FindByAuthorDelayed)
		mux.HandleFunc("GET "+prefix+"/title/{title}", h.FindByTitleDelayed)
	}
}

// List handles GET /books
// @Summary List books
// @Description Get every book in the catalog
// @Tags books
// @Produce json
// @Success 200 {array} Book
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	writeResult(w, books, err, "")
}

// GetByISBN handles GET /books/isbn/{isbn}
// @Summary Get book by ISBN
// @Tags books
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} Book
// @Failure 404 {object} httpx.MessageResponse
// @Router /books/isbn/{isbn} [get]
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetByISBN(r.Context(), r.PathValue("isbn"))
	writeResult(w, b, err, msgBookNotFound)
}

// FindByAuthor handles GET /books/author/{author}
// @Summary Find books by author
// @Description Case-insensitive match on the full author name
// @Tags books
// @Produce json
// @Param author path string true "Author name"
// @Success 200 {array} Book
// @Failure 404 {object} httpx.MessageResponse
// @Router /books/author/{author} [get]
func (h *HTTPHandler) FindByAuthor(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.FindByAuthor(r.Context(), r.PathValue("author"))
	writeResult(w, books, err, msgAuthorNotFound)
}

// FindByTitle handles GET /books/title/{title}
// @Summary Find books by title
// @Description Case-insensitive match on the full title
// @Tags books
// @Produce json
// @Param title path string true "Book title"
// @Success 200 {array} Book
// @Failure 404 {object} httpx.MessageResponse
// @Router /books/title/{title} [get]
func (h *HTTPHandler) FindByTitle(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.FindByTitle(r.Context(), r.PathValue("title"))
	writeResult(w, books, err, msgTitleNotFound)
}

// GetReview handles GET /books/review/{isbn}
// @Summary Get a book review
// @Tags reviews
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} Review
// @Failure 404 {object} httpx.MessageResponse
// @Router /books/review/{isbn} [get]
func (h *HTTPHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.service.GetReview(r.Context(), r.PathValue("isbn"))
	writeResult(w, review, err, msgBookNotFound)
}

type updateReviewReq struct {
	Username string `json:"username"`
	Review   string `json:"review"`
}

type reviewResp struct {
	Message string `json:"message"`
	Book    Book   `json:"book"`
}

// UpdateReview handles PUT /books/review/{isbn}
// @Summary Add or replace a book review
// @Tags reviews
// @Accept json
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Param request body updateReviewReq true "Reviewer and review text"
// @Success 200 {object} reviewResp
// @Failure 400 {object} httpx.MessageResponse
// @Failure 404 {object} httpx.MessageResponse
// @Router /books/review/{isbn} [put]
func (h *HTTPHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	var req updateReviewReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	b, err := h.service.UpdateReview(r.Context(), r.PathValue("isbn"), req.Username, req.Review)
	writeResult(w, reviewResp{Message: "Review added/updated", Book: b}, err, msgBookNotFound)
}

// DeleteReview handles DELETE /books/review/{isbn}
// @Summary Delete a book review
// @Tags reviews
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} reviewResp
// @Failure 404 {object} httpx.MessageResponse
// @Router /books/review/{isbn} [delete]
func (h *HTTPHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.DeleteReview(r.Context(), r.PathValue("isbn"))
	writeResult(w, reviewResp{Message: "Review deleted", Book: b}, err, msgBookNotFound)
}

// ListDelayed handles GET /books/async and GET /books/callback
// @Summary List books after a fixed delay
// @Tags delayed
// @Produce json
// @Success 200 {array} Book
// @Router /books/async [get]
// @Router /books/callback [get]
func (h *HTTPHandler) ListDelayed(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ListDelayed(r.Context())
	writeResult(w, books, err, "")
}

// GetByISBNDelayed handles GET /books/async/{isbn} and GET /books/callback/{isbn}
func (h *HTTPHandler) GetByISBNDelayed(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetByISBNDelayed(r.Context(), r.PathValue("isbn"))
	writeResult(w, b, err, msgBookNotFound)
}

// FindByAuthorDelayed handles GET /books/async/author/{author} and GET /books/callback/author/{author}
func (h *HTTPHandler) FindByAuthorDelayed(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.FindByAuthorDelayed(r.Context(), r.PathValue("author"))
	writeResult(w, books, err, msgAuthorNotFound)
}

// FindByTitleDelayed handles GET /books/async/title/{title} and GET /books/callback/title/{title}
func (h *HTTPHandler) FindByTitleDelayed(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.FindByTitleDelayed(r.Context(), r.PathValue("title"))
	writeResult(w, books, err, msgTitleNotFound)
}

func writeResult(w http.ResponseWriter, v interface{}, err error, notFoundMessage string) {
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", notFoundMessage, nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, v)
}
