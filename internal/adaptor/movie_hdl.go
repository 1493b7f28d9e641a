package adaptor

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"movies-api/internal/dto/request"
	"movies-api/internal/dto/response"
	"movies-api/internal/usecase"
	"movies-api/pkg/pagination"
	"movies-api/pkg/utils"
)

type MovieHandler struct {
	service usecase.MovieService
	policy  pagination.Policy
	debug   bool
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, policy pagination.Policy, debug bool, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		policy:  policy,
		debug:   debug,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies godoc
// @Summary      List movies
// @Description  Offset-paginated movie listing. Invalid page or limit values fall back to defaults.
// @Tags         Movies
// @Produce      json
// @Param        page   query  int     false  "Page number"      default(1)
// @Param        limit  query  int     false  "Items per page"   default(10)
// @Param        sort   query  string  false  "Sort keys, '-' prefix for descending"  default(-createdAt)
// @Param        type   query  string  false  "Exact content type"
// @Param        genre  query  string  false  "Genre title, case-insensitive"
// @Param        year   query  int     false  "Release year"
// @Param        title  query  string  false  "Title substring, case-insensitive"
// @Success      200  {object}  response.MovieListResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /api/movies [get]
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := request.ParseMovieListQuery(r.URL.Query(), h.policy)

	result, err := h.service.GetMovies(r.Context(), query)
	if err != nil {
		handleServiceError(w, h.log, h.debug, err, "retrieve movies")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.NewPageResponse(result))
}

// GetMovieByID godoc
// @Summary      Get a movie
// @Tags         Movies
// @Produce      json
// @Param        id   path      string  true  "Movie ID (24 hex characters)"
// @Success      200  {object}  response.MovieResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /api/movies/{id} [get]
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovieByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, h.debug, err, "retrieve movie")
		return
	}

	utils.ResponseSuccess(w, "", movie)
}

// CreateMovie godoc
// @Summary      Create a movie
// @Tags         Movies
// @Accept       json
// @Produce      json
// @Param        movie  body      request.MovieRequest  true  "Movie document"
// @Success      201    {object}  response.MovieResponse
// @Failure      400    {object}  response.ErrorResponse
// @Failure      500    {object}  response.ErrorResponse
// @Router       /api/movies [post]
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, h.debug, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// UpdateMovie godoc
// @Summary      Update a movie
// @Description  Partial update: fields absent from the body are left unchanged.
// @Tags         Movies
// @Accept       json
// @Produce      json
// @Param        id     path      string                      true  "Movie ID"
// @Param        movie  body      request.MovieUpdateRequest  true  "Fields to change"
// @Success      200    {object}  response.MovieResponse
// @Failure      400    {object}  response.ErrorResponse
// @Failure      404    {object}  response.ErrorResponse
// @Failure      500    {object}  response.ErrorResponse
// @Router       /api/movies/{id} [put]
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, h.debug, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movie)
}

// DeleteMovie godoc
// @Summary      Delete a movie
// @Description  Returns the deleted document.
// @Tags         Movies
// @Produce      json
// @Param        id   path      string  true  "Movie ID"
// @Success      200  {object}  response.MovieResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /api/movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.DeleteMovie(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, h.debug, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted successfully", movie)
}
