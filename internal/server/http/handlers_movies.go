package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/framehq/frame-api/internal/errs"
	"github.com/framehq/frame-api/internal/model"
)

const defaultListLimit = 100

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		s.writeError(w, errs.Validation("skip", "must be an integer"))
		return
	}
	limit, err := queryInt(r, "limit", defaultListLimit)
	if err != nil {
		s.writeError(w, errs.Validation("limit", "must be an integer"))
		return
	}

	movies, err := s.movies.List(r.Context(), skip, limit, r.URL.Query().Get("genre"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, movies)
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.writeError(w, errs.Validation("id", "must be an integer"))
		return
	}
	m, err := s.movies.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleCreateMovie(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFromCtx(r.Context())
	if !ok {
		s.writeError(w, errs.ErrUnauthorized)
		return
	}
	var in model.MovieInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeError(w, errs.Validation("body", "malformed JSON"))
		return
	}
	m, err := s.movies.Create(r.Context(), u.ID, in)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, m)
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
