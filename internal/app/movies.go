package app

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cinebook/api"
	"cinebook/internal/domain"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")

	movies, err := app.movieRepo.GetAll(r.Context(), language)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies: toMovieSummaries(movies),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieById(w http.ResponseWriter, r *http.Request) {
	movieId := chi.URLParam(r, "movieId")

	movie, err := app.movieRepo.GetById(r.Context(), movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	// Opening a movie detail counts as a view. History failures shouldn't
	// block the detail itself.
	err = app.historyRepo.Add(r.Context(), movie.ID)
	if err != nil {
		app.logger.Warn("failed to record viewing history", "movieId", movie.ID, "error", err)
	}

	resp := api.MovieDetailResponse{
		MovieSummary: toMovieSummary(movie),
		ShowTimes:    toApiShowTimes(movie.ShowTimes),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetViewingHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := app.historyRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.HistoryResponse{
		Entries: make([]api.HistoryEntry, len(entries)),
	}

	for i, v := range entries {
		resp.Entries[i] = api.HistoryEntry{
			MovieId:  v.MovieID,
			ViewedAt: v.ViewedAt,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toMovieSummaries(movies []*domain.Movie) []api.MovieSummary {
	summaries := make([]api.MovieSummary, len(movies))

	for i, movie := range movies {
		summaries[i] = toMovieSummary(movie)
	}

	return summaries
}

func toMovieSummary(movie *domain.Movie) api.MovieSummary {
	if movie == nil {
		return api.MovieSummary{}
	}

	return api.MovieSummary{
		Id:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		PosterUrl:   movie.PosterUrl,
		Duration:    movie.Duration,
		Genres:      movie.Genres,
		Rating:      movie.Rating,
		Language:    movie.Language,
	}
}

func toApiShowTimes(showTimes []*domain.ShowTime) []api.ShowTime {
	out := make([]api.ShowTime, len(showTimes))

	for i, st := range showTimes {
		out[i] = api.ShowTime{
			Id:             st.ID,
			Date:           st.Date,
			Time:           st.Time,
			AvailableSeats: st.AvailableSeats,
		}
	}

	return out
}
