package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rbpdev/movie-booking-system/api"
	"github.com/rbpdev/movie-booking-system/internal/domain"
)

func (app *application) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies: toMovieResponses(movies),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateMovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie := domain.Movie{
		Name:          input.Name,
		TheatreName:   input.TheatreName,
		TotalCapacity: input.TotalCapacity,
		Available:     input.TotalCapacity,
		TicketsStatus: domain.TicketsStatusBookASAP,
	}

	err = app.movieRepo.Create(r.Context(), &movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMovieAlreadyExists):
			logger.Warn("attempt to create duplicate showing", "movie", input.Name, "theatre", input.TheatreName)
			app.conflictResponse(w, r, err.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := toMovieResponse(&movie)

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieName := chi.URLParam(r, "movieName")

	deleted, err := app.coordinator.DeleteMovie(r.Context(), movieName)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMovieNotFound):
			app.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("No movies available with movie name %s", movieName))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.contextGetLogger(r).Info("movie deleted", "movie", movieName, "showings", deleted)

	resp := api.MessageResponse{Message: "Movie deleted successfully"}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toMovieResponses(movies []*domain.Movie) []api.MovieResponse {
	responses := make([]api.MovieResponse, len(movies))

	for i, movie := range movies {
		responses[i] = toMovieResponse(movie)
	}

	return responses
}

func toMovieResponse(movie *domain.Movie) api.MovieResponse {
	if movie == nil {
		return api.MovieResponse{}
	}

	return api.MovieResponse{
		Id:               movie.ID,
		Name:             movie.Name,
		TheatreName:      movie.TheatreName,
		TotalCapacity:    movie.TotalCapacity,
		AvailableTickets: movie.Available,
		TicketsStatus:    movie.TicketsStatus,
		CreatedAt:        movie.CreatedAt,
	}
}
