package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rbpdev/movie-booking-system/api"
	"github.com/rbpdev/movie-booking-system/internal/domain"
	"github.com/rbpdev/movie-booking-system/internal/mocks"
	appvalidator "github.com/rbpdev/movie-booking-system/internal/validator"
)

func TestGetMovies(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		getAllFunc     func(ctx context.Context) ([]*domain.Movie, error)
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.MovieListResponse
	}{
		{
			name: "returns all showings",
			getAllFunc: func(ctx context.Context) ([]*domain.Movie, error) {
				return []*domain.Movie{
					{
						ID:            1,
						Name:          "Inception",
						TheatreName:   "Grand",
						TotalCapacity: 100,
						Available:     98,
						TicketsStatus: domain.TicketsStatusBookASAP,
						CreatedAt:     createdAt,
					},
					{
						ID:            2,
						Name:          "Inception",
						TheatreName:   "Rialto",
						TotalCapacity: 50,
						Available:     0,
						TicketsStatus: domain.TicketsStatusSoldOut,
						CreatedAt:     createdAt,
					},
				}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.MovieListResponse{
				Movies: []api.MovieResponse{
					{
						Id:               1,
						Name:             "Inception",
						TheatreName:      "Grand",
						TotalCapacity:    100,
						AvailableTickets: 98,
						TicketsStatus:    domain.TicketsStatusBookASAP,
						CreatedAt:        createdAt,
					},
					{
						Id:               2,
						Name:             "Inception",
						TheatreName:      "Rialto",
						TotalCapacity:    50,
						AvailableTickets: 0,
						TicketsStatus:    domain.TicketsStatusSoldOut,
						CreatedAt:        createdAt,
					},
				},
			},
		},
		{
			name: "no movies yet",
			getAllFunc: func(ctx context.Context) ([]*domain.Movie, error) {
				return []*domain.Movie{}, nil
			},
			wantStatus:   http.StatusOK,
			wantResponse: &api.MovieListResponse{Movies: []api.MovieResponse{}},
		},
		{
			name: "repository failure",
			getAllFunc: func(ctx context.Context) ([]*domain.Movie, error) {
				return nil, errors.New("connection reset")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(app *application) {
				app.movieRepo = &mocks.MockMovieRepo{GetAllFunc: tt.getAllFunc}
			})

			w, r := executeRequest(t, http.MethodGet, "/movies", nil)
			r = withUser(r, 1, domain.RoleUser)

			app.GetMovies(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("Status code = %v, want %v", w.Code, tt.wantStatus)
			}

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)

			if tt.wantResponse != nil {
				var got api.MovieListResponse
				if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
					t.Fatalf("Failed to decode movie list response: %v", err)
				}

				if diff := cmp.Diff(*tt.wantResponse, got); diff != "" {
					t.Errorf("Movie list mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestCreateMovie(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		createFunc     func(ctx context.Context, movie *domain.Movie) error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "creates a showing",
			requestBody: api.CreateMovieRequest{
				Name:          "Inception",
				TheatreName:   "Grand",
				TotalCapacity: 100,
			},
			createFunc: func(ctx context.Context, movie *domain.Movie) error {
				movie.ID = 1
				movie.CreatedAt = time.Now()
				return nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate showing",
			requestBody: api.CreateMovieRequest{
				Name:          "Inception",
				TheatreName:   "Grand",
				TotalCapacity: 100,
			},
			createFunc: func(ctx context.Context, movie *domain.Movie) error {
				return domain.ErrMovieAlreadyExists
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: domain.ErrMovieAlreadyExists.Error(),
		},
		{
			name: "missing name",
			requestBody: api.CreateMovieRequest{
				TheatreName:   "Grand",
				TotalCapacity: 100,
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: appvalidator.ErrRequired,
		},
		{
			name: "zero capacity",
			requestBody: api.CreateMovieRequest{
				Name:        "Inception",
				TheatreName: "Grand",
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: appvalidator.ErrRequired,
		},
		{
			name: "repository failure",
			requestBody: api.CreateMovieRequest{
				Name:          "Inception",
				TheatreName:   "Grand",
				TotalCapacity: 100,
			},
			createFunc: func(ctx context.Context, movie *domain.Movie) error {
				return errors.New("connection reset")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(app *application) {
				app.movieRepo = &mocks.MockMovieRepo{CreateFunc: tt.createFunc}
			})

			w, r := executeRequest(t, http.MethodPost, "/movies", tt.requestBody)
			r = withUser(r, 1, domain.RoleAdmin)

			app.CreateMovie(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("Status code = %v, want %v", w.Code, tt.wantStatus)
			}

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)

			if tt.wantStatus == http.StatusCreated {
				var got api.MovieResponse
				if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
					t.Fatalf("Failed to decode movie response: %v", err)
				}

				if got.AvailableTickets != got.TotalCapacity {
					t.Errorf("Available tickets = %d, want full capacity %d", got.AvailableTickets, got.TotalCapacity)
				}

				if got.TicketsStatus != domain.TicketsStatusBookASAP {
					t.Errorf("Tickets status = %v, want %v", got.TicketsStatus, domain.TicketsStatusBookASAP)
				}
			}
		})
	}
}

func TestDeleteMovie(t *testing.T) {
	tests := []struct {
		name            string
		deleteMovieFunc func(ctx context.Context, movieName string) (int64, error)
		wantStatus      int
		wantErrMessage  string
	}{
		{
			name: "deletes all showings",
			deleteMovieFunc: func(ctx context.Context, movieName string) (int64, error) {
				return 2, nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "movie not found",
			deleteMovieFunc: func(ctx context.Context, movieName string) (int64, error) {
				return 0, domain.ErrMovieNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "No movies available with movie name Inception",
		},
		{
			name: "coordinator failure",
			deleteMovieFunc: func(ctx context.Context, movieName string) (int64, error) {
				return 0, errors.New("connection reset")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(app *application) {
				app.coordinator = &mocks.MockCoordinator{DeleteMovieFunc: tt.deleteMovieFunc}
			})

			w, r := executeRequest(t, http.MethodDelete, "/movies/Inception", nil)
			r = withUser(r, 1, domain.RoleAdmin)
			r = withURLParams(r, map[string]string{"movieName": "Inception"})

			app.DeleteMovie(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("Status code = %v, want %v", w.Code, tt.wantStatus)
			}

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)

			if tt.wantStatus == http.StatusOK {
				var got api.MessageResponse
				if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
					t.Fatalf("Failed to decode message response: %v", err)
				}

				if got.Message != "Movie deleted successfully" {
					t.Errorf("Message = %v, want 'Movie deleted successfully'", got.Message)
				}
			}
		})
	}
}
