package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rbpdev/movie-booking-system/api"
	"github.com/rbpdev/movie-booking-system/internal/booking"
	"github.com/rbpdev/movie-booking-system/internal/domain"
)

// BookingCoordinator owns the atomic check-and-commit booking transaction and
// the movie-deletion cascade.
type BookingCoordinator interface {
	Book(ctx context.Context, req booking.Request) (booking.Result, error)
	DeleteMovie(ctx context.Context, movieName string) (int64, error)
}

// StatusClassifier recomputes sold-out/available status labels from committed
// booking state.
type StatusClassifier interface {
	RecomputeStatus(ctx context.Context, movieName, ticketID string) ([]*domain.Movie, error)
}

func (app *application) BookTickets(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)
	movieName := chi.URLParam(r, "movieName")

	var input api.BookingRequest

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

	req := booking.Request{
		UserID:      app.contextGetUserId(r),
		MovieName:   movieName,
		TheatreName: input.TheatreName,
		Count:       input.NoOfTickets,
		Seats:       input.SeatNumbers,
	}

	result, err := app.coordinator.Book(r.Context(), req)
	if err != nil {
		var seatErr domain.SeatAlreadyBookedError

		switch {
		case errors.As(err, &seatErr):
			logger.Warn("seat is already booked", "movie", movieName, "seat", seatErr.Seat)
			app.conflictResponse(w, r, seatErr.Error())
		case errors.Is(err, domain.ErrSeatAlreadyReserved):
			app.conflictResponse(w, r, err.Error())
		case errors.Is(err, domain.ErrSeatCountMismatch):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrMovieNotFound):
			app.errorResponse(w, r, http.StatusNotFound, err.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if result.Status == booking.StatusSoldOut {
		logger.Info("tickets sold out", "movie", movieName, "theatre", input.TheatreName)

		resp := api.BookingResponse{Status: string(booking.StatusSoldOut)}

		err = app.writeJSON(w, http.StatusOK, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("tickets booked", "movie", movieName, "theatre", input.TheatreName, "seats", result.Seats)

	resp := api.BookingResponse{
		Status:   string(booking.StatusBooked),
		TicketId: result.TicketID,
		Seats:    result.Seats,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetBookedTickets(w http.ResponseWriter, r *http.Request) {
	movieName := chi.URLParam(r, "movieName")

	tickets, err := app.ticketRepo.GetByMovie(r.Context(), movieName)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.TicketListResponse{
		Tickets: toTicketResponses(tickets),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateTicketStatus(w http.ResponseWriter, r *http.Request) {
	movieName := chi.URLParam(r, "movieName")
	ticketId := chi.URLParam(r, "ticketId")

	if err := uuid.Validate(ticketId); err != nil {
		app.badRequestResponse(w, r, errors.New("invalid ticket ID"))
		return
	}

	movies, err := app.classifier.RecomputeStatus(r.Context(), movieName, ticketId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMovieNotFound), errors.Is(err, domain.ErrTicketNotFound):
			app.errorResponse(w, r, http.StatusNotFound, err.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}

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

func toTicketResponses(tickets []*domain.Ticket) []api.TicketResponse {
	responses := make([]api.TicketResponse, len(tickets))

	for i, ticket := range tickets {
		responses[i] = api.TicketResponse{
			Id:          ticket.ID,
			UserId:      ticket.UserID,
			MovieName:   ticket.MovieName,
			TheatreName: ticket.TheatreName,
			NoOfTickets: ticket.Count,
			SeatNumbers: ticket.Seats,
			CreatedAt:   ticket.CreatedAt,
		}
	}

	return responses
}
