// Package api defines the request and response types of the HTTP surface.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateMovieRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	TheatreName   string `json:"theatreName" validate:"required,max=100"`
	TotalCapacity int    `json:"totalCapacity" validate:"required,min=1"`
}

type MovieResponse struct {
	Id               int       `json:"id"`
	Name             string    `json:"name"`
	TheatreName      string    `json:"theatreName"`
	TotalCapacity    int       `json:"totalCapacity"`
	AvailableTickets int       `json:"availableTickets"`
	TicketsStatus    string    `json:"ticketsStatus,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

type MovieListResponse struct {
	Movies []MovieResponse `json:"movies"`
}

type BookingRequest struct {
	TheatreName string   `json:"theatreName" validate:"required,max=100"`
	NoOfTickets int      `json:"noOfTickets" validate:"required,min=1"`
	SeatNumbers []string `json:"seatNumbers" validate:"required,min=1,dive,required,max=10"`
}

type BookingResponse struct {
	Status   string   `json:"status"`
	TicketId string   `json:"ticketId,omitempty"`
	Seats    []string `json:"seats,omitempty"`
}

type TicketResponse struct {
	Id          string    `json:"id"`
	UserId      int       `json:"userId"`
	MovieName   string    `json:"movieName"`
	TheatreName string    `json:"theatreName"`
	NoOfTickets int       `json:"noOfTickets"`
	SeatNumbers []string  `json:"seatNumbers"`
	CreatedAt   time.Time `json:"createdAt"`
}

type TicketListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
