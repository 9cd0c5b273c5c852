package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rbpdev/movie-booking-system/internal/domain"
)

type PostgresTicketRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTicketRepository(db *pgxpool.Pool) *PostgresTicketRepository {
	return &PostgresTicketRepository{
		db: db,
	}
}

func (p *PostgresTicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `
		SELECT t.id, t.user_id, t.movie_name, t.theatre_name, t.no_of_tickets, t.created_at,
			array_agg(s.seat_number ORDER BY s.position)
		FROM tickets t
		JOIN ticket_seats s ON s.ticket_id = t.id
		WHERE t.id = $1
		GROUP BY t.id, t.user_id, t.movie_name, t.theatre_name, t.no_of_tickets, t.created_at
	`

	var ticket domain.Ticket

	err := p.db.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.UserID,
		&ticket.MovieName,
		&ticket.TheatreName,
		&ticket.Count,
		&ticket.CreatedAt,
		&ticket.Seats,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &ticket, nil
}

func (p *PostgresTicketRepository) GetByMovie(ctx context.Context, movieName string) ([]*domain.Ticket, error) {
	query := `
		SELECT t.id, t.user_id, t.movie_name, t.theatre_name, t.no_of_tickets, t.created_at,
			array_agg(s.seat_number ORDER BY s.position)
		FROM tickets t
		JOIN ticket_seats s ON s.ticket_id = t.id
		WHERE t.movie_name = $1
		GROUP BY t.id, t.user_id, t.movie_name, t.theatre_name, t.no_of_tickets, t.created_at
		ORDER BY t.created_at
	`

	rows, err := p.db.Query(ctx, query, movieName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTickets(rows)
}

func (p *PostgresTicketRepository) GetByMovieAndTheatre(ctx context.Context, movieName, theatreName string) ([]*domain.Ticket, error) {
	query := `
		SELECT t.id, t.user_id, t.movie_name, t.theatre_name, t.no_of_tickets, t.created_at,
			array_agg(s.seat_number ORDER BY s.position)
		FROM tickets t
		JOIN ticket_seats s ON s.ticket_id = t.id
		WHERE t.movie_name = $1 AND t.theatre_name = $2
		GROUP BY t.id, t.user_id, t.movie_name, t.theatre_name, t.no_of_tickets, t.created_at
		ORDER BY t.created_at
	`

	rows, err := p.db.Query(ctx, query, movieName, theatreName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTickets(rows)
}

// CreateWithDecrement inserts the ticket with its seat rows and decrements
// the matching movie's available count in one transaction. The decrement is
// conditional on sufficient remaining capacity, and the seat rows are covered
// by a uniqueness constraint per (movie, theatre, seat); both act as
// backstops behind the coordinator's serialized check-and-commit.
func (p *PostgresTicketRepository) CreateWithDecrement(ctx context.Context, ticket *domain.Ticket) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			UPDATE movies
			SET available_tickets = available_tickets - $1
			WHERE name = $2 AND theatre_name = $3 AND available_tickets >= $1
		`

		cmd, err := tx.Exec(ctx, query, ticket.Count, ticket.MovieName, ticket.TheatreName)
		if err != nil {
			return err
		}

		if cmd.RowsAffected() == 0 {
			var exists bool

			query = `SELECT EXISTS (SELECT 1 FROM movies WHERE name = $1 AND theatre_name = $2)`

			err = tx.QueryRow(ctx, query, ticket.MovieName, ticket.TheatreName).Scan(&exists)
			if err != nil {
				return err
			}

			if !exists {
				return domain.ErrMovieNotFound
			}

			return domain.ErrInsufficientCapacity
		}

		query = `
			INSERT INTO tickets (id, user_id, movie_name, theatre_name, no_of_tickets)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING created_at
		`

		err = tx.QueryRow(
			ctx,
			query,
			ticket.ID,
			ticket.UserID,
			ticket.MovieName,
			ticket.TheatreName,
			ticket.Count,
		).Scan(&ticket.CreatedAt)

		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(ticket.Seats))
		for i, seat := range ticket.Seats {
			rows = append(rows, []any{
				ticket.ID,
				ticket.MovieName,
				ticket.TheatreName,
				seat,
				i,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"ticket_seats"},
			[]string{"ticket_id", "movie_name", "theatre_name", "seat_number", "position"},
			pgx.CopyFromRows(rows),
		)

		return err
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return domain.ErrSeatAlreadyReserved
			case pgerrcode.ForeignKeyViolation:
				return domain.ErrMovieNotFound
			}
		}

		return err
	}

	return nil
}

func scanTickets(rows pgx.Rows) ([]*domain.Ticket, error) {
	tickets := []*domain.Ticket{}

	for rows.Next() {
		var ticket domain.Ticket

		err := rows.Scan(
			&ticket.ID,
			&ticket.UserID,
			&ticket.MovieName,
			&ticket.TheatreName,
			&ticket.Count,
			&ticket.CreatedAt,
			&ticket.Seats,
		)

		if err != nil {
			return nil, err
		}

		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}
