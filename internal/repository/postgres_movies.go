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

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	query := `
		SELECT id, name, theatre_name, total_capacity, available_tickets, tickets_status, created_at
		FROM movies
		ORDER BY name, theatre_name
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMovies(rows)
}

func (p *PostgresMovieRepository) GetByName(ctx context.Context, name string) ([]*domain.Movie, error) {
	query := `
		SELECT id, name, theatre_name, total_capacity, available_tickets, tickets_status, created_at
		FROM movies
		WHERE name = $1
		ORDER BY theatre_name
	`

	rows, err := p.db.Query(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMovies(rows)
}

func (p *PostgresMovieRepository) GetByNameAndTheatre(ctx context.Context, name, theatreName string) (*domain.Movie, error) {
	query := `
		SELECT id, name, theatre_name, total_capacity, available_tickets, tickets_status, created_at
		FROM movies
		WHERE name = $1 AND theatre_name = $2
	`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, name, theatreName).Scan(
		&movie.ID,
		&movie.Name,
		&movie.TheatreName,
		&movie.TotalCapacity,
		&movie.Available,
		&movie.TicketsStatus,
		&movie.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `
		INSERT INTO movies (name, theatre_name, total_capacity, available_tickets, tickets_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		movie.Name,
		movie.TheatreName,
		movie.TotalCapacity,
		movie.Available,
		movie.TicketsStatus,
	).Scan(&movie.ID, &movie.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrMovieAlreadyExists
		}

		return err
	}

	return nil
}

func (p *PostgresMovieRepository) UpdateStatus(ctx context.Context, movieID int, status string) error {
	query := `
		UPDATE movies
		SET tickets_status = $1
		WHERE id = $2
	`

	cmd, err := p.db.Exec(ctx, query, status, movieID)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresMovieRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	query := `
		DELETE FROM movies
		WHERE name = $1
	`

	cmd, err := p.db.Exec(ctx, query, name)
	if err != nil {
		return 0, err
	}

	return cmd.RowsAffected(), nil
}

func scanMovies(rows pgx.Rows) ([]*domain.Movie, error) {
	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&movie.ID,
			&movie.Name,
			&movie.TheatreName,
			&movie.TotalCapacity,
			&movie.Available,
			&movie.TicketsStatus,
			&movie.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}
