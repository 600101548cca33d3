package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, rv *Review) error
	List(ctx context.Context, filter Filter) ([]*Review, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, rv *Review) error {
	const query = `
		INSERT INTO public.reviews (venue_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query, rv.VenueID, rv.UserID, rv.Rating, rv.Comment).
		Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyReviewed
		}
		return fmt.Errorf("create review failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Review, int, error) {
	const query = `
		SELECT r.id, r.venue_id, r.user_id, COALESCE(u.full_name, u.email),
		       r.rating, r.comment, r.created_at, r.updated_at,
		       count(*) OVER() as total_count
		FROM public.reviews r
		JOIN public.users u ON r.user_id = u.id
		WHERE r.venue_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3
	`

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	rows, err := r.pool.Query(ctx, query, filter.VenueID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews failed: %w", err)
	}
	defer rows.Close()

	var reviews []*Review
	var total int

	for rows.Next() {
		var rv Review
		if err := rows.Scan(
			&rv.ID, &rv.VenueID, &rv.UserID, &rv.UserName,
			&rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan review failed: %w", err)
		}
		reviews = append(reviews, &rv)
	}

	return reviews, total, nil
}
