package venue

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, v *Venue) error
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context, filter Filter) ([]*Venue, int, error)
	Update(ctx context.Context, v *Venue) error
	SetApproval(ctx context.Context, id string, status ApprovalStatus, comment *string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, v *Venue) error {
	const query = `
		INSERT INTO public.venues (owner_id, name, description, address, city, sports, amenities, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		v.OwnerID, v.Name, v.Description, v.Address, v.City, v.Sports, v.Amenities, v.Status,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create venue failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Venue, error) {
	const query = `
		SELECT v.id, v.owner_id, v.name, v.description, v.address, v.city,
		       v.sports, v.amenities, v.status, v.admin_comment,
		       COALESCE(avg(rv.rating), 0), count(rv.id),
		       v.created_at, v.updated_at
		FROM public.venues v
		LEFT JOIN public.reviews rv ON rv.venue_id = v.id
		WHERE v.id = $1
		GROUP BY v.id
	`
	row := r.pool.QueryRow(ctx, query, id)

	var v Venue
	if err := row.Scan(
		&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.Address, &v.City,
		&v.Sports, &v.Amenities, &v.Status, &v.AdminComment,
		&v.RatingAvg, &v.RatingCount,
		&v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get venue failed: %w", err)
	}
	return &v, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"v.id", "v.owner_id", "v.name", "v.description", "v.address", "v.city",
		"v.sports", "v.amenities", "v.status", "v.admin_comment",
		"COALESCE(avg(rv.rating), 0)", "count(rv.id)",
		"v.created_at", "v.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.venues v").
		LeftJoin("public.reviews rv ON rv.venue_id = v.id").
		GroupBy("v.id")

	if filter.OwnerID != "" {
		query = query.Where(squirrel.Eq{"v.owner_id": filter.OwnerID})
	}
	if filter.City != "" {
		query = query.Where(squirrel.ILike{"v.city": filter.City})
	}
	if filter.Sport != "" {
		query = query.Where(squirrel.Expr("? = ANY(v.sports)", filter.Sport))
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"v.status": filter.Status})
	}
	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"v.name": kw},
			squirrel.ILike{"v.address": kw},
		})
	}

	query = query.OrderBy("v.created_at DESC")

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list venues query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list venues failed: %w", err)
	}
	defer rows.Close()

	var venues []*Venue
	var total int

	for rows.Next() {
		var v Venue
		if err := rows.Scan(
			&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.Address, &v.City,
			&v.Sports, &v.Amenities, &v.Status, &v.AdminComment,
			&v.RatingAvg, &v.RatingCount,
			&v.CreatedAt, &v.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan venue failed: %w", err)
		}
		venues = append(venues, &v)
	}

	return venues, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, v *Venue) error {
	const query = `
		UPDATE public.venues
		SET name = $1, description = $2, address = $3, city = $4,
		    sports = $5, amenities = $6, updated_at = now()
		WHERE id = $7
	`
	ct, err := r.pool.Exec(ctx, query,
		v.Name, v.Description, v.Address, v.City, v.Sports, v.Amenities, v.ID,
	)
	if err != nil {
		return fmt.Errorf("update venue failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) SetApproval(ctx context.Context, id string, status ApprovalStatus, comment *string) error {
	const query = `
		UPDATE public.venues
		SET status = $1, admin_comment = $2, updated_at = now()
		WHERE id = $3
	`
	ct, err := r.pool.Exec(ctx, query, status, comment, id)
	if err != nil {
		return fmt.Errorf("set venue approval failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
