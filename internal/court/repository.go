package court

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, c *Court) error
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, int, error)
	Update(ctx context.Context, c *Court) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, c *Court) error {
	overrides, err := json.Marshal(c.DayOverrides)
	if err != nil {
		return fmt.Errorf("marshal day overrides failed: %w", err)
	}

	const query = `
		INSERT INTO public.courts
			(venue_id, name, sport, hourly_rate, peak_rate, peak_start, peak_end,
			 open_time, close_time, day_overrides, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`
	err = r.pool.QueryRow(ctx, query,
		c.VenueID, c.Name, c.Sport, c.HourlyRate, c.PeakRate, c.PeakStart, c.PeakEnd,
		c.OpenTime, c.CloseTime, overrides, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create court failed: %w", err)
	}
	return nil
}

const courtColumns = `
	id, venue_id, name, sport, hourly_rate, peak_rate, peak_start, peak_end,
	open_time, close_time, day_overrides, is_active, created_at, updated_at`

func scanCourt(row pgx.Row) (*Court, error) {
	var c Court
	var overrides []byte
	err := row.Scan(
		&c.ID, &c.VenueID, &c.Name, &c.Sport, &c.HourlyRate, &c.PeakRate,
		&c.PeakStart, &c.PeakEnd, &c.OpenTime, &c.CloseTime, &overrides,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan court failed: %w", err)
	}
	if len(overrides) > 0 {
		if err := json.Unmarshal(overrides, &c.DayOverrides); err != nil {
			return nil, fmt.Errorf("unmarshal day overrides failed: %w", err)
		}
	}
	return &c, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Court, error) {
	const query = `SELECT` + courtColumns + ` FROM public.courts WHERE id = $1`
	return scanCourt(r.pool.QueryRow(ctx, query, id))
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "venue_id", "name", "sport", "hourly_rate", "peak_rate",
		"peak_start", "peak_end", "open_time", "close_time", "day_overrides",
		"is_active", "created_at", "updated_at",
		"count(*) OVER() as total_count",
	).From("public.courts")

	if filter.VenueID != "" {
		query = query.Where(squirrel.Eq{"venue_id": filter.VenueID})
	}
	if filter.Sport != "" {
		query = query.Where(squirrel.Eq{"sport": filter.Sport})
	}
	if filter.ActiveOnly {
		query = query.Where(squirrel.Eq{"is_active": true})
	}

	query = query.OrderBy("created_at ASC")

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
		return nil, 0, fmt.Errorf("build list courts query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list courts failed: %w", err)
	}
	defer rows.Close()

	var courts []*Court
	var total int

	for rows.Next() {
		var c Court
		var overrides []byte
		if err := rows.Scan(
			&c.ID, &c.VenueID, &c.Name, &c.Sport, &c.HourlyRate, &c.PeakRate,
			&c.PeakStart, &c.PeakEnd, &c.OpenTime, &c.CloseTime, &overrides,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan court failed: %w", err)
		}
		if len(overrides) > 0 {
			if err := json.Unmarshal(overrides, &c.DayOverrides); err != nil {
				return nil, 0, fmt.Errorf("unmarshal day overrides failed: %w", err)
			}
		}
		courts = append(courts, &c)
	}

	return courts, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, c *Court) error {
	overrides, err := json.Marshal(c.DayOverrides)
	if err != nil {
		return fmt.Errorf("marshal day overrides failed: %w", err)
	}

	const query = `
		UPDATE public.courts
		SET name = $1, sport = $2, hourly_rate = $3, peak_rate = $4,
		    peak_start = $5, peak_end = $6, open_time = $7, close_time = $8,
		    day_overrides = $9, is_active = $10, updated_at = now()
		WHERE id = $11
	`
	ct, err := r.pool.Exec(ctx, query,
		c.Name, c.Sport, c.HourlyRate, c.PeakRate, c.PeakStart, c.PeakEnd,
		c.OpenTime, c.CloseTime, overrides, c.IsActive, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update court failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
