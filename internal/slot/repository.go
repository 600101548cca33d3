package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// ListRange fetches all slots for a court within [from, to],
	// ordered by date then start time.
	ListRange(ctx context.Context, courtID string, from, to time.Time) ([]*TimeSlot, error)

	// GetByIDs fetches the given slots; missing ids are simply absent from the result.
	GetByIDs(ctx context.Context, ids []string) ([]*TimeSlot, error)

	// InsertBatch inserts candidate slots. A duplicate-key conflict means another
	// writer created the slot first and is counted as skipped, not treated as an error.
	InsertBatch(ctx context.Context, slots []*TimeSlot) (inserted int, err error)

	// RefreshBatch re-applies price and available status to existing non-booked
	// slots, inserting any that are missing. The status guard runs inside the
	// statement so a concurrent booking can never be overwritten.
	RefreshBatch(ctx context.Context, slots []*TimeSlot) (refreshed int, err error)

	// UpdateStatusBulk transitions the given slots to status, skipping any slot
	// that is currently booked. It returns the ids actually modified.
	UpdateStatusBulk(ctx context.Context, ids []string, status Status, reason *string) ([]string, error)

	// Book atomically transitions an available slot to booked.
	Book(ctx context.Context, slotID, bookingID string) (*TimeSlot, error)

	// Release reverts a booked slot to available and clears the booking reference.
	Release(ctx context.Context, slotID string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const slotColumns = `
	id, court_id, date, start_time, end_time, status, price,
	block_reason, booking_id, created_at, updated_at`

func scanSlot(row pgx.Row) (*TimeSlot, error) {
	var s TimeSlot
	err := row.Scan(
		&s.ID, &s.CourtID, &s.Date, &s.StartTime, &s.EndTime, &s.Status,
		&s.Price, &s.BlockReason, &s.BookingID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) collectSlots(rows pgx.Rows) ([]*TimeSlot, error) {
	defer rows.Close()

	var slots []*TimeSlot
	for rows.Next() {
		var s TimeSlot
		if err := rows.Scan(
			&s.ID, &s.CourtID, &s.Date, &s.StartTime, &s.EndTime, &s.Status,
			&s.Price, &s.BlockReason, &s.BookingID, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan slot failed: %w", err)
		}
		slots = append(slots, &s)
	}
	return slots, rows.Err()
}

func (r *pgxRepository) ListRange(ctx context.Context, courtID string, from, to time.Time) ([]*TimeSlot, error) {
	const query = `
		SELECT` + slotColumns + `
		FROM public.time_slots
		WHERE court_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, start_time
	`
	rows, err := r.pool.Query(ctx, query, courtID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list slots failed: %w", err)
	}
	return r.collectSlots(rows)
}

func (r *pgxRepository) GetByIDs(ctx context.Context, ids []string) ([]*TimeSlot, error) {
	const query = `
		SELECT` + slotColumns + `
		FROM public.time_slots
		WHERE id = ANY($1)
		ORDER BY date, start_time
	`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get slots by ids failed: %w", err)
	}
	return r.collectSlots(rows)
}

// insertQuery relies on the unique (court_id, date, start_time) index:
// a concurrent writer that got there first simply wins, and the conflict
// is reported as "slot already exists" via the row count.
const insertQuery = `
	INSERT INTO public.time_slots (court_id, date, start_time, end_time, status, price)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (court_id, date, start_time) DO NOTHING
`

func (r *pgxRepository) InsertBatch(ctx context.Context, slots []*TimeSlot) (int, error) {
	batch := &pgx.Batch{}
	for _, s := range slots {
		batch.Queue(insertQuery, s.CourtID, s.Date, s.StartTime, s.EndTime, s.Status, s.Price)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range slots {
		ct, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("insert slot batch failed: %w", err)
		}
		inserted += int(ct.RowsAffected())
	}
	return inserted, nil
}

// refreshQuery upserts a candidate. The WHERE guard on the conflict action is
// what keeps regeneration from ever touching a booked slot, even when the
// booking landed between the service's read and this write.
const refreshQuery = `
	INSERT INTO public.time_slots (court_id, date, start_time, end_time, status, price)
	VALUES ($1, $2, $3, $4, 'available', $5)
	ON CONFLICT (court_id, date, start_time) DO UPDATE
	SET end_time = EXCLUDED.end_time,
	    status = 'available',
	    price = EXCLUDED.price,
	    block_reason = NULL,
	    updated_at = now()
	WHERE public.time_slots.status <> 'booked'
`

func (r *pgxRepository) RefreshBatch(ctx context.Context, slots []*TimeSlot) (int, error) {
	batch := &pgx.Batch{}
	for _, s := range slots {
		batch.Queue(refreshQuery, s.CourtID, s.Date, s.StartTime, s.EndTime, s.Price)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	refreshed := 0
	for range slots {
		ct, err := results.Exec()
		if err != nil {
			return refreshed, fmt.Errorf("refresh slot batch failed: %w", err)
		}
		refreshed += int(ct.RowsAffected())
	}
	return refreshed, nil
}

func (r *pgxRepository) UpdateStatusBulk(ctx context.Context, ids []string, status Status, reason *string) ([]string, error) {
	// Booked slots are excluded by the status guard; their ids fall out of the
	// RETURNING set and are reported as skipped by the service.
	const query = `
		UPDATE public.time_slots
		SET status = $1, block_reason = $2, updated_at = now()
		WHERE id = ANY($3) AND status <> 'booked'
		RETURNING id
	`
	rows, err := r.pool.Query(ctx, query, status, reason, ids)
	if err != nil {
		return nil, fmt.Errorf("bulk update slot status failed: %w", err)
	}
	defer rows.Close()

	var modified []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan modified slot id failed: %w", err)
		}
		modified = append(modified, id)
	}
	return modified, rows.Err()
}

func (r *pgxRepository) Book(ctx context.Context, slotID, bookingID string) (*TimeSlot, error) {
	const query = `
		UPDATE public.time_slots
		SET status = 'booked', booking_id = $2, updated_at = now()
		WHERE id = $1 AND status = 'available'
		RETURNING` + slotColumns + `
	`
	s, err := scanSlot(r.pool.QueryRow(ctx, query, slotID, bookingID))
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			// Either the slot does not exist or it was taken concurrently.
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}
	return s, nil
}

func (r *pgxRepository) Release(ctx context.Context, slotID string) error {
	const query = `
		UPDATE public.time_slots
		SET status = 'available', booking_id = NULL, updated_at = now()
		WHERE id = $1 AND status = 'booked'
	`
	ct, err := r.pool.Exec(ctx, query, slotID)
	if err != nil {
		return fmt.Errorf("release slot failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrSlotNotBooked
	}
	return nil
}
