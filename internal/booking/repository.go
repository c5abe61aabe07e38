package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists bookings. Every implementation must enforce slot
// uniqueness: a second insert for the same slot id fails with
// ErrAlreadyBooked no matter what the caller checked beforehand.
type Repository interface {
	// Insert stores a new booking. Fails with ErrAlreadyBooked when the
	// slot is already claimed.
	Insert(ctx context.Context, b *Booking) error
	// GetBySlotID returns the booking for a slot, or (nil, nil) when open.
	GetBySlotID(ctx context.Context, slotID string) (*Booking, error)
	// List returns every booking in insertion order.
	List(ctx context.Context) ([]*Booking, error)
}

// pgxRepository stores bookings in Postgres. The bookings.slot_id column
// carries a unique constraint, which is what makes concurrent check-then-act
// races safe: the losing insert surfaces as a unique violation.
type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Insert(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("id", "slot_id", "student_name", "phone", "calendar_link").
		Values(b.ID, b.SlotID, b.StudentName, b.Phone, b.CalendarLink).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyBooked
		}
		return fmt.Errorf("insert booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetBySlotID(ctx context.Context, slotID string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "slot_id", "student_name", "phone", "calendar_link", "created_at").
		From("public.bookings").
		Where(squirrel.Eq{"slot_id": slotID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	var b Booking
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.SlotID, &b.StudentName, &b.Phone, &b.CalendarLink, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "slot_id", "student_name", "phone", "calendar_link", "created_at").
		From("public.bookings").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.SlotID, &b.StudentName, &b.Phone, &b.CalendarLink, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, rows.Err()
}
