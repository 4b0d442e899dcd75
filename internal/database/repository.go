package database

import (
	"context"
	"fmt"

	"github.com/cx-tal-miterani/flightselect/internal/catalog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const curatedColumns = `id, airline, flight_number, departure_time, arrival_time,
		       origin, destination, price, tracking, aircraft, sort_order, updated_at`

// Repository reads and seeds the curated flight table
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// EnsureSchema creates the curated_flights table if it does not exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// CuratedFlights returns every curated flight in list order.
func (r *Repository) CuratedFlights(ctx context.Context) ([]catalog.CuratedFlight, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+curatedColumns+`
		FROM curated_flights
		ORDER BY sort_order ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query curated flights: %w", err)
	}
	defer rows.Close()

	var flights []catalog.CuratedFlight
	for rows.Next() {
		row, err := scanCuratedRow(rows)
		if err != nil {
			return nil, err
		}
		f, err := row.ToCuratedFlight()
		if err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate curated flights: %w", err)
	}
	return flights, nil
}

// SeedCuratedFlights upserts flights, keeping their slice order.
func (r *Repository) SeedCuratedFlights(ctx context.Context, flights []catalog.CuratedFlight) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for i, f := range flights {
		row, err := NewCuratedFlightRow(f, i)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO curated_flights
				(id, airline, flight_number, departure_time, arrival_time,
				 origin, destination, price, tracking, aircraft, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (id) DO UPDATE SET
				airline = EXCLUDED.airline,
				flight_number = EXCLUDED.flight_number,
				departure_time = EXCLUDED.departure_time,
				arrival_time = EXCLUDED.arrival_time,
				origin = EXCLUDED.origin,
				destination = EXCLUDED.destination,
				price = EXCLUDED.price,
				tracking = EXCLUDED.tracking,
				aircraft = EXCLUDED.aircraft,
				sort_order = EXCLUDED.sort_order,
				updated_at = NOW()
		`, row.ID, row.Airline, row.FlightNumber, row.DepartureTime, row.ArrivalTime,
			row.Origin, row.Destination, row.Price, row.Tracking, row.Aircraft, row.SortOrder)
		if err != nil {
			return fmt.Errorf("failed to upsert curated flight %s: %w", f.FlightNumber, err)
		}
	}

	return tx.Commit(ctx)
}

// CountCuratedFlights returns the number of stored curated flights.
func (r *Repository) CountCuratedFlights(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM curated_flights`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count curated flights: %w", err)
	}
	return n, nil
}

// LoadCuratedFlights returns the stored list, seeding it from fallback
// first when the table is empty.
func (r *Repository) LoadCuratedFlights(ctx context.Context, fallback []catalog.CuratedFlight) ([]catalog.CuratedFlight, error) {
	if err := r.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	n, err := r.CountCuratedFlights(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 && len(fallback) > 0 {
		if err := r.SeedCuratedFlights(ctx, fallback); err != nil {
			return nil, err
		}
	}
	return r.CuratedFlights(ctx)
}

func scanCuratedRow(row pgx.Row) (CuratedFlightRow, error) {
	var c CuratedFlightRow
	err := row.Scan(
		&c.ID, &c.Airline, &c.FlightNumber, &c.DepartureTime, &c.ArrivalTime,
		&c.Origin, &c.Destination, &c.Price, &c.Tracking, &c.Aircraft, &c.SortOrder, &c.UpdatedAt,
	)
	if err != nil {
		return c, fmt.Errorf("failed to scan curated flight: %w", err)
	}
	return c, nil
}
