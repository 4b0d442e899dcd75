// Package seatmap builds cabin seat grids with class tiers, prices and
// randomly assigned occupancy.
package seatmap

import (
	"fmt"

	"github.com/cx-tal-miterani/flightselect/internal/entropy"
	"github.com/cx-tal-miterani/flightselect/internal/models"
)

const (
	FirstClassPrice = 1200
	BusinessPrice   = 600
	EconomyPrice    = 200

	// a seat is occupied when the draw exceeds this, i.e. ~30% of seats
	occupancyThreshold = 0.7
)

// StandardColumns returns the six-abreast A-F layout used for generated
// and provider flights.
func StandardColumns() []string {
	return []string{"A", "B", "C", "D", "E", "F"}
}

// Generate returns rows x len(columns) seats in row-major order.
func Generate(src entropy.Source, rows int, columns []string) []models.Seat {
	if rows < 0 {
		rows = 0
	}
	seats := make([]models.Seat, 0, rows*len(columns))
	for row := 1; row <= rows; row++ {
		class := ClassForRow(row)
		for _, col := range columns {
			seats = append(seats, models.Seat{
				ID:              fmt.Sprintf("%d%s", row, col),
				Row:             row,
				Column:          col,
				Class:           class,
				Occupied:        src.Float64() > occupancyThreshold,
				Price:           PriceFor(class),
				ViewDescription: ViewDescription(row, col),
			})
		}
	}
	return seats
}

// ClassForRow maps a row number to its cabin: rows 1-2 first, 3-5
// business, everything behind economy.
func ClassForRow(row int) models.SeatClass {
	switch {
	case row <= 2:
		return models.SeatClassFirst
	case row <= 5:
		return models.SeatClassBusiness
	default:
		return models.SeatClassEconomy
	}
}

// PriceFor returns the fixed base price of a cabin.
func PriceFor(class models.SeatClass) int {
	switch class {
	case models.SeatClassFirst:
		return FirstClassPrice
	case models.SeatClassBusiness:
		return BusinessPrice
	default:
		return EconomyPrice
	}
}

// IsWindow reports whether a column letter sits against the fuselage.
func IsWindow(col string) bool {
	switch col {
	case "A", "F", "K", "L":
		return true
	}
	return false
}

// ViewDescription is the text shown in the seat preview.
func ViewDescription(row int, col string) string {
	if !IsWindow(col) {
		return "Aisle access with easy movement."
	}
	if row < 10 {
		return "Stunning window view of the wing and engine."
	}
	return "Stunning window view of the clouds and landscape."
}
