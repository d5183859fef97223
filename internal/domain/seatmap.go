package domain

import (
	"strconv"
	"strings"

	"bluebus/internal/domain/models"
)

// SeatLayout is the ordered seat grid of one selected bus, with a
// code index so toggles are a tagged lookup instead of string parsing.
type SeatLayout struct {
	Seats []models.Seat
	index map[string]int
}

// GenerateLayout produces rows x cols unbooked seats in row-major
// order. Seat codes are the row letter (starting 'A') plus the
// 1-based column number: A1..A<cols>, B1.., and so on.
func GenerateLayout(rows, cols int) (*SeatLayout, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimension
	}

	layout := &SeatLayout{
		Seats: make([]models.Seat, 0, rows*cols),
		index: make(map[string]int, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			code := seatCode(r, c)
			layout.index[code] = len(layout.Seats)
			layout.Seats = append(layout.Seats, models.Seat{Code: code})
		}
	}
	return layout, nil
}

func seatCode(row, col int) string {
	return string(rune('A'+row)) + strconv.Itoa(col+1)
}

// Has reports whether code belongs to this layout.
func (l *SeatLayout) Has(code string) bool {
	_, ok := l.index[code]
	return ok
}

// Codes returns seat codes in layout order.
func (l *SeatLayout) Codes() []string {
	out := make([]string, len(l.Seats))
	for i, s := range l.Seats {
		out[i] = s.Code
	}
	return out
}

// NormalizeSeatCode canonicalizes user-supplied seat input.
func NormalizeSeatCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
