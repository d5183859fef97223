package models

// Seat is one position in a bus layout. Code is the row letter plus
// the 1-based column number, e.g. "A3".
type Seat struct {
	Code   string `json:"seat"`
	Booked bool   `json:"booked"`
}

// Bus is a catalog offering. Rows/Cols define the seat grid, Fare is
// the whole-rupee price per seat.
type Bus struct {
	Name string `json:"bus_name"`
	Type string `json:"bus_type"`
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
	Fare int64  `json:"fare"`
}

// JourneyQuery is the search criteria. Read-only after submission
// until the next search.
type JourneyQuery struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Date        string `json:"journey_date"` // YYYY-MM-DD
}

// PassengerDetails are collected at the payment stage. All fields are
// required at confirmation time.
type PassengerDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingRecord is the immutable, append-only outcome of a completed
// wizard run. Column names mirror the bookings table.
type BookingRecord struct {
	ID          int64  `json:"id"`
	Reference   string `json:"reference"`
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	JourneyDate string `json:"journey_date"`
	BusName     string `json:"bus_name"`
	BusType     string `json:"bus_type"`
	Seats       string `json:"seats"` // comma-joined seat codes
	TotalFare   int64  `json:"total_fare"`
	CreatedAt   string `json:"created_at"`
}
