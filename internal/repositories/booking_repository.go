package repositories

import (
	"database/sql"

	"github.com/google/uuid"

	intconfig "bluebus/internal/config"
	intdb "bluebus/internal/db"
	"bluebus/internal/domain"
	"bluebus/internal/domain/models"
)

// BookingRepository is the persistence gateway for booking records.
// Records are append-only; nothing here mutates or deletes them.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// EnsureSchema creates the bookings table when missing.
func (r BookingRepository) EnsureSchema() error {
	db := r.db()
	if intdb.HasTable(db, "bookings") {
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	reference VARCHAR(64) NOT NULL,
	user_id BIGINT NOT NULL,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(100) NOT NULL,
	source VARCHAR(100) NOT NULL,
	destination VARCHAR(100) NOT NULL,
	journey_date VARCHAR(20) NOT NULL,
	bus_name VARCHAR(100) NOT NULL,
	bus_type VARCHAR(100) NOT NULL,
	seats TEXT NOT NULL,
	total_fare BIGINT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_reference (reference),
	KEY idx_user (user_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := db.Exec(ddl)
	return err
}

const bookingColumns = `id, reference, user_id, name, email, phone,
		source, destination, journey_date, bus_name, bus_type, seats,
		total_fare, COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')`

// Append inserts one booking record and returns it with the generated
// id and reference filled in.
func (r BookingRepository) Append(record models.BookingRecord) (models.BookingRecord, error) {
	if record.Reference == "" {
		record.Reference = uuid.NewString()
	}

	res, err := r.db().Exec(`
		INSERT INTO bookings
			(reference, user_id, name, email, phone, source, destination, journey_date, bus_name, bus_type, seats, total_fare, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		record.Reference,
		record.UserID,
		record.Name,
		record.Email,
		record.Phone,
		record.Source,
		record.Destination,
		record.JourneyDate,
		record.BusName,
		record.BusType,
		record.Seats,
		record.TotalFare,
		record.CreatedAt,
	)
	if err != nil {
		return models.BookingRecord{}, err
	}

	id, _ := res.LastInsertId()
	record.ID = id
	return record, nil
}

// ListAll returns every booking, most recent first. Used by the admin
// dashboard.
func (r BookingRepository) ListAll() ([]models.BookingRecord, error) {
	rows, err := r.db().Query(`
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

// ListByUser returns one user's bookings, most recent first.
func (r BookingRepository) ListByUser(userID int64) ([]models.BookingRecord, error) {
	rows, err := r.db().Query(`
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

// GetByID fetches one booking record.
func (r BookingRepository) GetByID(id int64) (models.BookingRecord, error) {
	if id <= 0 {
		return models.BookingRecord{}, domain.ValidationError{Field: "id", Msg: "must be positive"}
	}

	row := r.db().QueryRow(`
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE id = ?
		LIMIT 1
	`, id)

	rec, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return models.BookingRecord{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return models.BookingRecord{}, err
	}
	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.BookingRecord, error) {
	var rec models.BookingRecord
	err := row.Scan(
		&rec.ID,
		&rec.Reference,
		&rec.UserID,
		&rec.Name,
		&rec.Email,
		&rec.Phone,
		&rec.Source,
		&rec.Destination,
		&rec.JourneyDate,
		&rec.BusName,
		&rec.BusType,
		&rec.Seats,
		&rec.TotalFare,
		&rec.CreatedAt,
	)
	return rec, err
}

func scanBookings(rows *sql.Rows) ([]models.BookingRecord, error) {
	out := []models.BookingRecord{}
	for rows.Next() {
		rec, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
