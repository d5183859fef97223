package domain

import (
	"strings"
	"time"

	"bluebus/internal/domain/models"
	"bluebus/internal/utils"
)

// Stage is the current step of the booking wizard.
type Stage string

const (
	StageSearch      Stage = "search"
	StageSelectBus   Stage = "select_bus"
	StageSelectSeats Stage = "select_seats"
	StagePayment     Stage = "payment"
)

// BookingStore is the persistence gateway consumed on confirmation.
// Append must be durable and atomic per call.
type BookingStore interface {
	Append(record models.BookingRecord) (models.BookingRecord, error)
}

// Session holds the wizard state for exactly one user. It is not safe
// for concurrent use; callers serialize access per user.
type Session struct {
	Stage    Stage
	Query    *models.JourneyQuery
	Bus      *models.Bus
	Layout   *SeatLayout
	Selected []string // toggle order, always a subset of Layout codes
}

func NewSession() *Session {
	return &Session{Stage: StageSearch}
}

// Reset returns the session to its initial state. Used on logout and
// after a successful booking-independent restart.
func (s *Session) Reset() {
	s.Stage = StageSearch
	s.Query = nil
	s.clearBus()
}

func (s *Session) clearBus() {
	s.Bus = nil
	s.Layout = nil
	s.Selected = nil
}

// Search validates and stores a journey query, moving the session to
// the bus-selection stage. A new search is accepted from any stage and
// discards any bus/seat selection in progress.
func (s *Session) Search(q models.JourneyQuery, now time.Time) error {
	src := strings.TrimSpace(q.Source)
	dst := strings.TrimSpace(q.Destination)
	if src == "" {
		return InvalidQueryError{Field: "source", Msg: "is required"}
	}
	if dst == "" {
		return InvalidQueryError{Field: "destination", Msg: "is required"}
	}
	if strings.EqualFold(src, dst) {
		return InvalidQueryError{Field: "destination", Msg: "must differ from source"}
	}

	date, err := utils.ParseDate(q.Date)
	if err != nil {
		return InvalidQueryError{Field: "journey_date", Msg: "must be YYYY-MM-DD"}
	}
	if date.Before(utils.StartOfDay(now)) {
		return InvalidQueryError{Field: "journey_date", Msg: "must be today or later"}
	}

	s.Query = &models.JourneyQuery{
		Source:      src,
		Destination: dst,
		Date:        utils.FormatDate(date),
	}
	s.clearBus()
	s.Stage = StageSelectBus
	return nil
}

// SelectBus attaches a freshly generated seat layout to the chosen
// offering and opens seat selection with nothing selected.
func (s *Session) SelectBus(bus models.Bus) error {
	if s.Stage != StageSelectBus {
		return ValidationError{Field: "stage", Msg: "select a bus after searching"}
	}

	layout, err := GenerateLayout(bus.Rows, bus.Cols)
	if err != nil {
		return err
	}

	b := bus
	s.Bus = &b
	s.Layout = layout
	s.Selected = []string{}
	s.Stage = StageSelectSeats
	return nil
}

// ToggleSeat adds the seat to the selection if absent and removes it
// if present. The code must belong to the current bus layout.
func (s *Session) ToggleSeat(code string) error {
	if s.Stage != StageSelectSeats || s.Layout == nil {
		return ValidationError{Field: "stage", Msg: "select a bus before choosing seats"}
	}

	code = NormalizeSeatCode(code)
	if !s.Layout.Has(code) {
		return UnknownSeatError{Code: code}
	}

	for i, sel := range s.Selected {
		if sel == code {
			s.Selected = append(s.Selected[:i], s.Selected[i+1:]...)
			return nil
		}
	}
	s.Selected = append(s.Selected, code)
	return nil
}

// Proceed moves from seat selection to payment. At least one seat
// must be selected.
func (s *Session) Proceed() error {
	if s.Stage != StageSelectSeats {
		return ValidationError{Field: "stage", Msg: "choose seats before proceeding"}
	}
	if len(s.Selected) == 0 {
		return ErrNoSeatsSelected
	}
	s.Stage = StagePayment
	return nil
}

// TotalFare is the running fare for the current selection.
func (s *Session) TotalFare() int64 {
	if s.Bus == nil {
		return 0
	}
	return utils.TotalFare(s.Bus.Fare, len(s.Selected))
}

// Confirm validates passenger details and the caller identity, builds
// the booking record, appends it through the store, and resets the
// session to the search stage with the bus and seats cleared. On any
// failure the session is left unchanged.
func (s *Session) Confirm(details models.PassengerDetails, user models.Identity, store BookingStore, now time.Time) (models.BookingRecord, error) {
	if s.Stage != StagePayment || s.Bus == nil || s.Query == nil {
		return models.BookingRecord{}, ValidationError{Field: "stage", Msg: "complete seat selection before confirming"}
	}

	if user.UserID <= 0 || user.IsAdmin() {
		return models.BookingRecord{}, ErrUnauthenticated
	}

	name := utils.NormalizeSpace(details.Name)
	email := strings.TrimSpace(details.Email)
	phone := strings.TrimSpace(details.Phone)
	switch {
	case name == "":
		return models.BookingRecord{}, IncompleteDetailsError{Field: "name"}
	case email == "":
		return models.BookingRecord{}, IncompleteDetailsError{Field: "email"}
	case phone == "":
		return models.BookingRecord{}, IncompleteDetailsError{Field: "phone"}
	}

	record := models.BookingRecord{
		UserID:      user.UserID,
		Name:        name,
		Email:       email,
		Phone:       phone,
		Source:      s.Query.Source,
		Destination: s.Query.Destination,
		JourneyDate: s.Query.Date,
		BusName:     s.Bus.Name,
		BusType:     s.Bus.Type,
		Seats:       strings.Join(s.Selected, ","),
		TotalFare:   utils.TotalFare(s.Bus.Fare, len(s.Selected)),
		CreatedAt:   utils.FormatDateTime(now),
	}

	saved, err := store.Append(record)
	if err != nil {
		return models.BookingRecord{}, PersistenceError{Op: "booking append", Err: err}
	}

	s.clearBus()
	s.Stage = StageSearch
	return saved, nil
}

// Snapshot is the JSON view of a session returned by every wizard
// endpoint.
type Snapshot struct {
	Stage     Stage                `json:"stage"`
	Query     *models.JourneyQuery `json:"journey,omitempty"`
	Bus       *models.Bus          `json:"bus,omitempty"`
	Seats     []models.Seat        `json:"seats,omitempty"`
	Selected  []string             `json:"selected_seats"`
	TotalFare int64                `json:"total_fare"`
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Stage:     s.Stage,
		Query:     s.Query,
		Bus:       s.Bus,
		Selected:  append([]string{}, s.Selected...),
		TotalFare: s.TotalFare(),
	}
	if s.Layout != nil {
		snap.Seats = append([]models.Seat{}, s.Layout.Seats...)
	}
	return snap
}
