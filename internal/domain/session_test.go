package domain

import (
	"errors"
	"testing"
	"time"

	"bluebus/internal/domain/models"
	"bluebus/internal/utils"
)

type fakeStore struct {
	records []models.BookingRecord
	err     error
}

func (f *fakeStore) Append(r models.BookingRecord) (models.BookingRecord, error) {
	if f.err != nil {
		return models.BookingRecord{}, f.err
	}
	r.ID = int64(len(f.records) + 1)
	f.records = append(f.records, r)
	return r, nil
}

func futureDate() string {
	return utils.FormatDate(time.Now().AddDate(0, 0, 7))
}

func royalExpress() models.Bus {
	return models.Bus{Name: "Royal Express", Type: "AC Sleeper", Rows: 5, Cols: 6, Fare: 1200}
}

func passenger() models.Identity {
	return models.Identity{UserID: 1, Username: "asha", Role: models.RoleUser}
}

func sessionAtSeats(t *testing.T) *Session {
	t.Helper()
	s := NewSession()
	q := models.JourneyQuery{Source: "Delhi", Destination: "Mumbai", Date: futureDate()}
	if err := s.Search(q, time.Now()); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if err := s.SelectBus(royalExpress()); err != nil {
		t.Fatalf("select bus failed: %v", err)
	}
	return s
}

func TestSearchRejectsSameSourceAndDestination(t *testing.T) {
	s := NewSession()
	q := models.JourneyQuery{Source: "Delhi", Destination: "Delhi", Date: futureDate()}
	err := s.Search(q, time.Now())
	if !IsInvalidQuery(err) {
		t.Fatalf("got %v, want InvalidQueryError", err)
	}
	if s.Stage != StageSearch {
		t.Fatalf("stage changed to %s on failed search", s.Stage)
	}
	if s.Query != nil {
		t.Fatalf("query stored despite failed search")
	}
}

func TestSearchRejectsPastDate(t *testing.T) {
	s := NewSession()
	q := models.JourneyQuery{
		Source:      "Delhi",
		Destination: "Mumbai",
		Date:        utils.FormatDate(time.Now().AddDate(0, 0, -1)),
	}
	if err := s.Search(q, time.Now()); !IsInvalidQuery(err) {
		t.Fatalf("got %v, want InvalidQueryError", err)
	}
}

func TestSearchAcceptsToday(t *testing.T) {
	s := NewSession()
	q := models.JourneyQuery{Source: "Delhi", Destination: "Mumbai", Date: utils.FormatDate(time.Now())}
	if err := s.Search(q, time.Now()); err != nil {
		t.Fatalf("today should be a valid journey date, got %v", err)
	}
	if s.Stage != StageSelectBus {
		t.Fatalf("stage = %s, want %s", s.Stage, StageSelectBus)
	}
}

func TestToggleSeatTwiceRestoresSelection(t *testing.T) {
	s := sessionAtSeats(t)

	if err := s.ToggleSeat("A1"); err != nil {
		t.Fatalf("toggle on failed: %v", err)
	}
	if len(s.Selected) != 1 || s.Selected[0] != "A1" {
		t.Fatalf("selection after first toggle: %v", s.Selected)
	}
	if err := s.ToggleSeat("A1"); err != nil {
		t.Fatalf("toggle off failed: %v", err)
	}
	if len(s.Selected) != 0 {
		t.Fatalf("selection should be empty after toggle pair, got %v", s.Selected)
	}
}

func TestToggleUnknownSeat(t *testing.T) {
	s := sessionAtSeats(t)
	err := s.ToggleSeat("Z9")
	if !IsUnknownSeat(err) {
		t.Fatalf("got %v, want UnknownSeatError", err)
	}
	if len(s.Selected) != 0 {
		t.Fatalf("selection mutated by failed toggle: %v", s.Selected)
	}
}

func TestSelectionStaysSubsetOfLayout(t *testing.T) {
	s := sessionAtSeats(t)

	toggles := []string{"A1", "B3", "A1", "C2", "b3", "E6", "c2", "A2"}
	for _, code := range toggles {
		if err := s.ToggleSeat(code); err != nil {
			t.Fatalf("toggle %s failed: %v", code, err)
		}
		for _, sel := range s.Selected {
			if !s.Layout.Has(sel) {
				t.Fatalf("selected %s not in layout after toggling %s", sel, code)
			}
		}
	}
	// A1, B3, C2 toggled twice; E6 and A2 remain.
	if len(s.Selected) != 2 {
		t.Fatalf("selection = %v, want [E6 A2]", s.Selected)
	}
}

func TestProceedRequiresSelection(t *testing.T) {
	s := sessionAtSeats(t)

	if err := s.Proceed(); !errors.Is(err, ErrNoSeatsSelected) {
		t.Fatalf("got %v, want ErrNoSeatsSelected", err)
	}
	if s.Stage != StageSelectSeats {
		t.Fatalf("stage changed to %s on failed proceed", s.Stage)
	}

	if err := s.ToggleSeat("A1"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if err := s.Proceed(); err != nil {
		t.Fatalf("proceed with selection failed: %v", err)
	}
	if s.Stage != StagePayment {
		t.Fatalf("stage = %s, want %s", s.Stage, StagePayment)
	}
}

func TestConfirmEndToEnd(t *testing.T) {
	s := NewSession()
	store := &fakeStore{}

	q := models.JourneyQuery{Source: "Delhi", Destination: "Mumbai", Date: futureDate()}
	if err := s.Search(q, time.Now()); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if err := s.SelectBus(royalExpress()); err != nil {
		t.Fatalf("select bus failed: %v", err)
	}
	for _, code := range []string{"A1", "A2"} {
		if err := s.ToggleSeat(code); err != nil {
			t.Fatalf("toggle %s failed: %v", code, err)
		}
	}
	if err := s.Proceed(); err != nil {
		t.Fatalf("proceed failed: %v", err)
	}

	details := models.PassengerDetails{Name: "Asha", Email: "a@x.com", Phone: "9999999999"}
	record, err := s.Confirm(details, passenger(), store, time.Now())
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	if record.TotalFare != 2400 {
		t.Fatalf("total fare = %d, want 2400", record.TotalFare)
	}
	if record.Seats != "A1,A2" {
		t.Fatalf("seats = %q, want \"A1,A2\"", record.Seats)
	}
	if record.BusName != "Royal Express" || record.BusType != "AC Sleeper" {
		t.Fatalf("bus fields wrong: %q %q", record.BusName, record.BusType)
	}
	if record.Source != "Delhi" || record.Destination != "Mumbai" {
		t.Fatalf("journey fields wrong: %q %q", record.Source, record.Destination)
	}
	if record.UserID != 1 {
		t.Fatalf("user id = %d, want 1", record.UserID)
	}
	if len(store.records) != 1 {
		t.Fatalf("store has %d records, want 1", len(store.records))
	}

	if s.Stage != StageSearch {
		t.Fatalf("stage = %s after confirm, want %s", s.Stage, StageSearch)
	}
	if s.Bus != nil || s.Layout != nil || len(s.Selected) != 0 {
		t.Fatalf("bus/seats not cleared after confirm")
	}
}

func TestConfirmIncompleteDetails(t *testing.T) {
	s := sessionAtSeats(t)
	store := &fakeStore{}
	if err := s.ToggleSeat("A1"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if err := s.Proceed(); err != nil {
		t.Fatalf("proceed failed: %v", err)
	}

	details := models.PassengerDetails{Name: "Asha", Email: "", Phone: "9999999999"}
	_, err := s.Confirm(details, passenger(), store, time.Now())
	if !IsIncompleteDetails(err) {
		t.Fatalf("got %v, want IncompleteDetailsError", err)
	}
	if s.Stage != StagePayment {
		t.Fatalf("stage = %s on failed confirm, want %s", s.Stage, StagePayment)
	}
	if len(store.records) != 0 {
		t.Fatalf("record persisted despite incomplete details")
	}
}

func TestConfirmRejectsAdminAndAnonymous(t *testing.T) {
	details := models.PassengerDetails{Name: "Asha", Email: "a@x.com", Phone: "9999999999"}
	for _, user := range []models.Identity{
		{UserID: 2, Username: "root", Role: models.RoleAdmin},
		{},
	} {
		s := sessionAtSeats(t)
		store := &fakeStore{}
		if err := s.ToggleSeat("A1"); err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
		if err := s.Proceed(); err != nil {
			t.Fatalf("proceed failed: %v", err)
		}
		if _, err := s.Confirm(details, user, store, time.Now()); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("identity %+v: got %v, want ErrUnauthenticated", user, err)
		}
		if s.Stage != StagePayment {
			t.Fatalf("stage changed on rejected confirm")
		}
	}
}

func TestConfirmPersistenceFailureLeavesStage(t *testing.T) {
	s := sessionAtSeats(t)
	store := &fakeStore{err: errors.New("db down")}
	if err := s.ToggleSeat("A1"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if err := s.Proceed(); err != nil {
		t.Fatalf("proceed failed: %v", err)
	}

	details := models.PassengerDetails{Name: "Asha", Email: "a@x.com", Phone: "9999999999"}
	_, err := s.Confirm(details, passenger(), store, time.Now())
	if !IsPersistence(err) {
		t.Fatalf("got %v, want PersistenceError", err)
	}
	if s.Stage != StagePayment {
		t.Fatalf("stage = %s, want %s (unchanged)", s.Stage, StagePayment)
	}
	if s.Bus == nil || len(s.Selected) != 1 {
		t.Fatalf("selection cleared despite failed confirm")
	}
}

func TestNewSearchDiscardsSelection(t *testing.T) {
	s := sessionAtSeats(t)
	if err := s.ToggleSeat("A1"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	q := models.JourneyQuery{Source: "Chennai", Destination: "Hyderabad", Date: futureDate()}
	if err := s.Search(q, time.Now()); err != nil {
		t.Fatalf("second search failed: %v", err)
	}
	if s.Stage != StageSelectBus {
		t.Fatalf("stage = %s, want %s", s.Stage, StageSelectBus)
	}
	if s.Bus != nil || s.Layout != nil || len(s.Selected) != 0 {
		t.Fatalf("previous selection survived a new search")
	}
	if s.Query.Source != "Chennai" {
		t.Fatalf("query not replaced: %+v", s.Query)
	}
}

func TestResetClearsEverything(t *testing.T) {
	s := sessionAtSeats(t)
	if err := s.ToggleSeat("A1"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	s.Reset()
	if s.Stage != StageSearch || s.Query != nil || s.Bus != nil || s.Layout != nil || s.Selected != nil {
		t.Fatalf("reset left state behind: %+v", s)
	}
}

func TestWrongStageTransitions(t *testing.T) {
	s := NewSession()
	if err := s.SelectBus(royalExpress()); !IsValidation(err) {
		t.Fatalf("select bus from search stage: got %v, want ValidationError", err)
	}
	if err := s.ToggleSeat("A1"); !IsValidation(err) {
		t.Fatalf("toggle from search stage: got %v, want ValidationError", err)
	}
	if err := s.Proceed(); !IsValidation(err) {
		t.Fatalf("proceed from search stage: got %v, want ValidationError", err)
	}
	details := models.PassengerDetails{Name: "Asha", Email: "a@x.com", Phone: "9999999999"}
	if _, err := s.Confirm(details, passenger(), &fakeStore{}, time.Now()); !IsValidation(err) {
		t.Fatalf("confirm from search stage: got %v, want ValidationError", err)
	}
}
