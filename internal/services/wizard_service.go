package services

import (
	"sync"
	"time"

	"bluebus/internal/catalog"
	"bluebus/internal/domain"
	"bluebus/internal/domain/models"
	"bluebus/internal/repositories"
)

// WizardService owns one booking Session per user and dispatches
// explicit wizard commands to it. Each command returns the new session
// snapshot so handlers never reach into session internals.
type WizardService struct {
	Catalog  catalog.Catalog
	Bookings repositories.BookingRepository

	mu       sync.Mutex
	sessions map[int64]*domain.Session
}

func NewWizardService(cat catalog.Catalog, bookings repositories.BookingRepository) *WizardService {
	return &WizardService{
		Catalog:  cat,
		Bookings: bookings,
		sessions: make(map[int64]*domain.Session),
	}
}

// session returns the caller's session, creating it on first use.
// The per-session command itself runs under the store lock; sessions
// are tiny and commands never block on I/O except booking append.
func (s *WizardService) session(userID int64) *domain.Session {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = domain.NewSession()
		s.sessions[userID] = sess
	}
	return sess
}

func (s *WizardService) Snapshot(user models.Identity) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(user.UserID).Snapshot()
}

func (s *WizardService) Search(user models.Identity, q models.JourneyQuery) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(user.UserID)
	if err := sess.Search(q, time.Now()); err != nil {
		return sess.Snapshot(), err
	}
	return sess.Snapshot(), nil
}

func (s *WizardService) SelectBus(user models.Identity, busName string) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(user.UserID)
	bus, ok := s.Catalog.FindBus(busName)
	if !ok {
		return sess.Snapshot(), domain.NotFoundError{Resource: "bus"}
	}
	if err := sess.SelectBus(bus); err != nil {
		return sess.Snapshot(), err
	}
	return sess.Snapshot(), nil
}

func (s *WizardService) ToggleSeat(user models.Identity, seatCode string) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(user.UserID)
	if err := sess.ToggleSeat(seatCode); err != nil {
		return sess.Snapshot(), err
	}
	return sess.Snapshot(), nil
}

func (s *WizardService) Proceed(user models.Identity) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(user.UserID)
	if err := sess.Proceed(); err != nil {
		return sess.Snapshot(), err
	}
	return sess.Snapshot(), nil
}

// Confirm runs the payment-stage transition: validate details, build
// the record, append it through the booking repository, reset the
// session. The record is returned alongside the fresh snapshot.
func (s *WizardService) Confirm(user models.Identity, details models.PassengerDetails) (models.BookingRecord, domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(user.UserID)
	record, err := sess.Confirm(details, user, s.Bookings, time.Now())
	if err != nil {
		return models.BookingRecord{}, sess.Snapshot(), err
	}
	return record, sess.Snapshot(), nil
}

// Reset clears the caller's session entirely (logout or start over).
func (s *WizardService) Reset(user models.Identity) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(user.UserID)
	sess.Reset()
	return sess.Snapshot()
}
