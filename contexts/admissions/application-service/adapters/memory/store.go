package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"scholarstream/contexts/admissions/application-service/domain/entities"
	domainerrors "scholarstream/contexts/admissions/application-service/domain/errors"
	"scholarstream/contexts/admissions/application-service/domain/services"
	"scholarstream/contexts/admissions/application-service/ports"
)

// Store is an in-memory application repository. The mutex stands in for the
// database's row-level atomicity: each method is one atomic step.
type Store struct {
	mu sync.RWMutex

	applications map[string]entities.Application
	byKey        map[applicationKey]string
}

type applicationKey struct {
	scholarshipID string
	userID        string
}

func NewStore(seed []entities.Application) *Store {
	store := &Store{
		applications: make(map[string]entities.Application, len(seed)),
		byKey:        make(map[applicationKey]string, len(seed)),
	}
	for _, item := range seed {
		store.applications[item.ApplicationID] = item
		store.byKey[keyOf(item)] = item.ApplicationID
	}
	return store
}

func keyOf(item entities.Application) applicationKey {
	return applicationKey{
		scholarshipID: strings.TrimSpace(item.ScholarshipID),
		userID:        strings.TrimSpace(item.UserID),
	}
}

func (s *Store) GetApplication(_ context.Context, applicationID string) (entities.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.applications[strings.TrimSpace(applicationID)]
	if !ok {
		return entities.Application{}, domainerrors.ErrApplicationNotFound
	}
	return item, nil
}

func (s *Store) FindApplication(_ context.Context, scholarshipID string, userID string) (entities.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byKey[applicationKey{scholarshipID: strings.TrimSpace(scholarshipID), userID: strings.TrimSpace(userID)}]
	if !ok {
		return entities.Application{}, domainerrors.ErrApplicationNotFound
	}
	return s.applications[id], nil
}

func (s *Store) ListApplications(_ context.Context, filter ports.ApplicationFilter) ([]entities.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email := strings.ToLower(strings.TrimSpace(filter.UserEmail))
	items := make([]entities.Application, 0)
	for _, item := range s.applications {
		if email != "" && !strings.EqualFold(item.UserEmail, email) {
			continue
		}
		if filter.Status != "" && item.ApplicationStatus != filter.Status {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].ApplicationDate.Equal(items[j].ApplicationDate) {
			return items[i].ApplicationID < items[j].ApplicationID
		}
		return items[i].ApplicationDate.After(items[j].ApplicationDate)
	})
	return items, nil
}

func (s *Store) UpsertPaid(_ context.Context, paid entities.Application) (entities.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := keyOf(paid)
	if id, ok := s.byKey[key]; ok {
		merged := services.MergePaid(s.applications[id], paid)
		s.applications[id] = merged
		return merged, nil
	}
	s.applications[paid.ApplicationID] = paid
	s.byKey[key] = paid.ApplicationID
	return paid, nil
}

func (s *Store) InsertPendingIfAbsent(_ context.Context, pending entities.Application) (entities.Application, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := keyOf(pending)
	if id, ok := s.byKey[key]; ok {
		return s.applications[id], false, nil
	}
	s.applications[pending.ApplicationID] = pending
	s.byKey[key] = pending.ApplicationID
	return pending, true, nil
}

func (s *Store) UpdatePendingDetails(_ context.Context, applicationID string, details entities.ApplicantDetails, updatedAt time.Time) (entities.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.pendingLocked(applicationID)
	if err != nil {
		return entities.Application{}, err
	}
	item.Applicant = details
	item.UpdatedAt = updatedAt
	s.applications[item.ApplicationID] = item
	return item, nil
}

func (s *Store) DeletePending(_ context.Context, applicationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.pendingLocked(applicationID)
	if err != nil {
		return err
	}
	delete(s.applications, item.ApplicationID)
	delete(s.byKey, keyOf(item))
	return nil
}

func (s *Store) UpdateStatus(
	_ context.Context,
	applicationID string,
	from entities.ApplicationStatus,
	to entities.ApplicationStatus,
	updatedAt time.Time,
) (entities.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.applications[strings.TrimSpace(applicationID)]
	if !ok {
		return entities.Application{}, domainerrors.ErrApplicationNotFound
	}
	if item.ApplicationStatus != from {
		return entities.Application{}, fmt.Errorf("%w: status changed concurrently", domainerrors.ErrInvalidStatusTransition)
	}
	item.ApplicationStatus = to
	item.UpdatedAt = updatedAt
	s.applications[item.ApplicationID] = item
	return item, nil
}

func (s *Store) UpdateFeedback(_ context.Context, applicationID string, feedback string, updatedAt time.Time) (entities.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.applications[strings.TrimSpace(applicationID)]
	if !ok {
		return entities.Application{}, domainerrors.ErrApplicationNotFound
	}
	item.Feedback = feedback
	item.UpdatedAt = updatedAt
	s.applications[item.ApplicationID] = item
	return item, nil
}

// Count returns the number of stored applications.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.applications)
}

func (s *Store) pendingLocked(applicationID string) (entities.Application, error) {
	item, ok := s.applications[strings.TrimSpace(applicationID)]
	if !ok {
		return entities.Application{}, domainerrors.ErrApplicationNotFound
	}
	if item.ApplicationStatus != entities.ApplicationStatusPending {
		return entities.Application{}, domainerrors.ErrApplicationLocked
	}
	return item, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
