package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"scholarstream/contexts/admissions/scholarship-service/domain/entities"
	domainerrors "scholarstream/contexts/admissions/scholarship-service/domain/errors"
)

type Store struct {
	mu sync.RWMutex

	scholarships map[string]entities.Scholarship
}

func NewStore(seed []entities.Scholarship) *Store {
	scholarships := make(map[string]entities.Scholarship, len(seed))
	for _, item := range seed {
		scholarships[item.ScholarshipID] = item
	}
	return &Store{scholarships: scholarships}
}

func (s *Store) CreateScholarship(_ context.Context, scholarship entities.Scholarship) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scholarships[scholarship.ScholarshipID] = scholarship
	return nil
}

func (s *Store) GetScholarship(_ context.Context, scholarshipID string) (entities.Scholarship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.scholarships[strings.TrimSpace(scholarshipID)]
	if !ok {
		return entities.Scholarship{}, domainerrors.ErrScholarshipNotFound
	}
	return item, nil
}

func (s *Store) ListScholarships(_ context.Context) ([]entities.Scholarship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Scholarship, 0, len(s.scholarships))
	for _, item := range s.scholarships {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// Delete removes a scholarship. Tests use it to simulate catalog removals.
func (s *Store) Delete(scholarshipID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.scholarships, scholarshipID)
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
