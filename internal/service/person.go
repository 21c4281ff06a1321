package service

import (
	"context"

	"github.com/emrgen/logbook/internal/model"
	"github.com/emrgen/logbook/internal/store"
	"github.com/google/uuid"
)

// PersonService manages the people that journal links can point at.
type PersonService struct {
	store store.Store
}

func NewPersonService(s store.Store) *PersonService {
	return &PersonService{store: s}
}

// CreatePerson creates a person owned by ownerID.
func (s *PersonService) CreatePerson(ctx context.Context, ownerID, fullName, shortBio string, visibility model.Visibility) (*model.Person, error) {
	person := &model.Person{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		FullName:   fullName,
		ShortBio:   shortBio,
		Visibility: visibility,
	}
	if err := s.store.CreatePerson(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

// GetPerson retrieves one person by id.
func (s *PersonService) GetPerson(ctx context.Context, id string) (*model.Person, error) {
	ref, err := model.ParsePersonRef(id)
	if err != nil {
		return nil, err
	}
	return s.store.GetPerson(ctx, ref.String())
}

// ListPersons retrieves the persons visible to ownerID: their own plus
// any shared globally.
func (s *PersonService) ListPersons(ctx context.Context, ownerID string) ([]*model.Person, error) {
	return s.store.ListVisiblePersons(ctx, ownerID, model.VisibilityGlobal)
}
