package army

import (
	"context"
	"fmt"
)

// CompositionStore — то, что умеет делать хранилище композиций.
// Implemented by the PostgreSQL repository.
type CompositionStore interface {
	Save(ctx context.Context, owner string, p SavePayload) error
}

// CompositionService связывает валидатор и хранилище: payload персистится
// только после полного прохождения валидации, так что отклонённое
// сохранение гарантированно не оставляет частичных записей.
type CompositionService struct {
	validator *Validator
	store     CompositionStore
}

// NewCompositionService создаёт сервис сохранения композиций.
func NewCompositionService(v *Validator, store CompositionStore) *CompositionService {
	return &CompositionService{validator: v, store: store}
}

// Save валидирует payload и сохраняет его от имени owner.
// Rejections come back as-is; storage failures are wrapped.
func (s *CompositionService) Save(ctx context.Context, owner string, p SavePayload) (SavePayload, error) {
	validated, err := s.validator.Validate(p)
	if err != nil {
		return SavePayload{}, err
	}
	if err := s.store.Save(ctx, owner, validated); err != nil {
		return SavePayload{}, fmt.Errorf("persisting composition %s: %w", validated.ID, err)
	}
	return validated, nil
}
