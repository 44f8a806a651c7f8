package ports

import (
	"context"

	"github.com/mariia-hub/bookingcore/internal/domain"
)

type ServiceRepo interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
}
