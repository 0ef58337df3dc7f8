package contact

import (
	"context"

	"github.com/lawai/consult-backend/internal/entity"
)

type ContactUsecase interface {
	Submit(ctx context.Context, req *entity.ContactRequest) error
}
