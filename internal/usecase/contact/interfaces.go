package contact

import (
	"context"

	"github.com/lawai/consult-backend/internal/entity"
)

type ContactConnector interface {
	Submit(ctx context.Context, req *entity.ContactRequest) error
}
