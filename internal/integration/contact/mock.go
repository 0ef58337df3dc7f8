package contact

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/lawai/consult-backend/internal/entity"
)

// MockConnector accepts every submission without calling the mail relay.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Submit(ctx context.Context, req *entity.ContactRequest) error {
	ctxzap.Info(ctx, "[MOCK] contact request accepted", zap.String("name", req.Name))
	return nil
}
