package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/lawai/consult-backend/internal/entity"
	"github.com/lawai/consult-backend/internal/integration/notify"
	"github.com/lawai/consult-backend/internal/pkg/validator"
)

// ContactUsecase forwards lawyer-contact submissions to the mail relay and
// announces them on the notification channel.
type ContactUsecase struct {
	connector ContactConnector
	notifier  notify.Notifier
	validator *validator.Validator
	logger    *zap.Logger
}

func NewUsecase(
	connector ContactConnector,
	notifier notify.Notifier,
	validator *validator.Validator,
	logger *zap.Logger,
) *ContactUsecase {
	return &ContactUsecase{
		connector: connector,
		notifier:  notifier,
		validator: validator,
		logger:    logger,
	}
}

// Submit validates and delivers one contact request. The notification is
// best-effort and never fails the submission.
func (uc *ContactUsecase) Submit(ctx context.Context, req *entity.ContactRequest) error {
	if err := uc.validator.ValidateContact(req); err != nil {
		return err
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Line = strings.TrimSpace(req.Line)
	req.Text = strings.TrimSpace(req.Text)

	if err := uc.connector.Submit(ctx, req); err != nil {
		return fmt.Errorf("submit contact request: %w", err)
	}

	uc.notifier.NotifyContact(ctx, req)

	ctxzap.Info(ctx, "contact request delivered", zap.String("name", req.Name))

	return nil
}
