package contact

import (
	"context"
	"errors"
	"net/http"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/lawai/consult-backend/internal/config"
	"github.com/lawai/consult-backend/internal/entity"
	"github.com/lawai/consult-backend/internal/integration/common"
	pkghttp "github.com/lawai/consult-backend/pkg/http"
)

// Connector forwards lawyer-contact submissions to the mail relay service.
type Connector struct {
	config    config.ContactConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.ContactConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Submit delivers one contact request. Transport failures are retried,
// upstream rejections are not.
func (c *Connector) Submit(ctx context.Context, req *entity.ContactRequest) error {
	ctxzap.Info(ctx, "submitting contact request to mail relay")

	opts := append(
		c.config.Retry.ToRetryOptions(),
		retry.Context(ctx),
		retry.RetryIf(func(err error) bool {
			var netErr *pkghttp.NetworkError
			return errors.As(err, &netErr)
		}),
	)

	err := retry.Do(func() error {
		return c.connector.DoRequest(ctx, http.MethodPost, c.config.SubmitEndpoint, req, nil)
	}, opts...)
	if err != nil {
		return err
	}

	ctxzap.Info(ctx, "contact request submitted", zap.String("name", req.Name))
	return nil
}
