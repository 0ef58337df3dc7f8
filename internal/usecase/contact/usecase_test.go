package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lawai/consult-backend/internal/entity"
	"github.com/lawai/consult-backend/internal/integration/notify"
	"github.com/lawai/consult-backend/internal/pkg/validator"
)

type stubConnector struct {
	got *entity.ContactRequest
	err error
}

func (s *stubConnector) Submit(_ context.Context, req *entity.ContactRequest) error {
	s.got = req
	return s.err
}

func TestSubmitTrimsAndDelivers(t *testing.T) {
	conn := &stubConnector{}
	uc := NewUsecase(conn, notify.Noop{}, validator.New(), zap.NewNop())

	err := uc.Submit(context.Background(), &entity.ContactRequest{
		Name:  "  王先生 ",
		Phone: " 0912345678 ",
		Text:  " 想諮詢押金問題 ",
	})
	require.NoError(t, err)
	require.NotNil(t, conn.got)
	assert.Equal(t, "王先生", conn.got.Name)
	assert.Equal(t, "0912345678", conn.got.Phone)
	assert.Equal(t, "想諮詢押金問題", conn.got.Text)
}

func TestSubmitRejectsInvalid(t *testing.T) {
	conn := &stubConnector{}
	uc := NewUsecase(conn, notify.Noop{}, validator.New(), zap.NewNop())

	err := uc.Submit(context.Background(), &entity.ContactRequest{Name: "王先生"})
	assert.ErrorIs(t, err, entity.ErrMissingContact)
	assert.Nil(t, conn.got)

	err = uc.Submit(context.Background(), &entity.ContactRequest{Name: "王先生", Phone: "123"})
	assert.ErrorIs(t, err, entity.ErrInvalidPhone)
}

func TestSubmitPropagatesConnectorError(t *testing.T) {
	conn := &stubConnector{err: errors.New("relay down")}
	uc := NewUsecase(conn, notify.Noop{}, validator.New(), zap.NewNop())

	err := uc.Submit(context.Background(), &entity.ContactRequest{Name: "王先生", Line: "wang123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relay down")
}
