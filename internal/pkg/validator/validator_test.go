package validator

import (
	"testing"

	"github.com/lawai/consult-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestValidateSubmitInput(t *testing.T) {
	v := New()
	assert.NoError(t, v.ValidateSubmitInput(&entity.SubmitInputRequest{Text: "我租的房子房東不退押金"}))
	assert.ErrorIs(t, v.ValidateSubmitInput(&entity.SubmitInputRequest{Text: "  "}), entity.ErrMissingField)
}

func TestValidateSubmitAnswerIndexRange(t *testing.T) {
	v := New()
	assert.NoError(t, v.ValidateSubmitAnswer(&entity.SubmitAnswerRequest{SelectedIndex: intPtr(0)}))
	assert.NoError(t, v.ValidateSubmitAnswer(&entity.SubmitAnswerRequest{SelectedIndex: intPtr(2)}))
	assert.NoError(t, v.ValidateSubmitAnswer(&entity.SubmitAnswerRequest{CustomText: "自行補充"}))

	assert.ErrorIs(t, v.ValidateSubmitAnswer(&entity.SubmitAnswerRequest{SelectedIndex: intPtr(3)}), entity.ErrInvalidParameter)
	assert.ErrorIs(t, v.ValidateSubmitAnswer(&entity.SubmitAnswerRequest{SelectedIndex: intPtr(-1)}), entity.ErrInvalidParameter)
}

func TestValidateRestartRequiresConfirmation(t *testing.T) {
	v := New()
	assert.ErrorIs(t, v.ValidateRestart(&entity.RestartRequest{}), entity.ErrConfirmRequired)
	assert.NoError(t, v.ValidateRestart(&entity.RestartRequest{Confirm: true}))
}

func TestValidateDisclaimerRequiresAcceptance(t *testing.T) {
	v := New()
	assert.ErrorIs(t, v.ValidateDisclaimer(&entity.DisclaimerRequest{}), entity.ErrConfirmRequired)
	assert.NoError(t, v.ValidateDisclaimer(&entity.DisclaimerRequest{Accepted: true}))
}

func TestValidateContact(t *testing.T) {
	v := New()

	require.NoError(t, v.ValidateContact(&entity.ContactRequest{Name: "王先生", Phone: "0912345678"}))
	require.NoError(t, v.ValidateContact(&entity.ContactRequest{Name: "王先生", Line: "wang123"}))

	assert.ErrorIs(t, v.ValidateContact(&entity.ContactRequest{Phone: "0912345678"}), entity.ErrMissingContact)
	assert.ErrorIs(t, v.ValidateContact(&entity.ContactRequest{Name: "王先生"}), entity.ErrMissingContact)
	assert.ErrorIs(t, v.ValidateContact(&entity.ContactRequest{Name: "王先生", Phone: "12345"}), entity.ErrInvalidPhone)
}
