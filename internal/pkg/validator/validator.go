package validator

import (
	"fmt"
	"strings"

	"github.com/lawai/consult-backend/internal/entity"
)

// Validator validates inbound API requests before they reach the use cases.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateSubmitInput validates the initial problem description.
func (v *Validator) ValidateSubmitInput(req *entity.SubmitInputRequest) error {
	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("%w: text", entity.ErrMissingField)
	}
	return nil
}

// ValidateSelectLegalPath validates a disambiguation path selection.
func (v *Validator) ValidateSelectLegalPath(req *entity.SelectLegalPathRequest) error {
	if strings.TrimSpace(req.Key) == "" {
		return fmt.Errorf("%w: key", entity.ErrMissingField)
	}
	return nil
}

// ValidateConfirmScenario checks the option index range; the "selected or
// custom" precondition itself belongs to the state machine.
func (v *Validator) ValidateConfirmScenario(req *entity.ConfirmScenarioRequest) error {
	if req.SelectedIndex != nil && (*req.SelectedIndex < 0 || *req.SelectedIndex >= entity.OptionCount) {
		return fmt.Errorf("%w: selected_index out of range", entity.ErrInvalidParameter)
	}
	return nil
}

// ValidateSubmitAnswer checks the option index range for a follow-up answer.
func (v *Validator) ValidateSubmitAnswer(req *entity.SubmitAnswerRequest) error {
	if req.SelectedIndex != nil && (*req.SelectedIndex < 0 || *req.SelectedIndex >= entity.OptionCount) {
		return fmt.Errorf("%w: selected_index out of range", entity.ErrInvalidParameter)
	}
	return nil
}

// ValidateRestart requires the explicit confirmation flag; restart discards
// the whole session and must never fire implicitly.
func (v *Validator) ValidateRestart(req *entity.RestartRequest) error {
	if !req.Confirm {
		return entity.ErrConfirmRequired
	}
	return nil
}

// ValidateDisclaimer requires an explicit acknowledgment.
func (v *Validator) ValidateDisclaimer(req *entity.DisclaimerRequest) error {
	if !req.Accepted {
		return entity.ErrConfirmRequired
	}
	return nil
}

// ValidateContact gates lawyer-contact submissions: a name plus at least one
// of phone or LINE ID, and a well-formed Taiwanese phone number when given.
func (v *Validator) ValidateContact(req *entity.ContactRequest) error {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	line := strings.TrimSpace(req.Line)

	if name == "" || (phone == "" && line == "") {
		return entity.ErrMissingContact
	}
	if phone != "" && !ValidTaiwanPhone(phone) {
		return entity.ErrInvalidPhone
	}
	return nil
}
