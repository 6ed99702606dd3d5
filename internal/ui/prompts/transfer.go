package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/validation"
)

type TransferInput struct {
	From   string
	To     string
	Amount string
}

// PromptTransfer fills in whatever part of a transfer the command line left
// out. Known values are kept as-is.
func PromptTransfer(in TransferInput, accounts []*model.Account, scale int32) (TransferInput, error) {
	out := in

	if out.From == "" {
		from, err := PromptSelectAccount("Send from:", accounts, "", scale)
		if err != nil {
			return out, err
		}
		out.From = from
	}

	var fields []huh.Field
	if out.To == "" {
		fields = append(fields, huh.NewInput().
			Title("Send to (account ID):").
			Validate(validation.ValidateCounterparty(out.From)).
			Value(&out.To))
	}
	if out.Amount == "" {
		fields = append(fields, huh.NewInput().
			Title("Amount:").
			Description("e.g. 150 or 12.50").
			Validate(validation.ValidateAmountInput(scale)).
			Value(&out.Amount))
	}

	if len(fields) > 0 {
		if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
			return out, err
		}
	}

	out.To = strings.TrimSpace(out.To)
	out.Amount = strings.TrimSpace(out.Amount)
	return out, nil
}
