package prompts

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/utils"
)

// PromptAccountID prompts for a new account id. Empty input lets the ledger
// generate one.
func PromptAccountID(validator func(string) error) (string, error) {
	id, err := PromptInput("Account ID (leave empty to generate):", "", validator)
	return strings.TrimSpace(id), err
}

// PromptOpeningBalance prompts for the balance a new account starts with.
func PromptOpeningBalance(validator func(string) error) (string, error) {
	return PromptInput("Opening balance:", "0", validator)
}

// PromptSelectAccount lets the user pick one of accounts, skipping exclude.
func PromptSelectAccount(message string, accounts []*model.Account, exclude string, scale int32) (string, error) {
	var options []string
	for _, acc := range accounts {
		if acc.ID == exclude {
			continue
		}
		options = append(options, acc.ID)
	}
	if len(options) == 0 {
		return "", fmt.Errorf("no accounts to choose from")
	}

	var selected string
	prompt := &survey.Select{
		Message: message,
		Options: options,
		Description: balanceDescription(accounts, scale),
	}
	if err := survey.AskOne(prompt, &selected, ui.IconOption(), ui.PageSizeOption(10)); err != nil {
		return "", err
	}

	return selected, nil
}

// balanceDescription shows each option's balance next to its id.
func balanceDescription(accounts []*model.Account, scale int32) func(string, int) string {
	return func(value string, _ int) string {
		for _, acc := range accounts {
			if acc.ID == value {
				return utils.FormatAmount(acc.Balance, scale)
			}
		}
		return ""
	}
}
