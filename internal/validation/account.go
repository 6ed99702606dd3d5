package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/utils"
)

// ValidateAccountID checks the shape of an account id. It does not check
// whether the account exists.
func ValidateAccountID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("account id can't be empty")
	}
	if len(id) > constants.MaxAccountIDLen {
		return fmt.Errorf("account id too long (max %d characters)", constants.MaxAccountIDLen)
	}

	for _, r := range id {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(constants.AccountIDChars, r) {
			continue
		}
		return fmt.Errorf("account id '%s' contains invalid character %q", id, r)
	}
	return nil
}

// ValidateOptionalAccountID accepts an empty input, which means "generate one".
func ValidateOptionalAccountID(val string) error {
	if strings.TrimSpace(val) == "" {
		return nil
	}
	return ValidateAccountID(strings.TrimSpace(val))
}

// ValidateCounterparty returns a validator that rejects the sender's own id.
func ValidateCounterparty(from string) func(string) error {
	return func(val string) error {
		val = strings.TrimSpace(val)
		if err := ValidateAccountID(val); err != nil {
			return err
		}
		if val == from {
			return fmt.Errorf("can't transfer to the same account")
		}
		return nil
	}
}

// ValidateAmountInput validates a transfer amount typed by the user.
func ValidateAmountInput(scale int32) func(string) error {
	return func(val string) error {
		amount, err := utils.ParseAmount(val)
		if err != nil {
			return err
		}
		if !amount.IsPositive() {
			return fmt.Errorf("amount must be > 0")
		}
		if !utils.FitsScale(amount, scale) {
			return fmt.Errorf("amount has more than %d decimal places", scale)
		}
		if len(amount.Coefficient().String()) > constants.MaxAmountDigits {
			return fmt.Errorf("amount too large")
		}
		return nil
	}
}

// ValidateInitialBalance validates an opening balance. Empty means zero.
func ValidateInitialBalance(scale int32) func(string) error {
	return func(val string) error {
		val = strings.TrimSpace(val)
		if val == "" || val == "0" {
			return nil
		}

		amount, err := utils.ParseAmount(val)
		if err != nil {
			return err
		}
		if amount.IsNegative() {
			return fmt.Errorf("initial balance can't be negative")
		}
		if !utils.FitsScale(amount, scale) {
			return fmt.Errorf("initial balance has more than %d decimal places", scale)
		}
		return nil
	}
}
