package constants

const (
	MaxAccountIDLen = 64
	// AccountIDChars are the runes allowed in an account id besides letters
	// and digits.
	AccountIDChars = "-_."
)

const (
	DefaultAmountScale = 2
	MaxAmountDigits    = 18
)
