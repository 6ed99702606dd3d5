package constants

const (
	DateTimeFormat = "2006-01-02 15:04:05"

	DefaultListRows = 20
)
