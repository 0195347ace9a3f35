package logger

// Exported for white-box tests of the error formatting.
var (
	CollectErrorMessages = collectErrorMessages
	FormatErrorMessages  = formatErrorMessages
)
