package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown                = "UNKNOWN"
	CodeRandomInvalidWordCount = "RANDOM_INVALID_WORD_COUNT"
	CodeRandomUnknownSource    = "RANDOM_UNKNOWN_SOURCE"
	CodeHostOutOfMemory        = "HOST_OUT_OF_MEMORY"
	CodeHostInvalidRecords     = "HOST_INVALID_RECORDS"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		CodeUnknown: "An unexpected error occurred",

		// Random errors
		CodeRandomInvalidWordCount: "Word count must be between 1 and {{.Max}}",
		CodeRandomUnknownSource:    "Unknown entropy source {{.Source}}",

		// Host errors
		CodeHostOutOfMemory:    "Cannot allocate {{.Requested}} bytes",
		CodeHostInvalidRecords: "Invalid record layout",
	},
}
