package errors

import "strings"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	ErrCodeInternal       ErrorCode = "COMMON_001"
	ErrCodeInvalidParam   ErrorCode = "COMMON_002"
	ErrCodeNotFound       ErrorCode = "COMMON_003"
	ErrCodeConflict       ErrorCode = "COMMON_004"
	ErrCodeValidation     ErrorCode = "COMMON_005"
	ErrCodeNotImplemented ErrorCode = "COMMON_006"
)

// Table / dataset error codes.
const (
	ErrCodeTableMalformedCell ErrorCode = "TBL_001"
	ErrCodeTableMissingColumn ErrorCode = "TBL_002"
	ErrCodeTableUnreadable    ErrorCode = "TBL_003"
	ErrCodeTableEmpty         ErrorCode = "TBL_004"
	ErrCodeTableNoFiles       ErrorCode = "TBL_005"
)

// Screening error codes.
const (
	ErrCodeTargetNotFound            ErrorCode = "SCR_001"
	ErrCodeAmbiguousTarget           ErrorCode = "SCR_002"
	ErrCodeUnknownCondition          ErrorCode = "SCR_003"
	ErrCodeMissingConditionParameter ErrorCode = "SCR_004"
	ErrCodeInvalidPercentage         ErrorCode = "SCR_005"
	ErrCodeEmptyPopulation           ErrorCode = "SCR_006"
	ErrCodeInvalidFormulaTemplate    ErrorCode = "SCR_007"
	ErrCodeTargetPropertyUnavailable ErrorCode = "SCR_008"
)

// Persistence error codes.
const (
	ErrCodeResultsDir        ErrorCode = "PER_001"
	ErrCodeArtifactWrite     ErrorCode = "PER_002"
	ErrCodeArtifactCollision ErrorCode = "PER_003"
)

// Aliases used at call sites throughout the codebase.
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeInvalidParam
	CodeNotFound     = ErrCodeNotFound
	CodeConflict     = ErrCodeConflict
	CodeOK           = ErrorCode("OK")
	CodeUnknown      = ErrorCode("UNKNOWN")
)

// Process exit codes.  A batch run terminates with exactly one of these;
// operators and wrapper scripts branch on them.
const (
	ExitInternal    = 1
	ExitConfig      = 2
	ExitDataParse   = 3
	ExitLookup      = 4
	ExitPersistence = 5
)

// ErrorCodeExitCode maps ErrorCodes to process exit codes.
var ErrorCodeExitCode = map[ErrorCode]int{
	ErrCodeInternal:       ExitInternal,
	ErrCodeInvalidParam:   ExitConfig,
	ErrCodeNotFound:       ExitLookup,
	ErrCodeConflict:       ExitInternal,
	ErrCodeValidation:     ExitConfig,
	ErrCodeNotImplemented: ExitInternal,

	ErrCodeTableMalformedCell: ExitDataParse,
	ErrCodeTableMissingColumn: ExitDataParse,
	ErrCodeTableUnreadable:    ExitDataParse,
	ErrCodeTableEmpty:         ExitDataParse,
	ErrCodeTableNoFiles:       ExitDataParse,

	ErrCodeTargetNotFound:            ExitLookup,
	ErrCodeAmbiguousTarget:           ExitLookup,
	ErrCodeUnknownCondition:          ExitConfig,
	ErrCodeMissingConditionParameter: ExitConfig,
	ErrCodeInvalidPercentage:         ExitConfig,
	ErrCodeEmptyPopulation:           ExitLookup,
	ErrCodeInvalidFormulaTemplate:    ExitConfig,
	ErrCodeTargetPropertyUnavailable: ExitDataParse,

	ErrCodeResultsDir:        ExitPersistence,
	ErrCodeArtifactWrite:     ExitPersistence,
	ErrCodeArtifactCollision: ExitPersistence,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:       "internal error",
	ErrCodeInvalidParam:   "invalid parameter",
	ErrCodeNotFound:       "resource not found",
	ErrCodeConflict:       "resource conflict",
	ErrCodeValidation:     "validation failed",
	ErrCodeNotImplemented: "not implemented",

	ErrCodeTableMalformedCell: "malformed table cell",
	ErrCodeTableMissingColumn: "required column missing",
	ErrCodeTableUnreadable:    "table file unreadable",
	ErrCodeTableEmpty:         "table contains no rows",
	ErrCodeTableNoFiles:       "no table files matched",

	ErrCodeTargetNotFound:            "target element not found",
	ErrCodeAmbiguousTarget:           "target element lookup is ambiguous",
	ErrCodeUnknownCondition:          "unknown substitution condition",
	ErrCodeMissingConditionParameter: "substitution condition lacks a required parameter",
	ErrCodeInvalidPercentage:         "tolerance percentage is invalid",
	ErrCodeEmptyPopulation:           "candidate population is empty",
	ErrCodeInvalidFormulaTemplate:    "formula template is invalid",
	ErrCodeTargetPropertyUnavailable: "target element lacks the requested property value",

	ErrCodeResultsDir:        "results directory cannot be created",
	ErrCodeArtifactWrite:     "result artifact cannot be written",
	ErrCodeArtifactCollision: "result artifact name collision could not be resolved",
}

// ExitCodeForCode returns the process exit code for an ErrorCode.
func ExitCodeForCode(code ErrorCode) int {
	if ec, ok := ErrorCodeExitCode[code]; ok {
		return ec
	}
	return ExitInternal
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
