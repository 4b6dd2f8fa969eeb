package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeForCode(t *testing.T) {
	tests := []struct {
		name string
		code ErrorCode
		want int
	}{
		{"internal", ErrCodeInternal, ExitInternal},
		{"validation", ErrCodeValidation, ExitConfig},
		{"unknown condition", ErrCodeUnknownCondition, ExitConfig},
		{"malformed cell", ErrCodeTableMalformedCell, ExitDataParse},
		{"target not found", ErrCodeTargetNotFound, ExitLookup},
		{"empty population", ErrCodeEmptyPopulation, ExitLookup},
		{"artifact write", ErrCodeArtifactWrite, ExitPersistence},
		{"unmapped code", ErrorCode("XXX_999"), ExitInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeForCode(tt.code))
		})
	}
}

func TestModuleForCode(t *testing.T) {
	assert.Equal(t, "SCR", ModuleForCode(ErrCodeAmbiguousTarget))
	assert.Equal(t, "TBL", ModuleForCode(ErrCodeTableEmpty))
	assert.Equal(t, "PER", ModuleForCode(ErrCodeResultsDir))
	assert.Equal(t, "UNKNOWN", ModuleForCode(ErrorCode("")))
}

func TestDefaultMessageForCode(t *testing.T) {
	assert.Equal(t, "candidate population is empty", DefaultMessageForCode(ErrCodeEmptyPopulation))
	assert.Equal(t, "unknown error", DefaultMessageForCode(ErrorCode("XXX_999")))
}
