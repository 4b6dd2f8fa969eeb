package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/turtacn/SynthScreen/pkg/errors"
)

func TestValidateDefaultsPass(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidateUnknownConditionRejected(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Screen.Conditions = append(cfg.Screen.Conditions, ConditionConfig{Name: "melting-point"})

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUnknownCondition))
	assert.Contains(t, err.Error(), "melting-point")
}

func TestValidateHumeRotheryRequiresProperty(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Screen.Conditions = []ConditionConfig{{Name: "Hume-Rothery", Percentage: 15}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeMissingConditionParameter))
}

func TestValidateNegativePercentageRejected(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Screen.Conditions = []ConditionConfig{
		{Name: "Hume-Rothery", Property: "Ionic Radius", Percentage: -1},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidPercentage))
}

func TestValidateEmptyPaths(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Data.Elements = ""
	assert.Error(t, cfg.Validate())

	cfg = NewDefaultConfig()
	cfg.Results.Dir = ""
	assert.Error(t, cfg.Validate())
}
