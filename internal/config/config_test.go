package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/feedbacksim/internal/config"
)

func TestDefault(t *testing.T) {
	d := config.Default()
	assert.Equal(t, config.DefaultMaxTime, d.MaxTime)
}

func TestValidateRejectsBadQuanta(t *testing.T) {
	p := config.Params{Q1: 0, Q2: 1, Alpha: 0.5, MaxTime: 100}
	require.Error(t, p.Validate())

	p = config.Params{Q1: 1, Q2: 0, Alpha: 0.5, MaxTime: 100}
	require.Error(t, p.Validate())
}

func TestValidateRejectsAlphaOutOfRange(t *testing.T) {
	p := config.Params{Q1: 1, Q2: 1, Alpha: -0.1, MaxTime: 100}
	require.Error(t, p.Validate())

	p = config.Params{Q1: 1, Q2: 1, Alpha: 1.1, MaxTime: 100}
	require.Error(t, p.Validate())
}

func TestValidateNormalizesMaxTime(t *testing.T) {
	p := config.Params{Q1: 1, Q2: 1, Alpha: 0.5, MaxTime: 0}
	require.NoError(t, p.Validate())
	assert.Equal(t, config.DefaultMaxTime, p.MaxTime)
}

func TestValidateAcceptsBoundaryAlpha(t *testing.T) {
	p := config.Params{Q1: 2, Q2: 4, Alpha: 0, MaxTime: 50}
	assert.NoError(t, p.Validate())
	p = config.Params{Q1: 2, Q2: 4, Alpha: 1, MaxTime: 50}
	assert.NoError(t, p.Validate())
}
