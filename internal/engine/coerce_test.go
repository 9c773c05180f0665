package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wajahatiqbal22/env-config-validator/pkg/schema"
)

func TestCoerceString(t *testing.T) {
	v, err := Coerce("hello", schema.TypeString)
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	// Identity: even number-looking strings stay strings.
	v, err = Coerce("42", schema.TypeString)
	require.NoError(t, err)
	assert.Equal(t, "42", v)
}

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"42", 42, false},
		{"3.14", 3.14, false},
		{"-0.5", -0.5, false},
		{"1e3", 1000, false},
		{" 42 ", 42, false},
		{"abc", 0, true},
		{"1.2.3", 0, true},
		{"NaN", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := Coerce(tt.raw, schema.TypeNumber)
			if tt.wantErr {
				var cerr *CoercionError
				require.Error(t, err)
				assert.True(t, errors.As(err, &cerr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestCoerceIntegerTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{"30.7", 30, false},
		{"-30.7", -30, false},
		{"3000", 3000, false},
		{"1e2", 100, false},
		{"abc", 0, true},
		{"Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := Coerce(tt.raw, schema.TypeInteger)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestCoerceBooleanVocabulary(t *testing.T) {
	for _, raw := range []string{"true", "TRUE", "1", "yes", "Yes", "on", " on "} {
		v, err := Coerce(raw, schema.TypeBoolean)
		require.NoError(t, err, raw)
		assert.Equal(t, true, v, raw)
	}

	for _, raw := range []string{"false", "FALSE", "0", "no", "off", "OFF", ""} {
		v, err := Coerce(raw, schema.TypeBoolean)
		require.NoError(t, err, raw)
		assert.Equal(t, false, v, raw)
	}

	for _, raw := range []string{"maybe", "2", "yess", "enabled"} {
		_, err := Coerce(raw, schema.TypeBoolean)
		assert.Error(t, err, raw)
	}
}

func TestCoerceUnknownType(t *testing.T) {
	_, err := Coerce("x", schema.Type("decimal"))
	var cerr *CoercionError
	require.True(t, errors.As(err, &cerr))
	assert.Contains(t, cerr.Error(), "decimal")
}
