package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRegistryEmail(t *testing.T) {
	formats := NewFormatRegistry()
	fn, ok := formats.Lookup("email")
	assert.True(t, ok)

	cases := []struct {
		value string
		valid bool
	}{
		{"ops@example.com", true},
		{"a@b.co", true},
		{"no-at-sign", false},
		{"two@@example.com", false},
		{"@example.com", false},
		{"user@", false},
		{"user@nodot", false},
		{"spaced user@example.com", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.valid, fn(tc.value), "email %q", tc.value)
	}
}

func TestFormatRegistryURI(t *testing.T) {
	formats := NewFormatRegistry()
	fn, ok := formats.Lookup("uri")
	assert.True(t, ok)

	cases := []struct {
		value string
		valid bool
	}{
		{"https://example.com", true},
		{"http://localhost:8080/path", true},
		{"https://", false},
		{"ftp://example.com", false},
		{"example.com", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.valid, fn(tc.value), "uri %q", tc.value)
	}
}

func TestFormatRegistryUUID(t *testing.T) {
	formats := NewFormatRegistry()
	fn, ok := formats.Lookup("uuid")
	assert.True(t, ok)

	assert.True(t, fn("123e4567-e89b-12d3-a456-426614174000"))
	assert.True(t, fn("123E4567-E89B-12D3-A456-426614174000"))
	assert.False(t, fn("123e4567-e89b-12d3-a456"))
	assert.False(t, fn("123e4567e89b12d3a456426614174000"))
	assert.False(t, fn("zzze4567-e89b-12d3-a456-426614174000"))
}

func TestFormatRegistryDate(t *testing.T) {
	formats := NewFormatRegistry()
	fn, ok := formats.Lookup("date")
	assert.True(t, ok)

	assert.True(t, fn("2024-02-29"))
	assert.False(t, fn("2023-02-29"), "non-leap-year February 29th")
	assert.False(t, fn("2024-13-01"))
	assert.False(t, fn("2024-1-1"))
	assert.False(t, fn("01/02/2024"))
}

func TestFormatRegistryTime(t *testing.T) {
	formats := NewFormatRegistry()
	fn, ok := formats.Lookup("time")
	assert.True(t, ok)

	assert.True(t, fn("13:45:30"))
	assert.True(t, fn("00:00:00"))
	assert.True(t, fn("23:59:59.999"))
	assert.False(t, fn("24:00:00"))
	assert.False(t, fn("13:45"))
	assert.False(t, fn("1:45:30"))
}

func TestFormatRegistryDateTime(t *testing.T) {
	formats := NewFormatRegistry()
	fn, ok := formats.Lookup("date-time")
	assert.True(t, ok)

	assert.True(t, fn("2024-06-01T13:45:30Z"))
	assert.True(t, fn("2024-06-01T13:45:30+02:00"))
	assert.True(t, fn("2024-06-01T13:45:30"), "zone-less timestamps are accepted")
	assert.False(t, fn("2024-06-01 13:45:30"))
	assert.False(t, fn("2024-06-01"))
}

func TestFormatRegistryLookupUnknown(t *testing.T) {
	formats := NewFormatRegistry()
	_, ok := formats.Lookup("hostname")
	assert.False(t, ok)
}

func TestFormatRegistryRegisterCustom(t *testing.T) {
	formats := NewFormatRegistry()
	formats.Register("even-length", func(value string) bool {
		return len(value)%2 == 0
	})

	fn, ok := formats.Lookup("even-length")
	assert.True(t, ok)
	assert.True(t, fn("ab"))
	assert.False(t, fn("abc"))
}

func TestFormatRegistryRegisterOverridesBuiltin(t *testing.T) {
	formats := NewFormatRegistry()
	formats.Register("email", func(string) bool { return true })

	fn, _ := formats.Lookup("email")
	assert.True(t, fn("definitely not an email"))
}
