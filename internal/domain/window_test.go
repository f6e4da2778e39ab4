package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWindow(t *testing.T) {
	for _, month := range []string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12"} {
		w, err := NewWindow(month, "2023")
		require.NoError(t, err, "month %s should be accepted", month)
		assert.Equal(t, 2023, w.Year())
	}
}

func TestNewWindow_InvalidMonth(t *testing.T) {
	for _, month := range []string{"13", "00", "Jan", "1", "", "1月"} {
		_, err := NewWindow(month, "2023")
		assert.ErrorIs(t, err, ErrInvalidMonth, "month %q should be rejected", month)
	}
}

func TestNewWindow_InvalidYear(t *testing.T) {
	for _, year := range []string{"23", "20233", "abcd", ""} {
		_, err := NewWindow("01", year)
		assert.ErrorIs(t, err, ErrInvalidYear, "year %q should be rejected", year)
	}
}

func TestWindow_Bounds(t *testing.T) {
	w, err := NewWindow("12", "2023")
	require.NoError(t, err)

	start, end := w.Bounds()
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestWindow_Period(t *testing.T) {
	w, err := NewWindow("03", "2024")
	require.NoError(t, err)
	assert.Equal(t, "03-2024", w.Period())
}

func TestWindow_Contains(t *testing.T) {
	w, err := NewWindow("01", "2023")
	require.NoError(t, err)

	assert.True(t, w.Contains(time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2022, 1, 15, 0, 0, 0, 0, time.UTC)))
}

func TestPreviousMonthWindow(t *testing.T) {
	w := PreviousMonthWindow(time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC))
	assert.Equal(t, 12, w.Month())
	assert.Equal(t, 2023, w.Year())

	w = PreviousMonthWindow(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2, w.Month())
	assert.Equal(t, 2024, w.Year())
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("john.doe@email.com"))
	assert.NoError(t, ValidateEmail("maria+listas@imobiliaria.com.br"))

	for _, email := range []string{"", "john", "john@", "@email.com", "john doe@email.com", "john@email"} {
		assert.ErrorIs(t, ValidateEmail(email), ErrInvalidEmail, "email %q should be rejected", email)
	}
}
