package util

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("ISO", func(t *testing.T) {
		d, err := ParseDate("2004-12-31")
		require.NoError(t, err)
		assert.Equal(t, "2004-12-31", d.String())
	})

	t.Run("USStyle", func(t *testing.T) {
		d, err := ParseDate("12/31/2004")
		require.NoError(t, err)
		assert.Equal(t, "2004-12-31", d.String())
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ParseDate("yesterday")
		assert.Error(t, err)

		_, err = ParseDate("  ")
		assert.Error(t, err)
	})
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2004, time.December, 31)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2004-12-31"`, string(b))

	var got Date
	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, got.Equal(d.Time))

	b, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2001, time.March, 4, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2001-03-04", d.String())

	require.NoError(t, d.Scan([]byte("1999-01-02T00:00:00Z")))
	assert.Equal(t, "1999-01-02", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}
