package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1990-04-12")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("12/04/1990")
	assert.Error(t, err)
}

func TestParseInt(t *testing.T) {
	n, err := ParseInt("quantity", " 25 ")
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	_, err = ParseInt("reorder_level", "ten")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reorder_level")
}

func TestNullString(t *testing.T) {
	assert.Nil(t, NullString("   "))
	assert.Equal(t, "O+", *NullString(" O+ "))
	assert.Equal(t, "", Deref(nil))
}
