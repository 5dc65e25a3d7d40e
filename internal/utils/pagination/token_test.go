package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	// Test case 1: Standard date and ID
	date := time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)
	id := "5f0c2a8e-3d43-4f6b-9d61-0c1a2b3c4d5e"

	token := EncodeToken(date, id)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, date, decodedDate, "Date should match after decode")
	assert.Equal(t, id, decodedID, "ID should match after decode")

	// Test case 2: IDs may contain the separator
	token = EncodeToken(date, "virtual:a|b")
	_, decodedID, err = DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "virtual:a|b", decodedID)

	// Test case 3: Current time values
	now := time.Now().UTC()
	decodedNow, _, err := DecodeToken(EncodeToken(now, "x"))
	assert.NoError(t, err, "Decoding current time should not return an error")
	assert.True(t, now.Equal(decodedNow), "Current date should match after decode")
}

func TestDecodeTokenError(t *testing.T) {
	// Test invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Test invalid format (missing separator)
	_, _, err = DecodeToken(base64.URLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	// Test invalid date
	_, _, err = DecodeToken(base64.URLEncoding.EncodeToString([]byte("yesterday|abc")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")
}
