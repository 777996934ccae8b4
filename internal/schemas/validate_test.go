package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSession_Valid(t *testing.T) {
	data := []byte(`{
		"id": "9a4c2f6e-0000-0000-0000-000000000000",
		"letter_text": "Sehr geehrte Damen und Herren,",
		"cv_text": "",
		"job_text": "",
		"prompts": {"system": "custom"}
	}`)
	assert.NoError(t, ValidateSession(data))
}

func TestValidateSession_MissingID(t *testing.T) {
	err := ValidateSession([]byte(`{"letter_text": "x"}`))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "id")
}

func TestValidateSession_UnknownField(t *testing.T) {
	err := ValidateSession([]byte(`{"id": "x", "bogus": true}`))
	assert.Error(t, err)
}

func TestValidateSession_MalformedJSON(t *testing.T) {
	err := ValidateSession([]byte(`{not json`))
	require.Error(t, err)

	// Malformed JSON is a plain error, not a schema violation.
	var ve *ValidationError
	assert.False(t, errors.As(err, &ve))
}
