package validation

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required,max=8"`
}

func TestToDetails_ValidationErrors(t *testing.T) {
	v := validator.New()

	err := v.Struct(sampleRequest{Username: "not-an-email", Password: "way too long for the cap"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be a valid email", details["Username"])
	assert.Equal(t, "must be at most 8 characters long", details["Password"])
}

func TestToDetails_RequiredFields(t *testing.T) {
	v := validator.New()

	err := v.Struct(sampleRequest{})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "is required", details["Username"])
	assert.Equal(t, "is required", details["Password"])
}

func TestToDetails_MalformedJSON(t *testing.T) {
	var dst sampleRequest
	err := json.Unmarshal([]byte(`{"username":`), &dst)
	require.Error(t, err)

	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
}

func TestToDetails_WrongJSONType(t *testing.T) {
	var dst sampleRequest
	err := json.Unmarshal([]byte(`{"username":42}`), &dst)
	require.Error(t, err)

	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
}

func TestToDetails_NilAndUnknown(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(assert.AnError))
}
