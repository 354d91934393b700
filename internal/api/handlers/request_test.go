package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"required,max=5"`
	Email string `json:"email" validate:"required,email"`
}

func TestDecodeJSON(t *testing.T) {
	var dst sample

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","email":"a@b.c"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "a", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.ErrorIs(t, DecodeJSON(r, &dst), ErrEmptyBody)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"unknown":1}`))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(sample{Name: "ok", Email: "a@b.c"}))

	err := ValidateStruct(sample{Name: "toolong", Email: "nope"})
	require.ErrorIs(t, err, ErrValidation)
	details := ValidationDetails(err)
	assert.Contains(t, details, "Name: maximum length is 5")
	assert.Contains(t, details, "Email: invalid email format")
	assert.NotContains(t, details, ErrValidation.Error())
}

func TestRespondHelpers(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondErrorDetails(rec, http.StatusInternalServerError, "failed", "no data returned")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Error: "failed", Details: "no data returned"}, body)

	rec = httptest.NewRecorder()
	RespondBadRequest(rec, "bad")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"bad"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	RespondInternalError(rec)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}
