package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileRequest struct {
	UID   string `json:"u_id" validate:"omitempty,alphanum,max=64"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

type limitQuery struct {
	Limit int `query:"limit" validate:"min=1,max=100"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name       string
		input      any
		wantFields []string
	}{
		{name: "valid profile", input: &profileRequest{Name: "Ann", Email: "ann@example.com"}},
		{name: "valid with id", input: &profileRequest{UID: "abc123", Name: "Ann"}},
		{name: "missing name", input: &profileRequest{}, wantFields: []string{"name"}},
		{name: "bad email and id", input: &profileRequest{UID: "a-b", Name: "Ann", Email: "nope"}, wantFields: []string{"u_id", "email"}},
		{name: "limit too small", input: &limitQuery{Limit: 0}, wantFields: []string{"limit"}},
		{name: "limit too large", input: &limitQuery{Limit: 101}, wantFields: []string{"limit"}},
		{name: "limit ok", input: &limitQuery{Limit: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verr *Error
			require.True(t, errors.As(err, &verr))
			var got []string
			for _, f := range verr.Fields {
				got = append(got, f.Field)
				assert.NotEmpty(t, f.Message)
			}
			assert.ElementsMatch(t, tt.wantFields, got)
			assert.NotEmpty(t, verr.Error())
		})
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}

func TestError_EmptyMessage(t *testing.T) {
	assert.Equal(t, "validation failed", (&Error{}).Error())
}
