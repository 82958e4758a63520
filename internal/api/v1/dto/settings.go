package dto

import (
	"bytes"
	"encoding/json"

	"transcript-control/internal/api/errors"
)

var jsonNull = []byte("null")

// PutSettingRequest is the body of PUT /api/transcription-settings/:parameter.
// value must be present; it is a string (possibly empty) or null, which
// clears the stored value.
type PutSettingRequest struct {
	Value json.RawMessage `json:"value" binding:"required" swaggertype:"string"`
}

// NewPutSettingRequest encodes value, nil meaning null
func NewPutSettingRequest(value *string) PutSettingRequest {
	if value == nil {
		return PutSettingRequest{Value: jsonNull}
	}
	raw, _ := json.Marshal(*value)
	return PutSettingRequest{Value: raw}
}

func (r *PutSettingRequest) Validate() error {
	if _, err := r.SettingValue(); err != nil {
		return errors.NewValidationError("Validation failed", map[string]string{
			"value": "must be a string or null",
		})
	}
	return nil
}

// SettingValue decodes value, returning nil for null
func (r *PutSettingRequest) SettingValue() (*string, error) {
	if bytes.Equal(bytes.TrimSpace(r.Value), jsonNull) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(r.Value, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
