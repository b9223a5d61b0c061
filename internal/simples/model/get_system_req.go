package model

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingParams = errors.New("mapId and systemId are required")
	ErrInvalidFormat = errors.New("mapId and systemId must be base-10 integers")
)

// GetSystemReq carries the raw path segments of
// GET /simples/system/:mapId/:systemId. The strings are what reach the
// query; validation only checks their shape.
type GetSystemReq struct {
	MapID    string `param:"mapId" validate:"required,base10int"`
	SystemID string `param:"systemId" validate:"required,base10int"`
}

// Validate reports ErrMissingParams when a segment is empty and
// ErrInvalidFormat when one is not an integer.
func (r *GetSystemReq) Validate() error {
	err := GetValidator().Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return ErrMissingParams
			}
		}
		return ErrInvalidFormat
	}
	return err
}
