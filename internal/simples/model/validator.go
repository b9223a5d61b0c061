package model

import (
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		// Registration only fails on an empty tag or nil func.
		_ = validate.RegisterValidation("base10int", isBase10Int)
	})
	return validate
}

// isBase10Int accepts an optionally signed run of decimal digits that fits
// in an int64. Fractions, exponents, whitespace and hex are rejected.
func isBase10Int(fl validator.FieldLevel) bool {
	_, err := strconv.ParseInt(fl.Field().String(), 10, 64)
	return err == nil
}
