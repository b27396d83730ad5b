package handlers

import (
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the decimal_string and epoch_ms binding tags to
// gin's validator. It is safe to call more than once.
func RegisterValidators() error {
	var err error
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err = v.RegisterValidation("decimal_string", validateDecimalString); err != nil {
			return
		}
		err = v.RegisterValidation("epoch_ms", validateEpochMillis)
	})
	return err
}

func validateDecimalString(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

func validateEpochMillis(fl validator.FieldLevel) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(fl.Field().String()), 10, 64)
	return err == nil
}
