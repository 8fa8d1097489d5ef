package handlers

import (
	"sync"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the txtype and txstatus tags to gin's validator.
// It is safe to call more than once.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("txtype", validTransactionType)
		_ = v.RegisterValidation("txstatus", validTransactionStatus)
	})
}

func validTransactionType(fl validator.FieldLevel) bool {
	_, err := domain.ParseTransactionType(fl.Field().String())
	return err == nil
}

func validTransactionStatus(fl validator.FieldLevel) bool {
	_, err := domain.ParseTransactionStatus(fl.Field().String())
	return err == nil
}
