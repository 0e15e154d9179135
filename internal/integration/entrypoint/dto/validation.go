// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// RegisterValidators adds the ledger's enum tags to gin's validator:
// "wallet", "txkind" and "debtdirection".
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	tags := map[string]validator.Func{
		"wallet": func(fl validator.FieldLevel) bool {
			return entity.Wallet(fl.Field().String()).IsValid()
		},
		"txkind": func(fl validator.FieldLevel) bool {
			return entity.TransactionKind(fl.Field().String()).IsValid()
		},
		"debtdirection": func(fl validator.FieldLevel) bool {
			return entity.DebtDirection(fl.Field().String()).IsValid()
		},
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %q validator: %w", tag, err)
		}
	}
	return nil
}
