package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelsUnwrapToKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"transaction not found", ErrTransactionNotFound, ErrNotFound},
		{"invalid amount", ErrInvalidTransactionAmount, ErrValidation},
		{"invalid budget limit", ErrInvalidBudgetLimit, ErrValidation},
		{"jar transfer incomplete", ErrJarTransferIncomplete, ErrConservationFailure},
		{"debt not found", ErrDebtNotFound, ErrNotFound},
		{"billing date", ErrInvalidBillingDate, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := NewTransactionError(ErrCodeMissingTransactionFields, "wrapped", tt.err)
			if !errors.Is(wrapped, tt.kind) {
				t.Errorf("expected %v to unwrap to %v", tt.err, tt.kind)
			}
			if !errors.Is(fmt.Errorf("outer: %w", wrapped), tt.err) {
				t.Errorf("expected sentinel %v to survive wrapping", tt.err)
			}
		})
	}
}

func TestCodedErrorExposesCode(t *testing.T) {
	var err error = NewSavingsError(ErrCodeJarNotFound, "savings jar not found", ErrJarNotFound)

	var coded CodedError
	if !errors.As(err, &coded) {
		t.Fatal("expected SavingsError to implement CodedError")
	}
	if coded.ErrorCode() != "SAV-020001" {
		t.Errorf("expected code SAV-020001, got %s", coded.ErrorCode())
	}
	if !IsNotFound(err) || IsValidation(err) || IsConservationFailure(err) {
		t.Error("expected only the not-found kind to match")
	}
}
