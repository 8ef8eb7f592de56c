package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRowsAffected           = errors.New("no rows affected")
	ErrValidation               = errors.New("validation failed")
	ErrDataNotFound             = errors.New("data not found")
	ErrInternalServerError      = errors.New("internal server error")
	ErrInvalidFormatDate        = errors.New("invalid format date")
	ErrDataExist                = errors.New("data exist")
	ErrUnableToCreate           = errors.New("unable to create data")
	ErrUnableToUpdate           = errors.New("unable to update data")
	ErrInvalidAmount            = errors.New("amount must be greater than zero")
	ErrInvalidPeriod            = errors.New("invalid month or year")
	ErrFacilityNotFound         = errors.New("facility not found")
	ErrNoBankAccounts           = errors.New("facility has no bank accounts")
	ErrReconAlreadyExists       = errors.New("reconciliation already exists for this facility and period")
	ErrReconNotFound            = errors.New("reconciliation not found")
	ErrInvalidStatusTransition  = errors.New("reconciliation status can only move forward")
	ErrDiscrepancyNotFound      = errors.New("one or more discrepancies not found")
	ErrDiscrepancyNotPending    = errors.New("one or more discrepancies are not pending approval")
	ErrEmptyDiscrepancyIDs      = errors.New("discrepancy ids must not be empty")
	ErrInvalidBulkAction        = errors.New("action must be approve or reject")
	ErrTransactionAlreadyLinked = errors.New("bank transaction already linked")
	ErrMissingIdempotencyKey    = errors.New("missing idempotency key. this operation requires idempotency key")
	ErrInvalidFingerprint       = errors.New("idempotency key cannot be reused for different requests payload")
	ErrRequestBeingProcessed    = errors.New("request with same idempotency key is being processed")
	ErrForbidden                = errors.New("role is not allowed to perform this action")
	ErrNoRows                   = sql.ErrNoRows
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}
