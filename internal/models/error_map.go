package models

import "errors"

// Error keys shared between validation tags and handlers. Keys follow the
// "<jsonField>_<tag>" convention used by the validation package lookup.
const (
	ErrKeyInvalidMonth           = "month_month"
	ErrKeyInvalidYear            = "year_year"
	ErrKeyAmountNotPositive      = "amount_decimalGreaterThan"
	ErrKeyDatabaseError          = "DATABASE_ERROR"
	ErrKeyDataNotFound           = "DATA_NOT_FOUND"
	ErrKeyReconAlreadyExists     = "RECON_ALREADY_EXISTS"
	ErrKeyNoBankAccounts         = "NO_BANK_ACCOUNTS"
	ErrKeyDiscrepancyNotPending  = "DISCREPANCY_NOT_PENDING"
	ErrKeyDiscrepancyNotFound    = "DISCREPANCY_NOT_FOUND"
	ErrKeyInvalidBulkAction      = "INVALID_BULK_ACTION"
	ErrKeyInvalidDiscrepancyType = "INVALID_DISCREPANCY_TYPE"
)

var MapErrors = MapErrs{
	ErrKeyInvalidMonth: {
		Code:         "FR-4001",
		ErrorMessage: errors.New("month must be between 1 and 12"),
	},
	ErrKeyInvalidYear: {
		Code:         "FR-4002",
		ErrorMessage: errors.New("year must be between 2000 and 2100"),
	},
	ErrKeyAmountNotPositive: {
		Code:         "FR-4003",
		ErrorMessage: errors.New("amount must be greater than zero"),
	},
	ErrKeyInvalidDiscrepancyType: {
		Code:         "FR-4004",
		ErrorMessage: errors.New("unknown discrepancy type"),
	},
	ErrKeyInvalidBulkAction: {
		Code:         "FR-4005",
		ErrorMessage: errors.New("action must be approve or reject"),
	},
	ErrKeyReconAlreadyExists: {
		Code:         "FR-4091",
		ErrorMessage: errors.New("reconciliation already exists for this facility and period"),
	},
	ErrKeyDiscrepancyNotPending: {
		Code:         "FR-4092",
		ErrorMessage: errors.New("one or more discrepancies are not pending approval"),
	},
	ErrKeyNoBankAccounts: {
		Code:         "FR-4041",
		ErrorMessage: errors.New("facility has no bank accounts"),
	},
	ErrKeyDiscrepancyNotFound: {
		Code:         "FR-4042",
		ErrorMessage: errors.New("one or more discrepancies not found"),
	},
	ErrKeyDataNotFound: {
		Code:         "FR-4040",
		ErrorMessage: errors.New("data not found"),
	},
	ErrKeyDatabaseError: {
		Code:         "FR-5001",
		ErrorMessage: errors.New("internal server error"),
	},
}
