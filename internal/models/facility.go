package models

import "time"

// Facility is one physical storage location. Facilities are managed by the
// upstream property system; this service only reads them.
type Facility struct {
	ID        int64
	Name      string
	Code      string
	CreatedAt *time.Time
}

// BankAccount belongs to exactly one facility and is immutable once created.
type BankAccount struct {
	ID                  int64
	FacilityID          int64
	AccountName         string
	AccountNumberMasked string
	BankName            string
	CreatedAt           *time.Time
}
