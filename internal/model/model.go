// Package model contains the domain types shared across layers. Pure data
// structures: no persistence or framework coupling beyond json tags.
package model

import "time"

// Vendor is a counterparty that contracts can reference.
type Vendor struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	RiskProfile *string   `json:"risk_profile,omitempty"`
	Status      *string   `json:"status,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ContractStates is the closed set of lifecycle labels a contract may carry.
// Membership is validated on write; transition legality is not enforced.
var ContractStates = []string{"Draft", "Active", "Expiring", "Terminated", "Archived"}

// Contract is the primary business record: it owns documents, extractions,
// tags, and the contract-scoped slice of the audit trail.
type Contract struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	VendorID         *string   `json:"vendor_id,omitempty"`
	VendorName       *string   `json:"vendor_name,omitempty"`
	Owner            string    `json:"owner"`
	State            string    `json:"state"`
	EffectiveDate    *string   `json:"effective_date,omitempty"`
	TerminationDate  *string   `json:"termination_date,omitempty"`
	NoticePeriodDays *int      `json:"notice_period_days,omitempty"`
	RenewalIntent    *string   `json:"renewal_intent,omitempty"`
	Sensitive        bool      `json:"sensitive"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Document is one immutable file revision attached to a contract.
//
// For a fixed contract the recorded versions are exactly 1..N with no gaps or
// duplicates; rows are inserted once and never updated or deleted. SHA256 is
// the lowercase hex digest of the bytes actually written to object storage,
// recorded for tamper detection rather than content addressing.
type Document struct {
	ID          string    `json:"id"`
	ContractID  string    `json:"contract_id"`
	Filename    string    `json:"filename"`
	StorageName string    `json:"storage_name"`
	Version     int       `json:"version"`
	UploadedAt  time.Time `json:"uploaded_at"`
	SHA256      string    `json:"sha256"`
}

// AuditEvent is an immutable compliance record: actor performed action at
// CreatedAt, optionally concerning a contract. The trail is append-only; no
// update or delete path exists anywhere in the codebase. The id is a DB
// sequence so the trail keeps a stable total order even when two events share
// a created_at timestamp.
type AuditEvent struct {
	ID         int64     `json:"id"`
	ContractID *string   `json:"contract_id,omitempty"`
	Action     string    `json:"action"`
	Actor      string    `json:"actor"`
	CreatedAt  time.Time `json:"created_at"`
	Details    string    `json:"details,omitempty"`
}

// Extraction is a logged field-extraction result for a contract.
type Extraction struct {
	ID              string    `json:"id"`
	ContractID      string    `json:"contract_id"`
	ExtractedFields string    `json:"extracted_fields"`
	Status          string    `json:"status"`
	Approver        *string   `json:"approver,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ContractStateCount is one row of the per-state contract tally.
type ContractStateCount struct {
	State string `json:"state"`
	Total int    `json:"total"`
}
