package domain

import (
	"errors"
	"time"
)

// ErrContractNotFound indicates that the contract does not exist or does not
// belong to the requesting profile. Foreign contracts are hidden rather than
// reported as forbidden.
var ErrContractNotFound = errors.New("contract not found")

// Contract statuses.
const (
	ContractStatusNew        = "new"
	ContractStatusInProgress = "in_progress"
	ContractStatusTerminated = "terminated"
)

// Contract binds one client and one contractor and owns zero or more jobs.
type Contract struct {
	ID           int64     `json:"id"`
	Terms        string    `json:"terms"`
	Status       string    `json:"status"`
	ClientID     int64     `json:"client_id"`
	ContractorID int64     `json:"contractor_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsParticipant reports whether the given profile is one of the two parties.
func (c Contract) IsParticipant(profileID int64) bool {
	return c.ClientID == profileID || c.ContractorID == profileID
}
