package ports

import "go.trai.ch/forge/internal/core/domain"

// InstallLedger keeps a history of successful installs.
//
//go:generate go run go.uber.org/mock/mockgen -source=ledger.go -destination=mocks/mock_ledger.go -package=mocks
type InstallLedger interface {
	// Record appends an install record.
	Record(rec domain.InstallRecord) error

	// List returns all records, oldest first.
	List() ([]domain.InstallRecord, error)
}
