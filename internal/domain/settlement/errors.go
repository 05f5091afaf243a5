package settlement

import "errors"

var (
	ErrSettlementNotFound      = errors.New("settlement not found")
	ErrInvalidStatusTransition = errors.New("invalid settlement status transition")
	ErrSettlementAlreadyExists = errors.New("settlement already exists for this employee")
	ErrEmployeeNotExited       = errors.New("employee has no exit date")
)
