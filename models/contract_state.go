package models

import (
	"errors"
	"time"
)

// ContractState định nghĩa interface cho các trạng thái hợp đồng.
// Mọi thay đổi Contract.Status đều phải đi qua đây, không gán trực tiếp.
type ContractState interface {
	Activate(contract *Contract) error
	Terminate(contract *Contract, date time.Time, reason string) error
	Renew(contract *Contract, newEndDate time.Time) error
	Expire(contract *Contract) error
}

// DraftState trạng thái nháp, chưa hiệu lực
type DraftState struct{}

func (s *DraftState) Activate(contract *Contract) error {
	contract.Status = ContractStatusActive
	return nil
}

func (s *DraftState) Terminate(contract *Contract, date time.Time, reason string) error {
	terminate(contract, date, reason)
	return nil
}

func (s *DraftState) Renew(contract *Contract, newEndDate time.Time) error {
	return errors.New("only active contracts can be renewed")
}

func (s *DraftState) Expire(contract *Contract) error {
	return errors.New("only active contracts can expire")
}

// ActiveState trạng thái đang hiệu lực
type ActiveState struct{}

func (s *ActiveState) Activate(contract *Contract) error {
	return errors.New("contract already active")
}

func (s *ActiveState) Terminate(contract *Contract, date time.Time, reason string) error {
	terminate(contract, date, reason)
	return nil
}

func (s *ActiveState) Renew(contract *Contract, newEndDate time.Time) error {
	contract.EndDate = newEndDate
	return nil
}

func (s *ActiveState) Expire(contract *Contract) error {
	contract.Status = ContractStatusExpired
	return nil
}

// ExpiredState trạng thái hết hạn
type ExpiredState struct{}

func (s *ExpiredState) Activate(contract *Contract) error {
	return errors.New("cannot activate expired contract")
}

func (s *ExpiredState) Terminate(contract *Contract, date time.Time, reason string) error {
	terminate(contract, date, reason)
	return nil
}

func (s *ExpiredState) Renew(contract *Contract, newEndDate time.Time) error {
	return errors.New("cannot renew expired contract")
}

func (s *ExpiredState) Expire(contract *Contract) error {
	return errors.New("contract already expired")
}

// TerminatedState trạng thái đã thanh lý, không quay lại được
type TerminatedState struct{}

func (s *TerminatedState) Activate(contract *Contract) error {
	return errors.New("cannot activate terminated contract")
}

func (s *TerminatedState) Terminate(contract *Contract, date time.Time, reason string) error {
	return errors.New("contract already terminated")
}

func (s *TerminatedState) Renew(contract *Contract, newEndDate time.Time) error {
	return errors.New("cannot renew terminated contract")
}

func (s *TerminatedState) Expire(contract *Contract) error {
	return errors.New("cannot expire terminated contract")
}

func terminate(contract *Contract, date time.Time, reason string) {
	contract.Status = ContractStatusTerminated
	contract.TerminationDate = &date
	contract.TerminationReason = reason
}

// GetContractState trả về state tương ứng với trạng thái hợp đồng
func GetContractState(status string) ContractState {
	switch status {
	case ContractStatusDraft:
		return &DraftState{}
	case ContractStatusActive:
		return &ActiveState{}
	case ContractStatusExpired:
		return &ExpiredState{}
	case ContractStatusTerminated:
		return &TerminatedState{}
	default:
		return &DraftState{}
	}
}
