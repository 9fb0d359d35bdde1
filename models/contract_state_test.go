package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftStateTransitions(t *testing.T) {
	contract := &Contract{Status: ContractStatusDraft}
	state := GetContractState(contract.Status)

	err := state.Activate(contract)
	require.NoError(t, err)
	assert.Equal(t, ContractStatusActive, contract.Status)
}

func TestDraftStateCanTerminate(t *testing.T) {
	contract := &Contract{Status: ContractStatusDraft}
	state := GetContractState(contract.Status)

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	err := state.Terminate(contract, date, "hủy trước khi ký")
	require.NoError(t, err)
	assert.Equal(t, ContractStatusTerminated, contract.Status)
	require.NotNil(t, contract.TerminationDate)
	assert.Equal(t, date, *contract.TerminationDate)
	assert.Equal(t, "hủy trước khi ký", contract.TerminationReason)
}

func TestDraftStateCannotRenewOrExpire(t *testing.T) {
	contract := &Contract{Status: ContractStatusDraft}
	state := GetContractState(contract.Status)

	assert.Error(t, state.Renew(contract, time.Now()))
	assert.Error(t, state.Expire(contract))
	assert.Equal(t, ContractStatusDraft, contract.Status)
}

func TestActiveStateTransitions(t *testing.T) {
	newEndDate := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	contract := &Contract{Status: ContractStatusActive, EndDate: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)}
	state := GetContractState(contract.Status)

	assert.Error(t, state.Activate(contract), "hợp đồng đang ACTIVE không kích hoạt lại được")

	require.NoError(t, state.Renew(contract, newEndDate))
	assert.Equal(t, newEndDate, contract.EndDate)
	assert.Equal(t, ContractStatusActive, contract.Status)

	require.NoError(t, state.Expire(contract))
	assert.Equal(t, ContractStatusExpired, contract.Status)
}

func TestActiveStateTerminate(t *testing.T) {
	contract := &Contract{Status: ContractStatusActive}
	state := GetContractState(contract.Status)

	require.NoError(t, state.Terminate(contract, time.Now(), "trả phòng sớm"))
	assert.Equal(t, ContractStatusTerminated, contract.Status)
}

func TestExpiredStateOnlyTerminates(t *testing.T) {
	contract := &Contract{Status: ContractStatusExpired}
	state := GetContractState(contract.Status)

	assert.Error(t, state.Activate(contract))
	assert.Error(t, state.Renew(contract, time.Now()))
	assert.Error(t, state.Expire(contract))
	assert.Equal(t, ContractStatusExpired, contract.Status)

	require.NoError(t, state.Terminate(contract, time.Now(), "thanh lý sau hết hạn"))
	assert.Equal(t, ContractStatusTerminated, contract.Status)
}

func TestTerminatedStateIsFinal(t *testing.T) {
	contract := &Contract{Status: ContractStatusTerminated}
	state := GetContractState(contract.Status)

	assert.Error(t, state.Activate(contract))
	assert.Error(t, state.Terminate(contract, time.Now(), "lần hai"))
	assert.Error(t, state.Renew(contract, time.Now()))
	assert.Error(t, state.Expire(contract))
	assert.Equal(t, ContractStatusTerminated, contract.Status)
}

func TestGetContractStateDefaultsToDraft(t *testing.T) {
	state := GetContractState("KHONG_TON_TAI")
	_, ok := state.(*DraftState)
	assert.True(t, ok)
}

func TestRoomIsRentable(t *testing.T) {
	assert.True(t, (&Room{Status: RoomStatusAvailable}).IsRentable())
	assert.True(t, (&Room{Status: RoomStatusReserved}).IsRentable())
	assert.False(t, (&Room{Status: RoomStatusOccupied}).IsRentable())
	assert.False(t, (&Room{Status: RoomStatusMaintenance}).IsRentable())
}
