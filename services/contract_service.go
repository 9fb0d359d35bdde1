package services

import (
	stderrors "errors"
	"time"

	"rms/errors"
	"rms/models"
	"rms/services/logger"

	"gorm.io/gorm"
)

// ContractService giữ toàn bộ logic chuyển trạng thái hợp đồng và
// đồng bộ trạng thái phòng. Đây là đường ghi duy nhất cho cặp
// (Contract.Status, Room.Status): controller không tự cập nhật status.
//
// Mỗi thao tác chạy trong một transaction; bước đổi trạng thái dùng
// compare-and-swap trên status cũ nên hai request song song cùng
// activate một hợp đồng thì chỉ một request thắng, request kia nhận
// INVALID_STATE thay vì chuyển trạng thái hai lần.
type ContractService struct {
	db     *gorm.DB
	logger logger.Logger
}

type ContractServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// NewContractService tạo instance mới của ContractService
func NewContractService(opts ContractServiceOptions) *ContractService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ContractService{
		db:     opts.DB,
		logger: l,
	}
}

// Create tạo hợp đồng mới ở trạng thái DRAFT và chuyển phòng sang RESERVED.
// Người thuê phụ không tồn tại thì bị bỏ qua, id bị bỏ qua được trả về
// cho caller thay vì nuốt lặng lẽ.
func (s *ContractService) Create(contract *models.Contract, additionalTenants []uint) ([]uint, error) {
	var skipped []uint

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, contract.RoomID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng", nil)
			}
			return dbError(err)
		}
		if !room.IsRentable() {
			return errors.NewAppError(errors.ErrCodeRoomNotAvailable, "Phòng không khả dụng để tạo hợp đồng", nil)
		}

		var mainTenant models.Tenant
		if err := tx.First(&mainTenant, contract.MainTenantID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeTenantNotFound, "Không tìm thấy người thuê chính", nil)
			}
			return dbError(err)
		}

		contract.Status = models.ContractStatusDraft
		if err := tx.Create(contract).Error; err != nil {
			return dbError(err)
		}

		mainRow := models.ContractTenant{
			ContractID:   contract.ID,
			TenantID:     contract.MainTenantID,
			IsMainTenant: true,
			JoinDate:     contract.StartDate,
		}
		if err := tx.Create(&mainRow).Error; err != nil {
			return dbError(err)
		}

		for _, tenantID := range additionalTenants {
			if tenantID == contract.MainTenantID {
				continue
			}
			var tenant models.Tenant
			if err := tx.First(&tenant, tenantID).Error; err != nil {
				if stderrors.Is(err, gorm.ErrRecordNotFound) {
					s.logger.Info("Bỏ qua người thuê phụ không tồn tại: %d", tenantID)
					skipped = append(skipped, tenantID)
					continue
				}
				return dbError(err)
			}
			row := models.ContractTenant{
				ContractID: contract.ID,
				TenantID:   tenantID,
				JoinDate:   contract.StartDate,
			}
			if err := tx.Create(&row).Error; err != nil {
				return dbError(err)
			}
		}

		return s.swapRoomStatus(tx, room.ID, room.Status, models.RoomStatusReserved)
	})
	if err != nil {
		return nil, err
	}

	return skipped, nil
}

// Activate chuyển hợp đồng DRAFT sang ACTIVE, phòng sang OCCUPIED
func (s *ContractService) Activate(id uint) (*models.Contract, error) {
	var contract models.Contract

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.loadContract(tx, id, &contract); err != nil {
			return err
		}

		prev := contract.Status
		state := models.GetContractState(prev)
		if err := state.Activate(&contract); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidState, err.Error(), nil)
		}

		if err := s.swapContractStatus(tx, contract.ID, prev, map[string]interface{}{
			"status": contract.Status,
		}); err != nil {
			return err
		}

		return s.setRoomStatus(tx, contract.RoomID, models.RoomStatusOccupied)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Hợp đồng %s chuyển sang ACTIVE", contract.ContractCode)
	return &contract, nil
}

// Terminate thanh lý hợp đồng, phòng trở về AVAILABLE.
// date là zero value thì lấy thời điểm hiện tại.
func (s *ContractService) Terminate(id uint, date time.Time, reason string) (*models.Contract, error) {
	if date.IsZero() {
		date = time.Now()
	}

	var contract models.Contract

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.loadContract(tx, id, &contract); err != nil {
			return err
		}

		prev := contract.Status
		state := models.GetContractState(prev)
		if err := state.Terminate(&contract, date, reason); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidState, err.Error(), nil)
		}

		if err := s.swapContractStatus(tx, contract.ID, prev, map[string]interface{}{
			"status":             contract.Status,
			"termination_date":   contract.TerminationDate,
			"termination_reason": contract.TerminationReason,
		}); err != nil {
			return err
		}

		return s.setRoomStatus(tx, contract.RoomID, models.RoomStatusAvailable)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Hợp đồng %s đã thanh lý: %s", contract.ContractCode, reason)
	return &contract, nil
}

// Renew gia hạn hợp đồng ACTIVE tới ngày kết thúc mới, không đụng tới phòng
func (s *ContractService) Renew(id uint, newEndDate time.Time) (*models.Contract, error) {
	var contract models.Contract

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.loadContract(tx, id, &contract); err != nil {
			return err
		}

		prev := contract.Status
		state := models.GetContractState(prev)
		if err := state.Renew(&contract, newEndDate); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidState, err.Error(), nil)
		}

		return s.swapContractStatus(tx, contract.ID, prev, map[string]interface{}{
			"end_date": contract.EndDate,
		})
	})
	if err != nil {
		return nil, err
	}

	return &contract, nil
}

// Delete xóa hợp đồng. Hợp đồng chưa thanh lý thì trả phòng về AVAILABLE
// trước khi xóa dòng dữ liệu.
func (s *ContractService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var contract models.Contract
		if err := s.loadContract(tx, id, &contract); err != nil {
			return err
		}

		if contract.Status != models.ContractStatusTerminated {
			if err := s.setRoomStatus(tx, contract.RoomID, models.RoomStatusAvailable); err != nil {
				return err
			}
		}

		if err := tx.Where("contract_id = ?", contract.ID).Delete(&models.ContractTenant{}).Error; err != nil {
			return dbError(err)
		}
		if err := tx.Delete(&models.Contract{}, contract.ID).Error; err != nil {
			return dbError(err)
		}
		return nil
	})
}

// ExpireOverdue chuyển các hợp đồng ACTIVE đã quá ngày kết thúc sang
// EXPIRED. Phòng giữ nguyên OCCUPIED: người thuê vẫn đang ở, phòng chỉ
// được trả khi thanh lý. Trả về danh sách hợp đồng vừa hết hạn.
func (s *ContractService) ExpireOverdue(now time.Time) ([]models.Contract, error) {
	var overdue []models.Contract
	if err := s.db.
		Where("status = ? AND end_date < ?", models.ContractStatusActive, now).
		Find(&overdue).Error; err != nil {
		return nil, dbError(err)
	}

	var expired []models.Contract
	for _, contract := range overdue {
		c := contract
		err := s.db.Transaction(func(tx *gorm.DB) error {
			prev := c.Status
			state := models.GetContractState(prev)
			if err := state.Expire(&c); err != nil {
				return errors.NewAppError(errors.ErrCodeInvalidState, err.Error(), nil)
			}
			return s.swapContractStatus(tx, c.ID, prev, map[string]interface{}{
				"status": c.Status,
			})
		})
		if err != nil {
			// Hợp đồng có thể vừa bị thanh lý bởi request khác, bỏ qua
			s.logger.Error("Không thể chuyển hợp đồng %d sang EXPIRED: %v", c.ID, err)
			continue
		}
		expired = append(expired, c)
	}

	return expired, nil
}

func (s *ContractService) loadContract(tx *gorm.DB, id uint, contract *models.Contract) error {
	if err := tx.Preload("Room").First(contract, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewAppError(errors.ErrCodeContractNotFound, "Không tìm thấy hợp đồng", nil)
		}
		return dbError(err)
	}
	return nil
}

// swapContractStatus ghi các thay đổi với điều kiện status vẫn là giá trị
// đã đọc. Không khớp nghĩa là request khác đã thắng.
func (s *ContractService) swapContractStatus(tx *gorm.DB, id uint, prevStatus string, updates map[string]interface{}) error {
	res := tx.Model(&models.Contract{}).
		Where("id = ? AND status = ?", id, prevStatus).
		Updates(updates)
	if res.Error != nil {
		return dbError(res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeInvalidState, "Trạng thái hợp đồng đã bị thay đổi bởi thao tác khác", nil)
	}
	return nil
}

func (s *ContractService) swapRoomStatus(tx *gorm.DB, roomID uint, prevStatus, newStatus string) error {
	res := tx.Model(&models.Room{}).
		Where("id = ? AND status = ?", roomID, prevStatus).
		Update("status", newStatus)
	if res.Error != nil {
		return dbError(res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeRoomNotAvailable, "Trạng thái phòng đã bị thay đổi bởi thao tác khác", nil)
	}
	return nil
}

func (s *ContractService) setRoomStatus(tx *gorm.DB, roomID uint, status string) error {
	if err := tx.Model(&models.Room{}).Where("id = ?", roomID).
		Update("status", status).Error; err != nil {
		return dbError(err)
	}
	return nil
}

func dbError(err error) error {
	return errors.NewAppError(errors.ErrCodeDBError, "Lỗi database", err)
}
