package jobs

import (
	"encoding/json"
	"log"
	"time"

	"rms/models"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// ContractExpirer định nghĩa interface cho job hết hạn hợp đồng
type ContractExpirer interface {
	ExpireOverdue(now time.Time) ([]models.Contract, error)
}

var contractExpirer ContractExpirer

// SetContractExpirer thiết lập implementation cho ContractExpirer
func SetContractExpirer(expirer ContractExpirer) {
	contractExpirer = expirer
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày: chuyển hợp đồng quá hạn sang EXPIRED
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang chạy job hết hạn hợp đồng lúc: %v", now)

		if contractExpirer == nil {
			log.Printf("Lỗi: ContractExpirer chưa được thiết lập")
			return
		}

		expired, err := contractExpirer.ExpireOverdue(now)
		if err != nil {
			log.Printf("Lỗi khi chạy job hết hạn hợp đồng: %v", err)
			return
		}
		if len(expired) == 0 {
			return
		}

		log.Printf("Đã chuyển %d hợp đồng sang EXPIRED", len(expired))
		broadcastExpired(m, expired)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

func broadcastExpired(m *melody.Melody, expired []models.Contract) {
	if m == nil {
		return
	}

	codes := make([]string, 0, len(expired))
	for _, contract := range expired {
		codes = append(codes, contract.ContractCode)
	}

	payload, err := json.Marshal(map[string]interface{}{
		"event": "contracts.expired",
		"data":  codes,
	})
	if err != nil {
		log.Printf("Không thể serialize thông báo hợp đồng hết hạn: %v", err)
		return
	}
	if err := m.Broadcast(payload); err != nil {
		log.Printf("Không thể broadcast thông báo hợp đồng hết hạn: %v", err)
	}
}
