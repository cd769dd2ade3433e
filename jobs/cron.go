package jobs

import (
	"log"
	"time"

	"builder/utils"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// HistoryCleaner định nghĩa interface cho việc dọn lịch sử chỉnh sửa hết hạn
type HistoryCleaner interface {
	CleanupExpired() (int64, error)
}

var historyCleaner HistoryCleaner

// SetHistoryCleaner thiết lập implementation cho HistoryCleaner
func SetHistoryCleaner(cleaner HistoryCleaner) {
	historyCleaner = cleaner
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày: dọn các version history đã hết hạn
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		utils.LogInfo("Đang dọn lịch sử chỉnh sửa hết hạn lúc: %v", now)
		if historyCleaner == nil {
			utils.LogWarn("HistoryCleaner chưa được thiết lập, bỏ qua lượt dọn")
			return
		}
		deleted, err := historyCleaner.CleanupExpired()
		if err != nil {
			utils.LogError("Lỗi khi dọn lịch sử chỉnh sửa: %v", err)
			return
		}
		utils.LogInfo("Đã xóa %d bản ghi lịch sử hết hạn", deleted)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
