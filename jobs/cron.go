package jobs

import (
	"log"
	"time"

	"homestay/config"
	"homestay/services"
	"homestay/utils"

	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody, rdb *redis.Client) error {
	// 0h mỗi ngày: sang ngày tham chiếu mới nên snapshot cache hôm qua
	// không còn đúng dù dữ liệu không đổi; flush rồi báo client load lại.
	_, err := c.AddFunc("0 0 * * *", func() {
		utils.LogInfo("Đang flush snapshot cache lúc: %v", time.Now())
		if err := services.FlushSnapshots(config.Ctx, rdb); err != nil {
			utils.LogError("Lỗi khi flush snapshot cache: %v", err)
		}
		if err := services.BroadcastRollover(m); err != nil {
			utils.LogError("Lỗi khi broadcast rollover: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
