package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache key cho snapshot phòng/stay theo tài khoản chủ nhà. TTL ngắn vì
// mọi phân loại được tính lại từ snapshot mỗi lần load màn hình.
const SnapshotTTL = 10 * time.Minute

func RoomsCacheKey(ownerID uint) string {
	return fmt.Sprintf("rooms:%d", ownerID)
}

func StaysCacheKey(ownerID uint) string {
	return fmt.Sprintf("stays:%d", ownerID)
}

// Hàm lấy data từ Redis
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return err
	}
	return nil
}

// Hàm lưu dữ liệu vào Redis
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, dataJSON, ttl).Err()
}

// Hàm xóa cache Redis
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, key).Err()
}

// InvalidateSnapshot xóa cache snapshot của một tài khoản sau khi phòng
// hoặc stay thay đổi.
func InvalidateSnapshot(ctx context.Context, rdb *redis.Client, ownerID uint) error {
	return rdb.Del(ctx, RoomsCacheKey(ownerID), StaysCacheKey(ownerID)).Err()
}

// FlushSnapshots xóa toàn bộ cache snapshot, dùng cho cron lúc 0h: sang
// ngày mới thì phân loại hôm qua đã cũ dù dữ liệu không đổi.
func FlushSnapshots(ctx context.Context, rdb *redis.Client) error {
	for _, pattern := range []string{"rooms:*", "stays:*"} {
		iter := rdb.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			if err := rdb.Del(ctx, iter.Val()).Err(); err != nil {
				return err
			}
		}
		if err := iter.Err(); err != nil {
			return err
		}
	}
	return nil
}
