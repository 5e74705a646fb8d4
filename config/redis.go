package config

import (
	"context"
	"log"
	"strconv"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ConnectRedis mở kết nối Redis cho snapshot cache. REDIS_DB chọn database
// index, mặc định 0.
func ConnectRedis() (*redis.Client, error) {
	dbIndex, err := strconv.Atoi(GetEnvDefault("REDIS_DB", "0"))
	if err != nil {
		dbIndex = 0
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     GetEnv("REDIS_ADDR"),
		Username: GetEnv("REDIS_USER"),
		Password: GetEnv("REDIS_PASSWORD"),
		DB:       dbIndex,
	})

	res, err := rdb.Ping(Ctx).Result()
	if err != nil {
		return nil, err
	}

	log.Println("Kết nối Redis thành công:", res)
	return rdb, nil
}
