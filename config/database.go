package config

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// dsnForEnv dựng DSN postgres từ bộ biến môi trường theo tiền tố môi
// trường: DEV_DB_* cho dev, PROD_DB_* cho prod.
func dsnForEnv(env string) string {
	prefix := strings.ToUpper(env) + "_DB_"
	if env != "dev" && env != "prod" {
		log.Fatalf("Unknown environment: %s", env)
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require TimeZone=Asia/Ho_Chi_Minh",
		GetEnv(prefix+"HOST"),
		GetEnv(prefix+"USER"),
		GetEnv(prefix+"PASSWORD"),
		GetEnv(prefix+"NAME"),
		GetEnvDefault(prefix+"PORT", "5432"),
	)
}

func ConnectDB() {
	var err error
	env := GetEnvDefault("ENV", "dev")

	DB, err = gorm.Open(postgres.Open(dsnForEnv(env)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	log.Println("Successfully connected to db")
}
