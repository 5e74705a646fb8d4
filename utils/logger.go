package utils

import (
	"fmt"
	"log"
	"os"
	"time"
)

var appLogger *log.Logger

func init() {
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Fatal(err)
	}

	// một file log mỗi ngày, ghi nối tiếp khi restart trong ngày
	name := fmt.Sprintf("logs/homestay-%s.log", time.Now().Format("2006-01-02"))
	logFile, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatal(err)
	}

	appLogger = log.New(logFile, "", log.Ldate|log.Ltime|log.Lshortfile)
}

// LogInfo ghi log thông tin
func LogInfo(format string, v ...interface{}) {
	appLogger.Printf("INFO: "+format, v...)
}

// LogError ghi log lỗi
func LogError(format string, v ...interface{}) {
	appLogger.Printf("ERROR: "+format, v...)
}
