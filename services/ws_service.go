package services

import (
	"encoding/json"
	"fmt"

	"homestay/occupancy"

	"github.com/olahol/melody"
)

// BroadcastTodaySummary đẩy summary bảng hôm nay tới các client dashboard
// đang mở websocket, gọi sau mỗi lần stay thay đổi. Best-effort: caller
// chỉ log lỗi, không fail request.
func BroadcastTodaySummary(m *melody.Melody, ownerID uint, summary occupancy.StaySummary) error {
	if m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	msg, err := json.Marshal(map[string]interface{}{
		"event":   "todaySummary",
		"ownerId": ownerID,
		"summary": summary,
	})
	if err != nil {
		return err
	}
	return m.Broadcast(msg)
}

// BroadcastRollover báo các client load lại dashboard khi sang ngày mới.
func BroadcastRollover(m *melody.Melody) error {
	if m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return m.Broadcast([]byte(`{"event":"rollover"}`))
}
