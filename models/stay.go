package models

import (
	"strings"
	"time"
)

// StayStatus là tập trạng thái đóng của stay. Dữ liệu cũ lưu status dạng
// chuỗi tự do; ParseStayStatus quy về tập này một lần tại tầng load dữ liệu,
// phần core không bao giờ so khớp chuỗi.
type StayStatus int

const (
	StayStatusActive     StayStatus = iota // dòng cũ không có status
	StayStatusPending                      // chờ xác nhận
	StayStatusConfirmed                    // đã xác nhận
	StayStatusCancelled                    // đã hủy / no-show
	StayStatusCheckedOut                   // đã trả phòng
)

type Stay struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"userId" gorm:"index"`
	RoomID       *uint     `json:"roomId" gorm:"index"`
	Room         *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	GuestName    string    `json:"guestName"`
	GuestPhone   string    `json:"guestPhone,omitempty"`
	CheckInDate  string    `json:"checkInDate"`
	CheckOutDate string    `json:"checkOutDate"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

var stayStatusLabels = map[StayStatus]string{
	StayStatusActive:     "active",
	StayStatusPending:    "pending",
	StayStatusConfirmed:  "confirmed",
	StayStatusCancelled:  "cancelled",
	StayStatusCheckedOut: "checkedOut",
}

func (s StayStatus) String() string {
	if label, ok := stayStatusLabels[s]; ok {
		return label
	}
	return "active"
}

// StatusTag trả về trạng thái đã chuẩn hóa của stay.
func (s *Stay) StatusTag() StayStatus {
	return ParseStayStatus(s.Status)
}

// ParseStayStatus quy chuỗi status tự do về tập trạng thái đóng.
// Dữ liệu cũ chứa đủ kiểu viết: "cancelada", "no show", "encerrada",
// "checked_out", "confirmada", chuỗi rỗng nghĩa là đang hoạt động.
func ParseStayStatus(raw string) StayStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return StayStatusActive
	}
	switch {
	case strings.Contains(s, "cancel"), strings.Contains(s, "no show"), strings.Contains(s, "no-show"):
		return StayStatusCancelled
	case strings.Contains(s, "encerr"), strings.Contains(s, "final"), strings.Contains(s, "check") && strings.Contains(s, "out"):
		return StayStatusCheckedOut
	case strings.Contains(s, "confirm"):
		return StayStatusConfirmed
	case strings.Contains(s, "pend"):
		return StayStatusPending
	default:
		return StayStatusActive
	}
}
