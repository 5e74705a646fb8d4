package models

import "testing"

func TestParseStayStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want StayStatus
	}{
		// dữ liệu mới, viết chuẩn
		{"active", StayStatusActive},
		{"pending", StayStatusPending},
		{"confirmed", StayStatusConfirmed},
		{"cancelled", StayStatusCancelled},
		{"checkedOut", StayStatusCheckedOut},

		// dữ liệu cũ đủ kiểu viết
		{"", StayStatusActive},
		{"  ", StayStatusActive},
		{"cancelada", StayStatusCancelled},
		{"CANCELED", StayStatusCancelled},
		{"no show", StayStatusCancelled},
		{"No-Show", StayStatusCancelled},
		{"encerrada", StayStatusCheckedOut},
		{"checked_out", StayStatusCheckedOut},
		{"check-out", StayStatusCheckedOut},
		{"finalizada", StayStatusCheckedOut},
		{"confirmada", StayStatusConfirmed},
		{"pendente", StayStatusPending},

		// chuỗi lạ không suy đoán được thì coi là đang hoạt động
		{"???", StayStatusActive},
		{"booked", StayStatusActive},
	}
	for _, tt := range tests {
		if got := ParseStayStatus(tt.raw); got != tt.want {
			t.Errorf("ParseStayStatus(%q) = %s, muốn %s", tt.raw, got, tt.want)
		}
	}
}

func TestStayStatusString(t *testing.T) {
	if got := StayStatusCheckedOut.String(); got != "checkedOut" {
		t.Errorf("String() = %q, muốn %q", got, "checkedOut")
	}
	// giá trị ngoài tập thì rơi về active thay vì panic
	if got := StayStatus(99).String(); got != "active" {
		t.Errorf("String() với giá trị lạ = %q, muốn %q", got, "active")
	}
}

func TestStayStatusTag(t *testing.T) {
	stay := Stay{Status: "Cancelada"}
	if got := stay.StatusTag(); got != StayStatusCancelled {
		t.Errorf("StatusTag() = %s, muốn %s", got, StayStatusCancelled)
	}
}
