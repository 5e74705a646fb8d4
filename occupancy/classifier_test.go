package occupancy

import (
	"testing"

	"homestay/models"
)

func mkStay(id uint, in, out, status string) models.Stay {
	return models.Stay{
		ID:           id,
		CheckInDate:  in,
		CheckOutDate: out,
		Status:       status,
	}
}

func TestClassifyRules(t *testing.T) {
	ref := "2024-05-10"

	tests := []struct {
		name string
		stay models.Stay
		want Category
	}{
		{"in-house giữa interval", mkStay(1, "2024-05-08", "2024-05-12", "confirmed"), CategoryInHouse},
		{"in-house ngày nhận phòng", mkStay(2, "2024-05-10", "2024-05-12", ""), CategoryInHouse},
		{"departure đúng ngày trả", mkStay(3, "2024-05-05", "2024-05-10", ""), CategoryDeparture},
		{"arrival khi chỉ có checkIn", mkStay(4, "2024-05-10", "", ""), CategoryArrival},
		{"upcoming", mkStay(5, "2024-05-15", "2024-05-20", "pending"), CategoryUpcoming},
		{"past theo ngày", mkStay(6, "2024-05-01", "2024-05-05", ""), CategoryPast},
		{"cancelled thắng interval", mkStay(7, "2024-05-08", "2024-05-12", "cancelled"), CategoryPast},
		{"cancelada legacy thắng interval", mkStay(8, "2024-05-01", "2024-05-05", "cancelada"), CategoryPast},
		{"no-show là past", mkStay(9, "2024-05-10", "2024-05-12", "no show"), CategoryPast},
		{"checked out là past", mkStay(10, "2024-05-08", "2024-05-12", "checked_out"), CategoryPast},
		{"encerrada legacy là past", mkStay(11, "2024-05-08", "2024-05-12", "encerrada"), CategoryPast},
		{"ngày thiếu cả hai", mkStay(12, "", "", ""), CategoryUnclassified},
		{"checkIn hỏng, checkOut tương lai", mkStay(13, "10/05/2024", "2024-05-20", ""), CategoryUnclassified},
		{"checkIn hỏng, checkOut quá khứ", mkStay(14, "xx", "2024-05-01", ""), CategoryPast},
		{"interval suy biến: arrival thắng departure", mkStay(15, "2024-05-10", "2024-05-10", ""), CategoryArrival},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.stay, ref)
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Hủy thắng việc ngày tham chiếu nằm trong interval.
func TestClassifyCancelledInsideInterval(t *testing.T) {
	stay := mkStay(1, "2024-05-01", "2024-05-05", "cancelada")
	if got := Classify(stay, "2024-05-03"); got != CategoryPast {
		t.Fatalf("Classify() = %v, want %v", got, CategoryPast)
	}
}

// Classify là hàm thuần: cùng input thì mọi lần gọi cho cùng kết quả.
func TestClassifyDeterministic(t *testing.T) {
	stay := mkStay(1, "2024-05-08", "2024-05-12", "confirmed")
	first := Classify(stay, "2024-05-10")
	for i := 0; i < 100; i++ {
		if got := Classify(stay, "2024-05-10"); got != first {
			t.Fatalf("lần gọi %d trả %v, lần đầu trả %v", i, got, first)
		}
	}
}

func TestClassifyBadReferenceDate(t *testing.T) {
	stay := mkStay(1, "2024-05-08", "2024-05-12", "")
	if got := Classify(stay, "hôm nay"); got != CategoryUnclassified {
		t.Fatalf("Classify() = %v, want %v", got, CategoryUnclassified)
	}
	// status hủy vẫn là past kể cả khi ngày tham chiếu hỏng
	cancelled := mkStay(2, "2024-05-08", "2024-05-12", "cancelled")
	if got := Classify(cancelled, "???"); got != CategoryPast {
		t.Fatalf("Classify() = %v, want %v", got, CategoryPast)
	}
}

func TestIsActive(t *testing.T) {
	if !IsActive(mkStay(1, "2024-05-08", "2024-05-12", ""), "2024-05-10") {
		t.Error("stay phủ ngày tham chiếu phải active")
	}
	if IsActive(mkStay(2, "2024-05-08", "2024-05-10", ""), "2024-05-10") {
		t.Error("checkOut đúng ngày tham chiếu không còn active (interval nửa mở)")
	}
	if IsActive(mkStay(3, "2024-05-08", "2024-05-12", "cancelled"), "2024-05-10") {
		t.Error("stay đã hủy không bao giờ active")
	}
}

func TestValidDate(t *testing.T) {
	valid := []string{"2024-05-10", "2000-01-01", "2024-02-29"}
	for _, s := range valid {
		if !ValidDate(s) {
			t.Errorf("ValidDate(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "10/05/2024", "2024-5-10", "2024-13-01", "2023-02-29", "2024-05-10T00:00:00"}
	for _, s := range invalid {
		if ValidDate(s) {
			t.Errorf("ValidDate(%q) = true, want false", s)
		}
	}
}
