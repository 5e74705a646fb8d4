package services

import (
	"testing"

	"homestay/models"
)

func staysWithGuests(names ...string) []models.Stay {
	stays := make([]models.Stay, 0, len(names))
	for i, name := range names {
		stays = append(stays, models.Stay{ID: uint(i + 1), GuestName: name})
	}
	return stays
}

func TestSuggestGuestsAccentInsensitive(t *testing.T) {
	stays := staysWithGuests("Trần An", "Nguyễn Bình", "José Silva")

	// gõ không dấu vẫn tìm ra tên có dấu, trả về bản viết gốc
	got := SuggestGuests(stays, "tran an", 5)
	if len(got) == 0 {
		t.Fatal("không có gợi ý nào")
	}
	if got[0].Name != "Trần An" {
		t.Errorf("gợi ý đầu = %q, muốn %q", got[0].Name, "Trần An")
	}
}

func TestSuggestGuestsTypo(t *testing.T) {
	stays := staysWithGuests("Nguyễn Bình", "Trần An", "Phạm Cường")

	// gõ sai một ký tự vẫn khớp được
	got := SuggestGuests(stays, "nguyen binj", 5)
	if len(got) == 0 {
		t.Fatal("không có gợi ý nào")
	}
	if got[0].Name != "Nguyễn Bình" {
		t.Errorf("gợi ý đầu = %q, muốn %q", got[0].Name, "Nguyễn Bình")
	}
}

func TestSuggestGuestsLimit(t *testing.T) {
	stays := staysWithGuests("An A", "An B", "An C", "An D", "An E")

	got := SuggestGuests(stays, "an", 2)
	if len(got) > 2 {
		t.Errorf("số gợi ý = %d, muốn tối đa 2", len(got))
	}
}

func TestSuggestGuestsDedup(t *testing.T) {
	// cùng một khách đặt nhiều lần chỉ gợi ý một lần
	stays := staysWithGuests("Trần An", "Trần An", "Trần An")

	got := SuggestGuests(stays, "tran an", 5)
	if len(got) != 1 {
		t.Fatalf("số gợi ý = %d, muốn 1 (%v)", len(got), got)
	}
}

func TestSuggestGuestsEmpty(t *testing.T) {
	if got := SuggestGuests(nil, "an", 5); got != nil {
		t.Errorf("muốn nil khi không có stay, nhận %v", got)
	}
	if got := SuggestGuests(staysWithGuests("Trần An"), "   ", 5); got != nil {
		t.Errorf("muốn nil khi query rỗng, nhận %v", got)
	}
}

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Trần An  ", "tran an"},
		{"JOSÉ", "jose"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeInput(tt.in); got != tt.want {
			t.Errorf("normalizeInput(%q) = %q, muốn %q", tt.in, got, tt.want)
		}
	}
}
