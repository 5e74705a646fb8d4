package occupancy

import (
	"reflect"
	"testing"

	"homestay/models"
)

// snapshot chung cho các test view: 4 phòng, 6 stay, ngày tham chiếu 2024-05-10.
func viewFixture() ([]models.Room, []models.Stay, string) {
	rooms := []models.Room{
		{ID: 1, Code: "P2", Name: "Phòng vườn", Type: "standard", DisplayOrder: 2, Active: true},
		{ID: 2, Code: "P10", Name: "Phòng hồ bơi", Type: "suite", DisplayOrder: 1, Active: true},
		{ID: 3, Code: "P3", Name: "Phòng sân thượng", Type: "standard", DisplayOrder: 3, Active: true},
		{ID: 4, Code: "P1", Name: "Phòng góc", Type: "deluxe", DisplayOrder: 4, Active: true},
	}
	r1, r2, r3 := uint(1), uint(2), uint(3)
	stays := []models.Stay{
		{ID: 1, RoomID: &r1, GuestName: "Trần An", CheckInDate: "2024-05-08", CheckOutDate: "2024-05-12", Status: "confirmed"},
		{ID: 2, RoomID: &r2, GuestName: "José Almeida", CheckInDate: "2024-05-05", CheckOutDate: "2024-05-10"},
		{ID: 3, RoomID: &r3, GuestName: "Lê Bình", CheckInDate: "2024-06-01", CheckOutDate: "2024-06-05"},
		{ID: 4, RoomID: nil, GuestName: "Mai Chi", CheckInDate: "2024-05-20", CheckOutDate: "2024-05-22"},
		{ID: 5, RoomID: &r2, GuestName: "Hà Dung", CheckInDate: "2024-04-01", CheckOutDate: "2024-04-05", Status: "checked_out"},
		{ID: 6, RoomID: &r1, GuestName: "Vũ Em", CheckInDate: "2024-05-01", CheckOutDate: "2024-05-03", Status: "cancelada"},
	}
	return rooms, stays, "2024-05-10"
}

func roomCodes(entries []RoomEntry) []string {
	codes := make([]string, 0, len(entries))
	for _, e := range entries {
		codes = append(codes, e.Room.Code)
	}
	return codes
}

func TestBuildRoomEntriesStates(t *testing.T) {
	rooms, stays, ref := viewFixture()
	entries := BuildRoomEntries(rooms, stays, ref)

	want := map[string]State{
		"P2":  StateOccupied,       // Trần An đang ở
		"P10": StateDepartingToday, // José trả hôm nay
		"P3":  StateReserved,       // Lê Bình tháng sau
		"P1":  StateFree,
	}
	for _, e := range entries {
		if e.State.State != want[e.Room.Code] {
			t.Errorf("phòng %s: State = %v, want %v", e.Room.Code, e.State.State, want[e.Room.Code])
		}
	}
}

func TestBuildRoomViewPrioritySort(t *testing.T) {
	rooms, stays, ref := viewFixture()
	entries := BuildRoomEntries(rooms, stays, ref)
	got := BuildRoomView(entries, RoomFilterAll, "", RoomSortPriority)

	want := []string{"P2", "P10", "P3", "P1"}
	if !reflect.DeepEqual(roomCodes(got), want) {
		t.Fatalf("thứ tự = %v, want %v", roomCodes(got), want)
	}
}

func TestBuildRoomViewDisplayOrderSort(t *testing.T) {
	rooms, stays, ref := viewFixture()
	entries := BuildRoomEntries(rooms, stays, ref)
	got := BuildRoomView(entries, RoomFilterAll, "", RoomSortDisplayOrder)

	want := []string{"P10", "P2", "P3", "P1"}
	if !reflect.DeepEqual(roomCodes(got), want) {
		t.Fatalf("thứ tự = %v, want %v", roomCodes(got), want)
	}
}

// Mã phòng sắp theo kiểu nhận biết số: P2 trước P10.
func TestBuildRoomViewNumericCodeOrder(t *testing.T) {
	rooms := []models.Room{
		{ID: 1, Code: "P10", Active: true},
		{ID: 2, Code: "P2", Active: true},
		{ID: 3, Code: "P1", Active: true},
	}
	entries := BuildRoomEntries(rooms, nil, "2024-05-10")
	got := BuildRoomView(entries, RoomFilterAll, "", RoomSortPriority)

	want := []string{"P1", "P2", "P10"}
	if !reflect.DeepEqual(roomCodes(got), want) {
		t.Fatalf("thứ tự = %v, want %v", roomCodes(got), want)
	}
}

// Phòng chỉ có đặt phòng tương lai nằm trong filter reserved,
// không nằm trong filter free.
func TestBuildRoomViewReservedFilter(t *testing.T) {
	rooms, stays, ref := viewFixture()
	entries := BuildRoomEntries(rooms, stays, ref)

	reserved := BuildRoomView(entries, RoomFilterReserved, "", RoomSortPriority)
	if len(reserved) != 1 || reserved[0].Room.Code != "P3" {
		t.Fatalf("filter reserved = %v, want [P3]", roomCodes(reserved))
	}

	free := BuildRoomView(entries, RoomFilterFree, "", RoomSortPriority)
	for _, e := range free {
		if e.Room.Code == "P3" {
			t.Error("phòng reserved không được lọt vào filter free")
		}
	}
}

// Tìm kiếm không phân biệt hoa thường và dấu, khớp tên khách lẫn thông tin phòng.
func TestBuildRoomViewSearch(t *testing.T) {
	rooms, stays, ref := viewFixture()
	entries := BuildRoomEntries(rooms, stays, ref)

	got := BuildRoomView(entries, RoomFilterAll, "tran an", RoomSortPriority)
	if len(got) != 1 || got[0].Room.Code != "P2" {
		t.Fatalf("search theo tên khách = %v, want [P2]", roomCodes(got))
	}

	got = BuildRoomView(entries, RoomFilterAll, "SUITE", RoomSortPriority)
	if len(got) != 1 || got[0].Room.Code != "P10" {
		t.Fatalf("search theo loại phòng = %v, want [P10]", roomCodes(got))
	}

	// filter và search kết hợp theo AND
	got = BuildRoomView(entries, RoomFilterFree, "suite", RoomSortPriority)
	if len(got) != 0 {
		t.Fatalf("filter free AND search suite = %v, want rỗng", roomCodes(got))
	}
}

func stayIDs(entries []StayEntry) []uint {
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.Stay.ID)
	}
	return ids
}

func TestBuildStayEntriesCategories(t *testing.T) {
	rooms, stays, ref := viewFixture()
	entries := BuildStayEntries(stays, rooms, ref)

	want := map[uint]Category{
		1: CategoryInHouse,
		2: CategoryDeparture,
		3: CategoryUpcoming,
		4: CategoryUpcoming,
		5: CategoryPast,
		6: CategoryPast,
	}
	for _, e := range entries {
		if e.Category != want[e.Stay.ID] {
			t.Errorf("stay %d: Category = %v, want %v", e.Stay.ID, e.Category, want[e.Stay.ID])
		}
	}

	// stay chưa gán phòng vẫn được phân loại, không có thông tin phòng
	for _, e := range entries {
		if e.Stay.ID == 4 && e.Room != nil {
			t.Error("stay chưa gán phòng không được nối phòng")
		}
	}
}

// Bảng hôm nay là hợp arrival ∪ departure ∪ inHouse.
func TestBuildStayViewTodayFilter(t *testing.T) {
	rooms, stays, ref := viewFixture()
	entries := BuildStayEntries(stays, rooms, ref)
	got := BuildStayView(entries, StayFilterToday, "", StaySortPriority)

	want := []uint{1, 2} // in-house trước departure
	if !reflect.DeepEqual(stayIDs(got), want) {
		t.Fatalf("today board = %v, want %v", stayIDs(got), want)
	}
}

// Tìm kiếm bỏ dấu: "jose" khớp "José Almeida".
func TestBuildStayViewAccentInsensitiveSearch(t *testing.T) {
	rooms, stays, ref := viewFixture()
	entries := BuildStayEntries(stays, rooms, ref)
	got := BuildStayView(entries, StayFilterAll, "jose", StaySortPriority)

	if len(got) != 1 || got[0].Stay.ID != 2 {
		t.Fatalf("search = %v, want [2]", stayIDs(got))
	}
}

// Sắp xếp ổn định và lũy đẳng: sắp một danh sách đã sắp không đổi thứ tự,
// và mọi hoán vị đầu vào cho cùng một kết quả.
func TestBuildStayViewDeterministicOrder(t *testing.T) {
	rooms, stays, ref := viewFixture()

	base := BuildStayView(BuildStayEntries(stays, rooms, ref), StayFilterAll, "", StaySortPriority)
	baseIDs := stayIDs(base)

	again := BuildStayView(base, StayFilterAll, "", StaySortPriority)
	if !reflect.DeepEqual(stayIDs(again), baseIDs) {
		t.Fatalf("sắp lại danh sách đã sắp đổi thứ tự: %v -> %v", baseIDs, stayIDs(again))
	}

	reversed := make([]models.Stay, len(stays))
	for i, st := range stays {
		reversed[len(stays)-1-i] = st
	}
	perm := BuildStayView(BuildStayEntries(reversed, rooms, ref), StayFilterAll, "", StaySortPriority)
	if !reflect.DeepEqual(stayIDs(perm), baseIDs) {
		t.Fatalf("đảo thứ tự đầu vào đổi kết quả: %v, want %v", stayIDs(perm), baseIDs)
	}
}

func TestBuildStayViewCheckInSort(t *testing.T) {
	rooms, stays, ref := viewFixture()
	entries := BuildStayEntries(stays, rooms, ref)
	got := BuildStayView(entries, StayFilterUpcoming, "", StaySortCheckIn)

	want := []uint{4, 3} // 2024-05-20 trước 2024-06-01
	if !reflect.DeepEqual(stayIDs(got), want) {
		t.Fatalf("thứ tự = %v, want %v", stayIDs(got), want)
	}
}

// Summary đếm trên tập chưa lọc, không đổi theo filter/search đang áp,
// và tổng các phân loại bằng tổng số stay.
func TestSummarizeStays(t *testing.T) {
	rooms, stays, ref := viewFixture()
	entries := BuildStayEntries(stays, rooms, ref)
	s := SummarizeStays(entries)

	if s.Total != 6 {
		t.Fatalf("Total = %d, want 6", s.Total)
	}
	if s.InHouse != 1 || s.Departure != 1 || s.Arrival != 0 || s.Upcoming != 2 || s.Past != 2 || s.Unclassified != 0 {
		t.Fatalf("số đếm sai: %+v", s)
	}
	if s.Today != s.InHouse+s.Arrival+s.Departure {
		t.Errorf("Today = %d, want %d", s.Today, s.InHouse+s.Arrival+s.Departure)
	}
	if sum := s.InHouse + s.Arrival + s.Departure + s.Upcoming + s.Past + s.Unclassified; sum != s.Total {
		t.Errorf("tổng phân loại = %d, want %d", sum, s.Total)
	}

	// áp filter rồi tính lại summary trên tập gốc: không đổi
	_ = BuildStayView(entries, StayFilterPast, "jose", StaySortPriority)
	if got := SummarizeStays(entries); !reflect.DeepEqual(got, s) {
		t.Errorf("summary đổi sau khi build view: %+v != %+v", got, s)
	}
}

func TestSummarizeRooms(t *testing.T) {
	rooms, stays, ref := viewFixture()
	entries := BuildRoomEntries(rooms, stays, ref)
	s := SummarizeRooms(entries)

	want := RoomSummary{Total: 4, Occupied: 1, DepartingToday: 1, ArrivingToday: 0, Reserved: 1, Free: 1}
	if s != want {
		t.Fatalf("SummarizeRooms = %+v, want %+v", s, want)
	}
	if sum := s.Occupied + s.DepartingToday + s.ArrivingToday + s.Reserved + s.Free; sum != s.Total {
		t.Errorf("tổng trạng thái = %d, want %d", sum, s.Total)
	}
}

func TestParseFilters(t *testing.T) {
	if ParseStayFilter("today") != StayFilterToday || ParseStayFilter("") != StayFilterAll || ParseStayFilter("xyz") != StayFilterAll {
		t.Error("ParseStayFilter sai")
	}
	if ParseRoomFilter("free") != RoomFilterFree || ParseRoomFilter("") != RoomFilterAll {
		t.Error("ParseRoomFilter sai")
	}
	if ParseStaySort("checkIn") != StaySortCheckIn || ParseStaySort("") != StaySortPriority {
		t.Error("ParseStaySort sai")
	}
	if ParseRoomSort("order") != RoomSortDisplayOrder || ParseRoomSort("") != RoomSortPriority {
		t.Error("ParseRoomSort sai")
	}
}
