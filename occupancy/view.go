package occupancy

import (
	"sort"
	"strings"

	"homestay/models"

	"github.com/fiam/gounidecode/unidecode"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// RoomEntry là một phòng đã quy trạng thái, đơn vị của màn sơ đồ phòng.
type RoomEntry struct {
	Room  models.Room
	State RoomState
}

// StayEntry là một stay đã phân loại, đơn vị của màn danh sách đặt phòng
// và bảng hôm nay. Room là nil khi stay chưa gán phòng.
type StayEntry struct {
	Stay     models.Stay
	Category Category
	Room     *models.Room
}

// BuildRoomEntries gom stay theo phòng rồi quy trạng thái từng phòng một
// lần trên cùng một snapshot. Stay chưa gán phòng không ảnh hưởng sơ đồ.
func BuildRoomEntries(rooms []models.Room, stays []models.Stay, referenceDate string) []RoomEntry {
	byRoom := make(map[uint][]models.Stay)
	for _, st := range stays {
		if st.RoomID != nil {
			byRoom[*st.RoomID] = append(byRoom[*st.RoomID], st)
		}
	}

	entries := make([]RoomEntry, 0, len(rooms))
	for _, r := range rooms {
		entries = append(entries, RoomEntry{
			Room:  r,
			State: ResolveRoomState(r, byRoom[r.ID], referenceDate),
		})
	}
	return entries
}

// BuildStayEntries phân loại từng stay và nối thông tin phòng (nếu có)
// để lọc và sắp xếp theo mã/tên phòng.
func BuildStayEntries(stays []models.Stay, rooms []models.Room, referenceDate string) []StayEntry {
	byID := make(map[uint]*models.Room, len(rooms))
	for i := range rooms {
		byID[rooms[i].ID] = &rooms[i]
	}

	entries := make([]StayEntry, 0, len(stays))
	for _, st := range stays {
		entry := StayEntry{Stay: st, Category: Classify(st, referenceDate)}
		if st.RoomID != nil {
			entry.Room = byID[*st.RoomID]
		}
		entries = append(entries, entry)
	}
	return entries
}

// RoomFilter thu hẹp sơ đồ phòng về đúng một trạng thái.
type RoomFilter int

const (
	RoomFilterAll RoomFilter = iota
	RoomFilterOccupied
	RoomFilterDepartingToday
	RoomFilterArrivingToday
	RoomFilterReserved
	RoomFilterFree
)

// ParseRoomFilter đọc filter từ query string; chuỗi lạ hoặc rỗng là All.
func ParseRoomFilter(s string) RoomFilter {
	switch s {
	case "occupied":
		return RoomFilterOccupied
	case "departingToday":
		return RoomFilterDepartingToday
	case "arrivingToday":
		return RoomFilterArrivingToday
	case "reserved":
		return RoomFilterReserved
	case "free":
		return RoomFilterFree
	default:
		return RoomFilterAll
	}
}

func (f RoomFilter) match(e RoomEntry) bool {
	switch f {
	case RoomFilterOccupied:
		return e.State.State == StateOccupied
	case RoomFilterDepartingToday:
		return e.State.State == StateDepartingToday
	case RoomFilterArrivingToday:
		return e.State.State == StateArrivingToday
	case RoomFilterReserved:
		return e.State.State == StateReserved
	case RoomFilterFree:
		return e.State.State == StateFree
	default:
		return true
	}
}

// StayFilter thu hẹp danh sách stay về một phân loại; Today là hợp của
// arrival, departure và in-house (màn bảng hôm nay).
type StayFilter int

const (
	StayFilterAll StayFilter = iota
	StayFilterToday
	StayFilterArrival
	StayFilterDeparture
	StayFilterInHouse
	StayFilterUpcoming
	StayFilterPast
	StayFilterUnclassified
)

// ParseStayFilter đọc filter từ query string; chuỗi lạ hoặc rỗng là All.
func ParseStayFilter(s string) StayFilter {
	switch s {
	case "today":
		return StayFilterToday
	case "arrival":
		return StayFilterArrival
	case "departure":
		return StayFilterDeparture
	case "inHouse":
		return StayFilterInHouse
	case "upcoming":
		return StayFilterUpcoming
	case "past":
		return StayFilterPast
	case "unclassified":
		return StayFilterUnclassified
	default:
		return StayFilterAll
	}
}

func (f StayFilter) match(e StayEntry) bool {
	switch f {
	case StayFilterToday:
		return e.Category == CategoryArrival || e.Category == CategoryDeparture || e.Category == CategoryInHouse
	case StayFilterArrival:
		return e.Category == CategoryArrival
	case StayFilterDeparture:
		return e.Category == CategoryDeparture
	case StayFilterInHouse:
		return e.Category == CategoryInHouse
	case StayFilterUpcoming:
		return e.Category == CategoryUpcoming
	case StayFilterPast:
		return e.Category == CategoryPast
	case StayFilterUnclassified:
		return e.Category == CategoryUnclassified
	default:
		return true
	}
}

// RoomSort chọn cách sắp xếp sơ đồ phòng.
type RoomSort int

const (
	// RoomSortPriority: trạng thái khẩn trước (occupied > departing >
	// arriving > reserved > free), rồi ngày liên quan tăng dần, rồi mã phòng.
	RoomSortPriority RoomSort = iota
	// RoomSortDisplayOrder: theo thứ tự hiển thị do chủ nhà đặt, rồi mã phòng.
	RoomSortDisplayOrder
)

// ParseRoomSort đọc sort mode từ query string.
func ParseRoomSort(s string) RoomSort {
	if s == "order" {
		return RoomSortDisplayOrder
	}
	return RoomSortPriority
}

// StaySort chọn cách sắp xếp danh sách stay.
type StaySort int

const (
	// StaySortPriority: phân loại khẩn trước (in-house > departure >
	// arrival > upcoming > past), rồi ngày liên quan, rồi tên khách.
	StaySortPriority StaySort = iota
	// StaySortCheckIn: theo ngày nhận phòng tăng dần.
	StaySortCheckIn
	// StaySortGuestName: theo tên khách.
	StaySortGuestName
)

// ParseStaySort đọc sort mode từ query string.
func ParseStaySort(s string) StaySort {
	switch s {
	case "checkIn":
		return StaySortCheckIn
	case "guestName":
		return StaySortGuestName
	default:
		return StaySortPriority
	}
}

// normalizeSearch hạ chữ thường và bỏ dấu để so khớp không phân biệt dấu.
func normalizeSearch(s string) string {
	return strings.ToLower(unidecode.Unidecode(strings.TrimSpace(s)))
}

func (e RoomEntry) matchSearch(q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(normalizeSearch(e.Room.Code), q) ||
		strings.Contains(normalizeSearch(e.Room.Name), q) ||
		strings.Contains(normalizeSearch(e.Room.Type), q) {
		return true
	}
	return e.State.Stay != nil && strings.Contains(normalizeSearch(e.State.Stay.GuestName), q)
}

func (e StayEntry) matchSearch(q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(normalizeSearch(e.Stay.GuestName), q) {
		return true
	}
	if e.Room == nil {
		return false
	}
	return strings.Contains(normalizeSearch(e.Room.Code), q) ||
		strings.Contains(normalizeSearch(e.Room.Name), q) ||
		strings.Contains(normalizeSearch(e.Room.Type), q)
}

// stateWeight: trọng số ưu tiên cố định cho sơ đồ phòng, nhỏ xếp trước.
func stateWeight(s State) int {
	switch s {
	case StateOccupied:
		return 0
	case StateDepartingToday:
		return 1
	case StateArrivingToday:
		return 2
	case StateReserved:
		return 3
	default:
		return 4
	}
}

// categoryWeight: trọng số ưu tiên cố định cho danh sách stay, nhỏ xếp trước.
func categoryWeight(c Category) int {
	switch c {
	case CategoryInHouse:
		return 0
	case CategoryDeparture:
		return 1
	case CategoryArrival:
		return 2
	case CategoryUpcoming:
		return 3
	case CategoryPast:
		return 4
	default:
		return 5
	}
}

// relevantDate là khóa ngày dùng để sắp trong cùng một trọng số:
// đang ở / trả phòng → checkOut, nhận phòng / sắp tới → checkIn.
func (e RoomEntry) relevantDate() string {
	if e.State.Stay == nil {
		return ""
	}
	switch e.State.State {
	case StateOccupied, StateDepartingToday:
		return e.State.Stay.CheckOutDate
	default:
		return e.State.Stay.CheckInDate
	}
}

func (e StayEntry) relevantDate() string {
	switch e.Category {
	case CategoryInHouse, CategoryDeparture, CategoryPast:
		return e.Stay.CheckOutDate
	case CategoryArrival, CategoryUpcoming:
		return e.Stay.CheckInDate
	default:
		return ""
	}
}

// newCollator tạo collator so sánh theo locale, nhận biết số để mã phòng
// kiểu "P2" xếp trước "P10". Collator không an toàn khi dùng đồng thời nên
// mỗi lần build view tạo mới.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.Numeric, collate.IgnoreCase)
}

// BuildRoomView lọc theo trạng thái, lọc theo từ khóa rồi sắp xếp sơ đồ
// phòng. Input không bị thay đổi; kết quả ổn định với cùng một dữ liệu.
func BuildRoomView(entries []RoomEntry, filter RoomFilter, search string, sortMode RoomSort) []RoomEntry {
	q := normalizeSearch(search)
	out := make([]RoomEntry, 0, len(entries))
	for _, e := range entries {
		if filter.match(e) && e.matchSearch(q) {
			out = append(out, e)
		}
	}

	cl := newCollator()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if sortMode == RoomSortDisplayOrder {
			if a.Room.DisplayOrder != b.Room.DisplayOrder {
				return a.Room.DisplayOrder < b.Room.DisplayOrder
			}
		} else {
			wa, wb := stateWeight(a.State.State), stateWeight(b.State.State)
			if wa != wb {
				return wa < wb
			}
			if da, db := a.relevantDate(), b.relevantDate(); da != db {
				return da < db
			}
		}
		if cmp := cl.CompareString(a.Room.Code, b.Room.Code); cmp != 0 {
			return cmp < 0
		}
		return a.Room.ID < b.Room.ID
	})
	return out
}

// BuildStayView lọc theo phân loại, lọc theo từ khóa rồi sắp xếp danh sách
// stay. Input không bị thay đổi; kết quả ổn định với cùng một dữ liệu.
func BuildStayView(entries []StayEntry, filter StayFilter, search string, sortMode StaySort) []StayEntry {
	q := normalizeSearch(search)
	out := make([]StayEntry, 0, len(entries))
	for _, e := range entries {
		if filter.match(e) && e.matchSearch(q) {
			out = append(out, e)
		}
	}

	cl := newCollator()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch sortMode {
		case StaySortCheckIn:
			if a.Stay.CheckInDate != b.Stay.CheckInDate {
				return a.Stay.CheckInDate < b.Stay.CheckInDate
			}
		case StaySortGuestName:
			if cmp := cl.CompareString(a.Stay.GuestName, b.Stay.GuestName); cmp != 0 {
				return cmp < 0
			}
		default:
			wa, wb := categoryWeight(a.Category), categoryWeight(b.Category)
			if wa != wb {
				return wa < wb
			}
			if da, db := a.relevantDate(), b.relevantDate(); da != db {
				return da < db
			}
		}
		if cmp := cl.CompareString(a.Stay.GuestName, b.Stay.GuestName); cmp != 0 {
			return cmp < 0
		}
		return a.Stay.ID < b.Stay.ID
	})
	return out
}

// RoomSummary là số đếm theo trạng thái trên toàn bộ tập phòng, không phụ
// thuộc filter hay từ khóa đang áp trên danh sách.
type RoomSummary struct {
	Total          int `json:"total"`
	Occupied       int `json:"occupied"`
	DepartingToday int `json:"departingToday"`
	ArrivingToday  int `json:"arrivingToday"`
	Reserved       int `json:"reserved"`
	Free           int `json:"free"`
}

// SummarizeRooms đếm trạng thái trên tập chưa lọc.
func SummarizeRooms(entries []RoomEntry) RoomSummary {
	s := RoomSummary{Total: len(entries)}
	for _, e := range entries {
		switch e.State.State {
		case StateOccupied:
			s.Occupied++
		case StateDepartingToday:
			s.DepartingToday++
		case StateArrivingToday:
			s.ArrivingToday++
		case StateReserved:
			s.Reserved++
		case StateFree:
			s.Free++
		}
	}
	return s
}

// StaySummary là số đếm theo phân loại trên toàn bộ tập stay; Today là
// tổng của arrival + departure + inHouse.
type StaySummary struct {
	Total        int `json:"total"`
	InHouse      int `json:"inHouse"`
	Arrival      int `json:"arrival"`
	Departure    int `json:"departure"`
	Today        int `json:"today"`
	Upcoming     int `json:"upcoming"`
	Past         int `json:"past"`
	Unclassified int `json:"unclassified"`
}

// SummarizeStays đếm phân loại trên tập chưa lọc.
func SummarizeStays(entries []StayEntry) StaySummary {
	s := StaySummary{Total: len(entries)}
	for _, e := range entries {
		switch e.Category {
		case CategoryInHouse:
			s.InHouse++
		case CategoryArrival:
			s.Arrival++
		case CategoryDeparture:
			s.Departure++
		case CategoryUpcoming:
			s.Upcoming++
		case CategoryPast:
			s.Past++
		case CategoryUnclassified:
			s.Unclassified++
		}
	}
	s.Today = s.InHouse + s.Arrival + s.Departure
	return s
}
