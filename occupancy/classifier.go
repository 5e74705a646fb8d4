package occupancy

import "homestay/models"

// Category là phân loại của một stay so với ngày tham chiếu.
type Category int

const (
	CategoryUnclassified Category = iota
	CategoryArrival
	CategoryDeparture
	CategoryInHouse
	CategoryUpcoming
	CategoryPast
)

var categoryLabels = map[Category]string{
	CategoryUnclassified: "unclassified",
	CategoryArrival:      "arrival",
	CategoryDeparture:    "departure",
	CategoryInHouse:      "inHouse",
	CategoryUpcoming:     "upcoming",
	CategoryPast:         "past",
}

func (c Category) String() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return "unclassified"
}

// Classify xác định phân loại của stay theo ngày tham chiếu.
// Các quy tắc xét theo thứ tự ưu tiên, quy tắc khớp đầu tiên thắng:
//  1. status hủy / no-show     → Past, bất kể ngày
//  2. status đã trả phòng      → Past
//  3. checkIn <= ref < checkOut → InHouse (đồng thời là điều kiện "đang lưu trú")
//  4. checkIn == ref            → Arrival
//  5. checkOut == ref           → Departure
//  6. checkIn > ref             → Upcoming
//  7. checkOut < ref            → Past
//  8. còn lại (ngày thiếu/hỏng) → Unclassified
//
// Với interval suy biến checkIn == checkOut == ref thì quy tắc 3 không khớp
// (interval rỗng) nên Arrival thắng Departure.
func Classify(stay models.Stay, referenceDate string) Category {
	switch stay.StatusTag() {
	case models.StayStatusCancelled, models.StayStatusCheckedOut:
		return CategoryPast
	}

	if !ValidDate(referenceDate) {
		return CategoryUnclassified
	}

	in := stay.CheckInDate
	out := stay.CheckOutDate
	inOK := ValidDate(in)
	outOK := ValidDate(out)

	if inOK && outOK && in <= referenceDate && referenceDate < out {
		return CategoryInHouse
	}
	if inOK && in == referenceDate {
		return CategoryArrival
	}
	if outOK && out == referenceDate {
		return CategoryDeparture
	}
	if inOK && in > referenceDate {
		return CategoryUpcoming
	}
	if outOK && out < referenceDate {
		return CategoryPast
	}
	return CategoryUnclassified
}

// IsActive báo stay có phải là khách đang lưu trú của phòng tại ngày tham
// chiếu không. Đây chính là điều kiện quy tắc 3 mà ResolveRoomState dùng.
func IsActive(stay models.Stay, referenceDate string) bool {
	return Classify(stay, referenceDate) == CategoryInHouse
}
