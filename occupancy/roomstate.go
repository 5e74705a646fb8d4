package occupancy

import "homestay/models"

// State là trạng thái hiện tại duy nhất của một phòng.
type State int

const (
	StateFree State = iota
	StateReserved
	StateArrivingToday
	StateDepartingToday
	StateOccupied
)

var stateLabels = map[State]string{
	StateFree:           "free",
	StateReserved:       "reserved",
	StateArrivingToday:  "arrivingToday",
	StateDepartingToday: "departingToday",
	StateOccupied:       "occupied",
}

func (s State) String() string {
	if label, ok := stateLabels[s]; ok {
		return label
	}
	return "free"
}

// HintFree là hint cho phòng trống không có đặt phòng sắp tới.
const HintFree = "no forecast"

// RoomState là kết quả quy trạng thái của một phòng: trạng thái, stay quyết
// định trạng thái đó (nil nếu phòng trống) và hint hiển thị cho lễ tân.
type RoomState struct {
	State State
	Stay  *models.Stay
	Hint  string
}

// ResolveRoomState quy toàn bộ stay của một phòng về đúng một trạng thái.
// Thứ tự ưu tiên: đang lưu trú > trả phòng hôm nay > nhận phòng hôm nay >
// có đặt phòng tương lai > trống. Phòng vừa có khách vừa có đặt phòng cùng
// ngày vẫn báo occupied: lễ tân cần thấy hiện trạng trước.
//
// Dữ liệu đúng thì mỗi phòng chỉ có một stay đang lưu trú; nếu bị
// double-booking thì stay tạo sớm nhất thắng để kết quả ổn định giữa các
// lần load. Ứng viên tương lai chọn theo checkIn nhỏ nhất, hòa thì theo ID.
func ResolveRoomState(room models.Room, stays []models.Stay, referenceDate string) RoomState {
	var active, departing, arriving, future *models.Stay

	for i := range stays {
		st := &stays[i]
		switch Classify(*st, referenceDate) {
		case CategoryInHouse:
			if active == nil || createdBefore(st, active) {
				active = st
			}
		case CategoryDeparture:
			if departing == nil || st.ID < departing.ID {
				departing = st
			}
		case CategoryArrival:
			if arriving == nil || st.ID < arriving.ID {
				arriving = st
			}
		case CategoryUpcoming:
			if future == nil || st.CheckInDate < future.CheckInDate ||
				(st.CheckInDate == future.CheckInDate && st.ID < future.ID) {
				future = st
			}
		}
	}

	switch {
	case active != nil:
		return RoomState{State: StateOccupied, Stay: active, Hint: "until " + active.CheckOutDate}
	case departing != nil:
		return RoomState{State: StateDepartingToday, Stay: departing, Hint: departing.CheckOutDate}
	case arriving != nil:
		return RoomState{State: StateArrivingToday, Stay: arriving, Hint: arriving.CheckInDate}
	case future != nil:
		return RoomState{State: StateReserved, Stay: future, Hint: "next " + future.CheckInDate}
	default:
		return RoomState{State: StateFree, Hint: HintFree}
	}
}

func createdBefore(a, b *models.Stay) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}
