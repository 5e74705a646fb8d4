package dto

// CreateRoomRequest là DTO cho request tạo room
type CreateRoomRequest struct {
	Code     string `json:"code" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
	Order    int    `json:"order"`
}

// UpdateRoomRequest là DTO cho request cập nhật room
type UpdateRoomRequest struct {
	ID       uint   `json:"id" binding:"required"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
	Order    int    `json:"order"`
}

// RoomStatusRequest là DTO cho request bật/tắt phòng (soft lifecycle:
// ưu tiên deactivate thay vì xóa hẳn)
type RoomStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Active bool `json:"active"`
}

// GuestRef là thông tin rút gọn của stay quyết định trạng thái phòng
type GuestRef struct {
	StayID       uint   `json:"stayId"`
	GuestName    string `json:"guestName"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

// RoomMapItem là một ô trên sơ đồ phòng
type RoomMapItem struct {
	ID       uint      `json:"id"`
	Code     string    `json:"code"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Capacity int       `json:"capacity"`
	Order    int       `json:"order"`
	Avatar   string    `json:"avatar,omitempty"`
	State    string    `json:"state"`
	Hint     string    `json:"hint"`
	Guest    *GuestRef `json:"guest,omitempty"`
}
