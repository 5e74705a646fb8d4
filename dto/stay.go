package dto

// StayRequest là DTO cho request tạo/cập nhật stay
type StayRequest struct {
	ID           uint   `json:"id"`
	RoomID       *uint  `json:"roomId"`
	GuestName    string `json:"guestName" binding:"required"`
	GuestPhone   string `json:"guestPhone"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Notes        string `json:"notes"`
	Status       string `json:"status"`
}

// StayStatusRequest là DTO cho request đổi trạng thái stay
type StayStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// StayListItem là một dòng trên danh sách đặt phòng / bảng hôm nay
type StayListItem struct {
	ID           uint   `json:"id"`
	GuestName    string `json:"guestName"`
	GuestPhone   string `json:"guestPhone,omitempty"`
	RoomID       *uint  `json:"roomId"`
	RoomCode     string `json:"roomCode,omitempty"`
	RoomName     string `json:"roomName,omitempty"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Notes        string `json:"notes,omitempty"`
	Status       string `json:"status"`
	Category     string `json:"category"`
}

// GuestSuggestion là một gợi ý tên khách từ tìm kiếm gần đúng
type GuestSuggestion struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}
