package controllers

import (
	"errors"
	"log"
	"strconv"

	"homestay/config"
	"homestay/dto"
	"homestay/models"
	"homestay/occupancy"
	"homestay/response"
	"homestay/services"
	"homestay/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// wsMelody là instance websocket dùng để đẩy summary sau khi stay thay đổi,
// được routes gắn lúc khởi động.
var wsMelody *melody.Melody

// SetMelody gắn instance websocket cho các controller.
func SetMelody(m *melody.Melody) {
	wsMelody = m
}

func toStayListItem(e occupancy.StayEntry) dto.StayListItem {
	item := dto.StayListItem{
		ID:           e.Stay.ID,
		GuestName:    e.Stay.GuestName,
		GuestPhone:   e.Stay.GuestPhone,
		RoomID:       e.Stay.RoomID,
		CheckInDate:  e.Stay.CheckInDate,
		CheckOutDate: e.Stay.CheckOutDate,
		Notes:        e.Stay.Notes,
		Status:       e.Stay.StatusTag().String(),
		Category:     e.Category.String(),
	}
	if e.Room != nil {
		item.RoomCode = e.Room.Code
		item.RoomName = e.Room.Name
	}
	return item
}

// broadcastTodaySummary tính lại summary hôm nay và đẩy qua websocket.
// Best-effort: lỗi chỉ log.
func broadcastTodaySummary(ownerID uint) {
	rooms, err := loadRooms(ownerID)
	if err != nil {
		log.Printf("Lỗi khi load phòng cho broadcast: %v", err)
		return
	}
	stays, err := loadStays(ownerID)
	if err != nil {
		log.Printf("Lỗi khi load stay cho broadcast: %v", err)
		return
	}
	entries := occupancy.BuildStayEntries(stays, rooms, occupancy.Today())
	if err := services.BroadcastTodaySummary(wsMelody, ownerID, occupancy.SummarizeStays(entries)); err != nil {
		log.Printf("Lỗi khi broadcast summary: %v", err)
	}
}

// GetStays trả danh sách đặt phòng đã phân loại theo ngày tham chiếu,
// lọc theo category (`filter`, nhận cả "today"), tìm theo từ khóa và sắp
// theo sort mode; phân trang như các danh sách khác. Summary luôn tính
// trên cả tập stay của tài khoản, không phụ thuộc filter/search.
func GetStays(c *gin.Context) {
	ownerID, ok := ownerScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	rooms, err := loadRooms(ownerID)
	if err != nil {
		response.ServerError(c)
		return
	}
	stays, err := loadStays(ownerID)
	if err != nil {
		response.ServerError(c)
		return
	}

	ref := referenceDate(c)
	entries := occupancy.BuildStayEntries(stays, rooms, ref)
	summary := occupancy.SummarizeStays(entries)

	search := c.Query("search")

	// Elasticsearch (nếu bật) thu hẹp tập trước bằng fuzzy search; danh
	// sách trả về vẫn đi qua view builder để phân loại và sắp xếp.
	if search != "" && services.ElasticEnabled() {
		if ids, err := services.SearchStayIDs(ownerID, search); err == nil {
			allowed := make(map[uint]bool, len(ids))
			for _, id := range ids {
				allowed[id] = true
			}
			narrowed := make([]occupancy.StayEntry, 0, len(ids))
			for _, e := range entries {
				if allowed[e.Stay.ID] {
					narrowed = append(narrowed, e)
				}
			}
			entries = narrowed
			search = ""
		} else {
			log.Printf("Elastic search lỗi, rơi về tìm trong bộ nhớ: %v", err)
		}
	}

	view := occupancy.BuildStayView(
		entries,
		occupancy.ParseStayFilter(c.Query("filter")),
		search,
		occupancy.ParseStaySort(c.Query("sort")),
	)

	// Xử lý phân trang
	page := 0
	limit := 20
	if parsedPage, err := strconv.Atoi(c.Query("page")); err == nil && parsedPage >= 0 {
		page = parsedPage
	}
	if parsedLimit, err := strconv.Atoi(c.Query("limit")); err == nil && parsedLimit > 0 {
		limit = parsedLimit
	}

	total := len(view)
	start := page * limit
	end := start + limit
	if start >= total {
		view = nil
	} else if end > total {
		view = view[start:]
	} else {
		view = view[start:end]
	}

	items := make([]dto.StayListItem, 0, len(view))
	for _, e := range view {
		items = append(items, toStayListItem(e))
	}

	response.SuccessWithPagination(c, items, summary, page, limit, total)
}

// CreateStay tạo đặt phòng mới; phòng là tùy chọn (đặt chưa xếp phòng).
func CreateStay(c *gin.Context) {
	ownerID, ok := ownerScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.StayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateStay(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.RoomID != nil {
		var count int64
		config.DB.Model(&models.Room{}).Where("id = ? AND user_id = ?", *req.RoomID, ownerID).Count(&count)
		if count == 0 {
			response.BadRequest(c, "Phòng không tồn tại")
			return
		}
	}

	stay := models.Stay{
		UserID:       ownerID,
		RoomID:       req.RoomID,
		GuestName:    req.GuestName,
		GuestPhone:   req.GuestPhone,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Notes:        req.Notes,
		Status:       models.ParseStayStatus(req.Status).String(),
	}
	if err := config.DB.Create(&stay).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.IndexStay(stay); err != nil {
		log.Printf("Lỗi khi index stay %d: %v", stay.ID, err)
	}
	invalidateSnapshot(ownerID)
	broadcastTodaySummary(ownerID)
	response.Success(c, stay)
}

// GetStayDetail trả chi tiết một stay kèm phân loại tại ngày tham chiếu.
func GetStayDetail(c *gin.Context) {
	ownerID, ok := ownerScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	stayID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "id không hợp lệ")
		return
	}

	var stay models.Stay
	if err := config.DB.Preload("Room").Where("id = ? AND user_id = ?", stayID, ownerID).First(&stay).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	ref := referenceDate(c)
	response.Success(c, gin.H{
		"stay":     stay,
		"status":   stay.StatusTag().String(),
		"category": occupancy.Classify(stay, ref).String(),
	})
}

// UpdateStay cập nhật đặt phòng
func UpdateStay(c *gin.Context) {
	ownerID, ok := ownerScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.StayRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateStay(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var stay models.Stay
	if err := config.DB.Where("id = ? AND user_id = ?", req.ID, ownerID).First(&stay).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if req.RoomID != nil {
		var count int64
		config.DB.Model(&models.Room{}).Where("id = ? AND user_id = ?", *req.RoomID, ownerID).Count(&count)
		if count == 0 {
			response.BadRequest(c, "Phòng không tồn tại")
			return
		}
	}

	stay.RoomID = req.RoomID
	stay.GuestName = req.GuestName
	stay.GuestPhone = req.GuestPhone
	stay.CheckInDate = req.CheckInDate
	stay.CheckOutDate = req.CheckOutDate
	stay.Notes = req.Notes
	if req.Status != "" {
		stay.Status = models.ParseStayStatus(req.Status).String()
	}

	if err := config.DB.Save(&stay).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.IndexStay(stay); err != nil {
		log.Printf("Lỗi khi index stay %d: %v", stay.ID, err)
	}
	invalidateSnapshot(ownerID)
	broadcastTodaySummary(ownerID)
	response.Success(c, stay)
}

// ChangeStayStatus đổi trạng thái vòng đời của stay (xác nhận, hủy,
// trả phòng). Trạng thái lưu dạng canonical, phần core chỉ thấy tag.
func ChangeStayStatus(c *gin.Context) {
	ownerID, ok := ownerScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.StayStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var stay models.Stay
	if err := config.DB.Where("id = ? AND user_id = ?", req.ID, ownerID).First(&stay).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	stay.Status = models.ParseStayStatus(req.Status).String()
	if err := config.DB.Save(&stay).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.IndexStay(stay); err != nil {
		log.Printf("Lỗi khi index stay %d: %v", stay.ID, err)
	}
	invalidateSnapshot(ownerID)
	broadcastTodaySummary(ownerID)
	response.Success(c, gin.H{"id": stay.ID, "status": stay.StatusTag().String()})
}

// DeleteStay xóa hẳn một stay
func DeleteStay(c *gin.Context) {
	ownerID, ok := ownerScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	stayID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "id không hợp lệ")
		return
	}

	result := config.DB.Where("id = ? AND user_id = ?", stayID, ownerID).Delete(&models.Stay{})
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	if err := services.RemoveStayIndex(uint(stayID)); err != nil {
		log.Printf("Lỗi khi xóa index stay %d: %v", stayID, err)
	}
	invalidateSnapshot(ownerID)
	broadcastTodaySummary(ownerID)
	response.Success(c, gin.H{"id": stayID})
}

// SuggestGuests gợi ý tên khách gần đúng cho ô tìm kiếm.
func SuggestGuests(c *gin.Context) {
	ownerID, ok := ownerScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "q là bắt buộc")
		return
	}

	limit := 5
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}

	stays, err := loadStays(ownerID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, services.SuggestGuests(stays, query, limit))
}
