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
	"homestay/validator"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func toRoomMapItem(e occupancy.RoomEntry) dto.RoomMapItem {
	item := dto.RoomMapItem{
		ID:       e.Room.ID,
		Code:     e.Room.Code,
		Name:     e.Room.Name,
		Type:     e.Room.Type,
		Capacity: e.Room.Capacity,
		Order:    e.Room.DisplayOrder,
		Avatar:   e.Room.Avatar,
		State:    e.State.State.String(),
		Hint:     e.State.Hint,
	}
	if e.State.Stay != nil {
		item.Guest = &dto.GuestRef{
			StayID:       e.State.Stay.ID,
			GuestName:    e.State.Stay.GuestName,
			CheckInDate:  e.State.Stay.CheckInDate,
			CheckOutDate: e.State.Stay.CheckOutDate,
		}
	}
	return item
}

// GetRoomMap trả sơ đồ phòng: mỗi phòng đúng một trạng thái tại ngày tham
// chiếu, lọc/tìm/sắp theo query. Summary luôn tính trên cả tập phòng.
func GetRoomMap(c *gin.Context) {
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
	entries := occupancy.BuildRoomEntries(rooms, stays, ref)
	summary := occupancy.SummarizeRooms(entries)

	view := occupancy.BuildRoomView(
		entries,
		occupancy.ParseRoomFilter(c.Query("state")),
		c.Query("search"),
		occupancy.ParseRoomSort(c.Query("sort")),
	)

	items := make([]dto.RoomMapItem, 0, len(view))
	for _, e := range view {
		items = append(items, toRoomMapItem(e))
	}

	response.SuccessWithSummary(c, items, summary)
}

// CreateRoom tạo phòng mới
func CreateRoom(c *gin.Context) {
	ownerID, ok := ownerScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if req.Capacity == 0 {
		req.Capacity = 1
	}
	if err := validator.ValidateRoom(req.Code, req.Name, req.Capacity); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var count int64
	config.DB.Model(&models.Room{}).Where("user_id = ? AND code = ?", ownerID, req.Code).Count(&count)
	if count > 0 {
		response.BadRequest(c, "Mã phòng đã tồn tại")
		return
	}

	room := models.Room{
		UserID:       ownerID,
		Code:         req.Code,
		Name:         req.Name,
		Type:         req.Type,
		Capacity:     req.Capacity,
		DisplayOrder: req.Order,
		Active:       true,
	}
	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateSnapshot(ownerID)
	response.Success(c, room)
}

// GetRoomDetail trả chi tiết phòng kèm trạng thái hiện tại và các stay
// tham chiếu tới phòng.
func GetRoomDetail(c *gin.Context) {
	ownerID, ok := ownerScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "id không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.Where("id = ? AND user_id = ?", roomID, ownerID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	var stays []models.Stay
	if err := config.DB.Where("room_id = ? AND user_id = ?", room.ID, ownerID).Find(&stays).Error; err != nil {
		response.ServerError(c)
		return
	}

	ref := referenceDate(c)
	state := occupancy.ResolveRoomState(room, stays, ref)

	response.Success(c, gin.H{
		"room":  room,
		"state": toRoomMapItem(occupancy.RoomEntry{Room: room, State: state}),
		"stays": stays,
	})
}

// UpdateRoom cập nhật thông tin phòng
func UpdateRoom(c *gin.Context) {
	ownerID, ok := ownerScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.Where("id = ? AND user_id = ?", req.ID, ownerID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if req.Code != "" {
		room.Code = req.Code
	}
	if req.Name != "" {
		room.Name = req.Name
	}
	if req.Type != "" {
		room.Type = req.Type
	}
	if req.Capacity != 0 {
		room.Capacity = req.Capacity
	}
	if req.Order != 0 {
		room.DisplayOrder = req.Order
	}
	if err := validator.ValidateRoom(room.Code, room.Name, room.Capacity); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateSnapshot(ownerID)
	response.Success(c, room)
}

// ChangeRoomStatus bật/tắt phòng. Tắt phòng (deactivate) được ưu tiên
// hơn xóa hẳn để giữ lịch sử stay.
func ChangeRoomStatus(c *gin.Context) {
	ownerID, ok := ownerScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.RoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	result := config.DB.Model(&models.Room{}).
		Where("id = ? AND user_id = ?", req.ID, ownerID).
		Update("active", req.Active)
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	invalidateSnapshot(ownerID)
	response.Success(c, gin.H{"id": req.ID, "active": req.Active})
}

// DeleteRoom xóa hẳn phòng; stay đang tham chiếu được gỡ về chưa-gán-phòng
// thay vì xóa theo.
func DeleteRoom(c *gin.Context) {
	ownerID, ok := ownerScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "id không hợp lệ")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Stay{}).
			Where("room_id = ? AND user_id = ?", roomID, ownerID).
			Update("room_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", roomID, ownerID).Delete(&models.Room{}).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	invalidateSnapshot(ownerID)
	response.Success(c, gin.H{"id": roomID})
}

// UploadRoomPhoto upload ảnh phòng lên Cloudinary và lưu URL.
func UploadRoomPhoto(c *gin.Context) {
	ownerID, ok := ownerScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "id không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.Where("id = ? AND user_id = ?", roomID, ownerID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Thiếu file ảnh")
		return
	}
	src, err := file.Open()
	if err != nil {
		response.ServerError(c)
		return
	}
	defer src.Close()

	uploadResult, err := config.Cloudinary.Upload.Upload(config.Ctx, src, uploader.UploadParams{
		Folder: "rooms",
	})
	if err != nil {
		log.Printf("Lỗi khi upload ảnh phòng: %v", err)
		response.ServerError(c)
		return
	}

	room.Avatar = uploadResult.SecureURL
	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateSnapshot(ownerID)
	response.Success(c, gin.H{"id": room.ID, "avatar": room.Avatar})
}
