package controllers

import (
	"log"

	"homestay/config"
	"homestay/constants"
	"homestay/models"
	"homestay/occupancy"
	"homestay/services"

	"github.com/gin-gonic/gin"
)

// currentUserID lấy userID do AuthMiddleware gắn vào context.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// ownerScope quy về tài khoản chủ dữ liệu: lễ tân thao tác trên dữ liệu
// của admin quản lý mình.
func ownerScope(c *gin.Context) (uint, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return 0, false
	}
	role, _ := c.Get("userRole")
	if r, ok := role.(int); ok && r == constants.RoleReceptionist {
		var adminID *uint
		if err := config.DB.Model(&models.User{}).Select("admin_id").Where("id = ?", userID).Scan(&adminID).Error; err != nil || adminID == nil {
			return 0, false
		}
		return *adminID, true
	}
	return userID, true
}

// referenceDate lấy ngày tham chiếu từ query `date`, mặc định là hôm nay.
// Ngày sai định dạng bị bỏ qua thay vì báo lỗi để một query hỏng không
// làm trắng màn hình.
func referenceDate(c *gin.Context) string {
	if d := c.Query("date"); occupancy.ValidDate(d) {
		return d
	}
	return occupancy.Today()
}

// loadRooms lấy snapshot phòng active của một tài khoản, ưu tiên cache.
func loadRooms(ownerID uint) ([]models.Room, error) {
	var rooms []models.Room
	cacheKey := services.RoomsCacheKey(ownerID)

	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &rooms); err == nil && len(rooms) > 0 {
		return rooms, nil
	}

	if err := config.DB.
		Where("user_id = ? AND active = ?", ownerID, true).
		Order("display_order, code").
		Find(&rooms).Error; err != nil {
		return nil, err
	}

	if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, rooms, services.SnapshotTTL); err != nil {
		log.Printf("Lỗi khi lưu snapshot phòng vào Redis: %v", err)
	}
	return rooms, nil
}

// loadStays lấy snapshot stay của một tài khoản, ưu tiên cache.
// Không cửa sổ hóa ở đây: danh sách đặt phòng cần cả tập, còn sơ đồ phòng
// tự loại stay quá khứ qua phân loại.
func loadStays(ownerID uint) ([]models.Stay, error) {
	var stays []models.Stay
	cacheKey := services.StaysCacheKey(ownerID)

	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &stays); err == nil && len(stays) > 0 {
		return stays, nil
	}

	if err := config.DB.
		Where("user_id = ?", ownerID).
		Find(&stays).Error; err != nil {
		return nil, err
	}

	if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, stays, services.SnapshotTTL); err != nil {
		log.Printf("Lỗi khi lưu snapshot stay vào Redis: %v", err)
	}
	return stays, nil
}

// invalidateSnapshot xóa cache sau khi phòng/stay thay đổi.
func invalidateSnapshot(ownerID uint) {
	if err := services.InvalidateSnapshot(config.Ctx, config.RedisClient, ownerID); err != nil {
		log.Printf("Lỗi khi xóa snapshot cache: %v", err)
	}
}
