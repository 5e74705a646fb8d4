package controllers

import (
	"homestay/dto"
	"homestay/occupancy"
	"homestay/response"

	"github.com/gin-gonic/gin"
)

// GetTodayBoard trả bảng vận hành hôm nay: khách đến, khách đi, khách
// đang ở, mỗi nhóm đã sắp theo ngày liên quan rồi tên khách. Cùng một
// view builder với danh sách đặt phòng, chỉ khác cấu hình filter.
func GetTodayBoard(c *gin.Context) {
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
	search := c.Query("search")

	board := dto.TodayBoard{
		Arrivals:   make([]dto.StayListItem, 0),
		Departures: make([]dto.StayListItem, 0),
		InHouse:    make([]dto.StayListItem, 0),
		Summary:    occupancy.SummarizeStays(entries),
	}
	for _, e := range occupancy.BuildStayView(entries, occupancy.StayFilterArrival, search, occupancy.StaySortPriority) {
		board.Arrivals = append(board.Arrivals, toStayListItem(e))
	}
	for _, e := range occupancy.BuildStayView(entries, occupancy.StayFilterDeparture, search, occupancy.StaySortPriority) {
		board.Departures = append(board.Departures, toStayListItem(e))
	}
	for _, e := range occupancy.BuildStayView(entries, occupancy.StayFilterInHouse, search, occupancy.StaySortPriority) {
		board.InHouse = append(board.InHouse, toStayListItem(e))
	}

	response.Success(c, board)
}

// GetOccupancySummary trả số đếm tổng hợp cho header dashboard: số phòng
// theo trạng thái và số stay theo phân loại tại ngày tham chiếu.
func GetOccupancySummary(c *gin.Context) {
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
	response.Success(c, dto.OccupancySummary{
		Date:  ref,
		Rooms: occupancy.SummarizeRooms(occupancy.BuildRoomEntries(rooms, stays, ref)),
		Stays: occupancy.SummarizeStays(occupancy.BuildStayEntries(stays, rooms, ref)),
	})
}
