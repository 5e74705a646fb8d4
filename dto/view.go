package dto

import "homestay/occupancy"

// TodayBoard là dữ liệu màn vận hành hôm nay: ai đến, ai đi, ai đang ở.
type TodayBoard struct {
	Arrivals   []StayListItem        `json:"arrivals"`
	Departures []StayListItem        `json:"departures"`
	InHouse    []StayListItem        `json:"inHouse"`
	Summary    occupancy.StaySummary `json:"summary"`
}

// OccupancySummary gộp số đếm phòng và stay cho header dashboard.
type OccupancySummary struct {
	Date  string                `json:"date"`
	Rooms occupancy.RoomSummary `json:"rooms"`
	Stays occupancy.StaySummary `json:"stays"`
}
