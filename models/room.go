package models

import (
	"time"
)

type Room struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"userId" gorm:"index"`
	Code         string    `json:"code" gorm:"index"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Capacity     int       `json:"capacity" gorm:"default:1"`
	DisplayOrder int       `json:"order" gorm:"column:display_order"`
	Active       bool      `json:"active" gorm:"default:true"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Stays        []Stay    `json:"-" gorm:"foreignKey:RoomID"`
}
