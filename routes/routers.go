package routes

import (
	"homestay/constants"
	"homestay/controllers"
	middlewares "homestay/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

func SetupRoutes(router *gin.Engine, m *melody.Melody) {

	controllers.SetMelody(m)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.DELETE("/auth/logout", controllers.Logout)

	staffRoles := []int{constants.RoleSuperAdmin, constants.RoleOwner, constants.RoleReceptionist}
	ownerRoles := []int{constants.RoleSuperAdmin, constants.RoleOwner}

	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)

	v1.GET("/rooms", middlewares.AuthMiddleware(staffRoles...), controllers.GetRoomMap)
	v1.POST("/rooms", middlewares.AuthMiddleware(ownerRoles...), controllers.CreateRoom)
	v1.GET("/rooms/:id", middlewares.AuthMiddleware(staffRoles...), controllers.GetRoomDetail)
	v1.PUT("/roomUpdate", middlewares.AuthMiddleware(ownerRoles...), controllers.UpdateRoom)
	v1.PUT("/roomStatus", middlewares.AuthMiddleware(ownerRoles...), controllers.ChangeRoomStatus)
	v1.DELETE("/rooms/:id", middlewares.AuthMiddleware(ownerRoles...), controllers.DeleteRoom)
	v1.POST("/rooms/:id/photo", middlewares.AuthMiddleware(ownerRoles...), controllers.UploadRoomPhoto)

	v1.GET("/stays", middlewares.AuthMiddleware(staffRoles...), controllers.GetStays)
	v1.POST("/stays", middlewares.AuthMiddleware(staffRoles...), controllers.CreateStay)
	v1.GET("/stays/:id", middlewares.AuthMiddleware(staffRoles...), controllers.GetStayDetail)
	v1.PUT("/stayUpdate", middlewares.AuthMiddleware(staffRoles...), controllers.UpdateStay)
	v1.PUT("/stayStatus", middlewares.AuthMiddleware(staffRoles...), controllers.ChangeStayStatus)
	v1.DELETE("/stays/:id", middlewares.AuthMiddleware(ownerRoles...), controllers.DeleteStay)
	v1.GET("/guestSuggest", middlewares.AuthMiddleware(staffRoles...), controllers.SuggestGuests)

	v1.GET("/today", middlewares.AuthMiddleware(staffRoles...), controllers.GetTodayBoard)
	v1.GET("/summary", middlewares.AuthMiddleware(staffRoles...), controllers.GetOccupancySummary)
}
