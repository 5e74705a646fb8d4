package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware gán sessionId cho mỗi request: client gửi lại qua
// header X-Session-ID thì giữ nguyên, chưa có thì phát mới. Id được trả
// lại trong response để client dashboard dùng cho các request sau.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set("sessionId", sessionID)
		c.Header("X-Session-ID", sessionID)
		c.Next()
	}
}
