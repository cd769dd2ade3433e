package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware gán sessionId cho mỗi request, editor dùng sessionId để
// không tự nhận lại event broadcast của chính mình và để lưu filter tìm kiếm
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.GetHeader("X-Session-ID")
		if sessionId == "" {
			sessionId = uuid.NewString()
		}

		c.Set("sessionId", sessionId)

		// Trả lại header để client giữ sessionId cho các request sau
		c.Writer.Header().Set("X-Session-ID", sessionId)

		c.Next()
	}
}
