package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader это заголовок с идентификатором запроса.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey это ключ идентификатора в gin.Context.
const RequestIDKey = "request_id"

// RequestID берёт идентификатор из заголовка или генерирует новый и возвращает его в ответе.
func RequestID(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if id == "" || len(id) > 64 {
		id = uuid.NewString()
	}
	c.Set(RequestIDKey, id)
	c.Header(RequestIDHeader, id)
	c.Next()
}
