package utils

import "github.com/gin-gonic/gin"

// Response envelope shared by every endpoint: {ok:true, data:...} on success,
// {ok:false, code, message} on failure.

func JSONSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"ok": true, "data": data})
}

func JSONError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"ok": false, "code": code, "message": message})
}
