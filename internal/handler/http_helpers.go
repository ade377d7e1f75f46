package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

const (
	flashSessionKey = "flash"
	flashSuccess    = "success"
	flashError      = "error"
)

// Flash 是一次性的后台提示信息
type Flash struct {
	Kind    string
	Message string
}

// setFlash 保存提示，下一次渲染后台页面时展示并清除
func setFlash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.AddFlash(kind+"|"+message, flashSessionKey)
	logHandlerError("session", session.Save())
}

func popFlash(c *gin.Context) (Flash, bool) {
	session := sessions.Default(c)
	flashes := session.Flashes(flashSessionKey)
	if len(flashes) == 0 {
		return Flash{}, false
	}
	logHandlerError("session", session.Save())

	raw, _ := flashes[len(flashes)-1].(string)
	if kind, message, ok := strings.Cut(raw, "|"); ok {
		return Flash{Kind: kind, Message: message}, true
	}
	return Flash{Kind: flashSuccess, Message: raw}, true
}

func currentUsername(c *gin.Context) string {
	session := sessions.Default(c)
	username, _ := session.Get(sessionUsernameKey).(string)
	return username
}
