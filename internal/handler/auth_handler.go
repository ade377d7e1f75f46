package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/psisite/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	sessionUserIDKey   = "user_id"
	sessionUsernameKey = "username"
	loginErrorMessage  = "Usuário ou senha inválidos"
)

// ShowLoginPage 渲染登录页面
func (a *API) ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title": "Entrar no painel",
	})
}

// Login 校验账号密码并写入会话
func (a *API) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	var user db.User
	if err := a.db.Where("username = ?", username).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logHandlerError("auth", err)
		}
		a.renderLoginError(c, http.StatusUnauthorized, username, loginErrorMessage)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		a.renderLoginError(c, http.StatusUnauthorized, username, loginErrorMessage)
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserIDKey, user.ID)
	session.Set(sessionUsernameKey, user.Username)
	if err := session.Save(); err != nil {
		logHandlerError("auth", err)
		a.renderLoginError(c, http.StatusInternalServerError, username, "Não foi possível iniciar a sessão")
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout 清除会话
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	logHandlerError("auth", session.Save())
	c.Redirect(http.StatusFound, "/admin/login")
}

func (a *API) renderLoginError(c *gin.Context, status int, username, message string) {
	c.HTML(status, "login.html", gin.H{
		"title":    "Entrar no painel",
		"error":    message,
		"username": username,
	})
}

// AuthRequired 是一个简单的认证中间件；API 请求返回 401，页面请求跳转登录
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionUserIDKey) == nil {
			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Faça login para continuar"})
				return
			}
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
