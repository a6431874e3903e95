// Package server builds the route table. Pure dispatch: every route
// maps to exactly one handler, and handlers own all request logic.
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/sovann/postboard/internal/posts"
	"github.com/sovann/postboard/internal/users"
)

func New(userStore *users.Store, postStore *posts.Store) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	u := users.NewHandler(userStore)
	p := posts.NewHandler(postStore)

	v1 := r.Group("/api/v1")
	v1.POST("/users/register", u.Register)
	v1.POST("/users/login", u.Login)
	v1.POST("/users/logout", u.Logout)
	v1.GET("/users/:id", u.Get)
	v1.POST("/posts/create", p.Create)
	v1.GET("/posts", p.List)

	return r
}
