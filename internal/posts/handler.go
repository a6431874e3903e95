package posts

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sovann/postboard/internal/apierr"
)

const (
	minAge = 1
	maxAge = 150
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

type createPostDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Age         *int   `json:"age"`
}

func (h *Handler) Create(c *gin.Context) {
	var body createPostDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		apierr.Respond(c, apierr.Invalid("invalid request body"))
		return
	}

	name := strings.TrimSpace(body.Name)
	description := strings.TrimSpace(body.Description)
	if name == "" || description == "" || body.Age == nil {
		apierr.Respond(c, apierr.Invalid("all fields are required"))
		return
	}
	if *body.Age < minAge || *body.Age > maxAge {
		apierr.Respond(c, apierr.Invalid("age must be between 1 and 150"))
		return
	}

	post := Post{
		Name:        name,
		Description: description,
		Age:         *body.Age,
	}
	if err := h.store.Create(c.Request.Context(), &post); err != nil {
		apierr.Respond(c, apierr.Internal(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "post created",
		"id":      post.ID,
	})
}

func (h *Handler) List(c *gin.Context) {
	out, err := h.store.List(c.Request.Context())
	if err != nil {
		apierr.Respond(c, apierr.Internal(err))
		return
	}
	c.JSON(http.StatusOK, out)
}
