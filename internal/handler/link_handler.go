package handler

import (
	"errors"
	"net/http"

	"cardflow/internal/model"
	"cardflow/internal/repository"

	"github.com/gin-gonic/gin"
)

type LinkHandler struct {
	repos *repository.Repositories
}

func NewLinkHandler(repos *repository.Repositories) *LinkHandler {
	return &LinkHandler{repos: repos}
}

type CreateLinkRequest struct {
	SourceCardID string  `json:"source_card_id" binding:"required"`
	TargetCardID string  `json:"target_card_id" binding:"required"`
	LinkType     string  `json:"link_type" binding:"omitempty,oneof=depends_on blocks related_to part_of uses references duplicate_of"`
	Label        *string `json:"label"`
	Color        string  `json:"color"`
	LineStyle    string  `json:"line_style" binding:"omitempty,oneof=solid dashed"`
}

// Create connects two cards. The link lives on the source card's board.
func (h *LinkHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	source, err := h.repos.Cards.GetByID(c.Request.Context(), req.SourceCardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load card"})
		return
	}
	if source == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Source card not found"})
		return
	}
	if !authorizeBoardWrite(c, h.repos, source.BoardID, userID) {
		return
	}

	link := &model.Link{
		SourceCardID: req.SourceCardID,
		TargetCardID: req.TargetCardID,
		LinkType:     req.LinkType,
		Label:        req.Label,
		Color:        req.Color,
		LineStyle:    req.LineStyle,
		CreatedBy:    userID,
	}
	if err := h.repos.Links.Create(c.Request.Context(), link); err != nil {
		switch {
		case errors.Is(err, repository.ErrSourceCardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Source card not found"})
		case errors.Is(err, repository.ErrTargetCardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Target card not found"})
		case errors.Is(err, repository.ErrLinkExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Link already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create link"})
		}
		return
	}

	c.JSON(http.StatusCreated, link)
}

// GetAll lists the links of ?board_id.
func (h *LinkHandler) GetAll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID := c.Query("board_id")
	if boardID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "board_id is required"})
		return
	}
	if _, ok := ownedBoard(c, h.repos, boardID, userID); !ok {
		return
	}

	links, err := h.repos.Links.ListByBoard(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve links"})
		return
	}
	c.JSON(http.StatusOK, links)
}

func (h *LinkHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var patch model.LinkPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	link, ok := h.loadLink(c)
	if !ok {
		return
	}
	if !authorizeBoardWrite(c, h.repos, link.BoardID, userID) {
		return
	}

	updated, err := h.repos.Links.Update(c.Request.Context(), link.LinkID, patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update link"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *LinkHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	link, ok := h.loadLink(c)
	if !ok {
		return
	}
	if !authorizeBoardWrite(c, h.repos, link.BoardID, userID) {
		return
	}

	if _, err := h.repos.Links.Delete(c.Request.Context(), link.LinkID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete link"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Link deleted"})
}

func (h *LinkHandler) loadLink(c *gin.Context) (*model.Link, bool) {
	link, err := h.repos.Links.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load link"})
		return nil, false
	}
	if link == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return nil, false
	}
	return link, true
}
