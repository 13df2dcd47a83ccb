package handler

import (
	"net/http"

	"cardflow/internal/model"
	"cardflow/internal/repository"
	"cardflow/internal/view"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	repos *repository.Repositories
}

func NewBoardHandler(repos *repository.Repositories) *BoardHandler {
	return &BoardHandler{repos: repos}
}

type CreateBoardRequest struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	WorkspaceID string         `json:"workspace_id" binding:"required"`
	Statuses    []model.Status `json:"statuses"`
}

// Create adds a board to one of the user's workspaces.
func (h *BoardHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if _, ok := ownedWorkspace(c, h.repos, req.WorkspaceID, userID); !ok {
		return
	}

	board := &model.Board{
		Name:        req.Name,
		Description: req.Description,
		WorkspaceID: req.WorkspaceID,
		OwnerID:     userID,
		Statuses:    req.Statuses,
	}
	if err := h.repos.Boards.Create(c.Request.Context(), board); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create board"})
		return
	}

	c.JSON(http.StatusCreated, board)
}

// GetAll lists the user's boards, optionally narrowed by ?workspace_id.
func (h *BoardHandler) GetAll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boards, err := h.repos.Boards.List(c.Request.Context(), repository.BoardFilter{
		WorkspaceID: c.Query("workspace_id"),
		OwnerID:     userID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve boards"})
		return
	}

	c.JSON(http.StatusOK, boards)
}

func (h *BoardHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	board, ok := ownedBoard(c, h.repos, c.Param("id"), userID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, board)
}

// Kanban returns the board's cards grouped by status.
func (h *BoardHandler) Kanban(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	board, ok := ownedBoard(c, h.repos, c.Param("id"), userID)
	if !ok {
		return
	}

	cards, err := h.repos.Cards.ListByBoard(c.Request.Context(), board.BoardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cards"})
		return
	}

	c.JSON(http.StatusOK, view.Kanban(*board, cards))
}

func (h *BoardHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if _, ok := ownedBoard(c, h.repos, c.Param("id"), userID); !ok {
		return
	}

	var patch model.BoardPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	board, err := h.repos.Boards.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update board"})
		return
	}
	if board == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *BoardHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if _, ok := ownedBoard(c, h.repos, c.Param("id"), userID); !ok {
		return
	}

	if _, err := h.repos.Boards.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete board"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Board deleted"})
}
