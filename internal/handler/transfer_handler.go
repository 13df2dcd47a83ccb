package handler

import (
	"net/http"

	"cardflow/internal/model"
	"cardflow/internal/repository"
	"cardflow/internal/transfer"

	"github.com/gin-gonic/gin"
)

type TransferHandler struct {
	repos    *repository.Repositories
	transfer *transfer.Service
}

func NewTransferHandler(repos *repository.Repositories, svc *transfer.Service) *TransferHandler {
	return &TransferHandler{repos: repos, transfer: svc}
}

type ImportRequest struct {
	WorkspaceID string       `json:"workspace_id"`
	Board       model.Board  `json:"board"`
	Cards       []model.Card `json:"cards"`
	Links       []model.Link `json:"links"`
}

func (h *TransferHandler) Export(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if _, ok := ownedBoard(c, h.repos, c.Param("board_id"), userID); !ok {
		return
	}

	doc, err := h.transfer.Export(c.Request.Context(), c.Param("board_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
		return
	}
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Import recreates an exported board inside one of the user's workspaces.
func (h *TransferHandler) Import(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.WorkspaceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "workspace_id required"})
		return
	}
	if _, ok := ownedWorkspace(c, h.repos, req.WorkspaceID, userID); !ok {
		return
	}

	doc := &transfer.Document{Board: req.Board, Cards: req.Cards, Links: req.Links}
	board, err := h.transfer.Import(c.Request.Context(), doc, req.WorkspaceID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Import failed"})
		return
	}
	c.JSON(http.StatusCreated, board)
}
