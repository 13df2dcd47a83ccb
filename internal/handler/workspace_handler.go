package handler

import (
	"net/http"

	"cardflow/internal/model"
	"cardflow/internal/repository"

	"github.com/gin-gonic/gin"
)

type WorkspaceHandler struct {
	repos *repository.Repositories
}

func NewWorkspaceHandler(repos *repository.Repositories) *WorkspaceHandler {
	return &WorkspaceHandler{repos: repos}
}

type CreateWorkspaceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ws := &model.Workspace{Name: req.Name, Description: req.Description, Color: req.Color, OwnerID: userID}
	if err := h.repos.Workspaces.Create(c.Request.Context(), ws); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create workspace"})
		return
	}

	c.JSON(http.StatusCreated, ws)
}

func (h *WorkspaceHandler) GetAll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	workspaces, err := h.repos.Workspaces.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve workspaces"})
		return
	}

	c.JSON(http.StatusOK, workspaces)
}

func (h *WorkspaceHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ws, ok := ownedWorkspace(c, h.repos, c.Param("id"), userID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ws)
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if _, ok := ownedWorkspace(c, h.repos, c.Param("id"), userID); !ok {
		return
	}

	var patch model.WorkspacePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ws, err := h.repos.Workspaces.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update workspace"})
		return
	}
	if ws == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}
	c.JSON(http.StatusOK, ws)
}

// Delete removes the workspace with all of its boards, cards and links.
func (h *WorkspaceHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if _, ok := ownedWorkspace(c, h.repos, c.Param("id"), userID); !ok {
		return
	}

	if _, err := h.repos.Workspaces.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete workspace"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workspace deleted"})
}
