package handler

import (
	"net/http"

	"cardflow/internal/middleware"
	"cardflow/internal/model"
	"cardflow/internal/repository"

	"github.com/gin-gonic/gin"
)

// currentUserID returns the authenticated user id, or aborts with 401.
func currentUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return "", false
	}
	return userID, true
}

// ownedBoard loads a board the user owns. Missing and foreign boards both
// answer 404.
func ownedBoard(c *gin.Context, repos *repository.Repositories, boardID, userID string) (*model.Board, bool) {
	board, err := repos.Boards.GetByID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load board"})
		return nil, false
	}
	if board == nil || board.OwnerID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return nil, false
	}
	return board, true
}

// ownedWorkspace loads a workspace the user owns, answering 404 otherwise.
func ownedWorkspace(c *gin.Context, repos *repository.Repositories, workspaceID, userID string) (*model.Workspace, bool) {
	ws, err := repos.Workspaces.GetByID(c.Request.Context(), workspaceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load workspace"})
		return nil, false
	}
	if ws == nil || ws.OwnerID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return nil, false
	}
	return ws, true
}

// authorizeBoardWrite checks that the user owns boardID before a card or link
// mutation. A board owned by someone else answers 403.
func authorizeBoardWrite(c *gin.Context, repos *repository.Repositories, boardID, userID string) bool {
	board, err := repos.Boards.GetByID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load board"})
		return false
	}
	if board == nil || board.OwnerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		return false
	}
	return true
}
