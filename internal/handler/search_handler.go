package handler

import (
	"net/http"
	"strings"

	"cardflow/internal/repository"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	repos *repository.Repositories
}

func NewSearchHandler(repos *repository.Repositories) *SearchHandler {
	return &SearchHandler{repos: repos}
}

// Search finds the user's cards whose title or description contains ?q.
func (h *SearchHandler) Search(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	boardID := c.Query("board_id")
	if boardID != "" {
		if _, ok := ownedBoard(c, h.repos, boardID, userID); !ok {
			return
		}
	}

	cards, err := h.repos.Cards.Search(c.Request.Context(), repository.SearchQuery{
		Text:    q,
		BoardID: boardID,
		OwnerID: userID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, cards)
}
