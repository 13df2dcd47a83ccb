package handler

import (
	"net/http"

	"cardflow/internal/model"
	"cardflow/internal/repository"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	repos *repository.Repositories
}

func NewCardHandler(repos *repository.Repositories) *CardHandler {
	return &CardHandler{repos: repos}
}

type CreateCardRequest struct {
	Title       string                `json:"title" binding:"required"`
	Description string                `json:"description"`
	CardType    string                `json:"card_type" binding:"omitempty,oneof=feature task bug idea epic note"`
	Status      string                `json:"status"`
	BoardID     string                `json:"board_id" binding:"required"`
	PositionX   float64               `json:"position_x"`
	PositionY   float64               `json:"position_y"`
	Priority    string                `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	Assignees   []string              `json:"assignees"`
	Tags        []string              `json:"tags"`
	DueDate     *string               `json:"due_date"`
	Checklist   []model.ChecklistItem `json:"checklist"`
	Color       *string               `json:"color"`
}

func (h *CardHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if _, ok := ownedBoard(c, h.repos, req.BoardID, userID); !ok {
		return
	}

	card := &model.Card{
		Title:       req.Title,
		Description: req.Description,
		CardType:    req.CardType,
		Status:      req.Status,
		BoardID:     req.BoardID,
		PositionX:   req.PositionX,
		PositionY:   req.PositionY,
		Priority:    req.Priority,
		Assignees:   req.Assignees,
		Tags:        req.Tags,
		DueDate:     req.DueDate,
		Checklist:   req.Checklist,
		Color:       req.Color,
		CreatedBy:   userID,
	}
	if err := h.repos.Cards.Create(c.Request.Context(), card); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create card"})
		return
	}

	c.JSON(http.StatusCreated, card)
}

// GetAll lists the cards of ?board_id.
func (h *CardHandler) GetAll(c *gin.Context) {
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

	cards, err := h.repos.Cards.ListByBoard(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cards"})
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *CardHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	card, ok := h.loadCard(c)
	if !ok {
		return
	}
	board, err := h.repos.Boards.GetByID(c.Request.Context(), card.BoardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load board"})
		return
	}
	if board == nil || board.OwnerID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}
	c.JSON(http.StatusOK, card)
}

// Update applies a partial update. Identity, board and creator fields in the
// payload are ignored.
func (h *CardHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var patch model.CardPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	card, ok := h.loadCard(c)
	if !ok {
		return
	}
	if !authorizeBoardWrite(c, h.repos, card.BoardID, userID) {
		return
	}

	updated, err := h.repos.Cards.Update(c.Request.Context(), card.CardID, patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the card and every link touching it.
func (h *CardHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	card, ok := h.loadCard(c)
	if !ok {
		return
	}
	if !authorizeBoardWrite(c, h.repos, card.BoardID, userID) {
		return
	}

	if _, err := h.repos.Cards.Delete(c.Request.Context(), card.CardID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Card deleted"})
}

func (h *CardHandler) loadCard(c *gin.Context) (*model.Card, bool) {
	card, err := h.repos.Cards.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load card"})
		return nil, false
	}
	if card == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return nil, false
	}
	return card, true
}
