package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"pingo/backend/internal/api/middleware"
	"pingo/backend/internal/models"
	"pingo/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// GetAllContacts lists every other user's profile.
func (h *Handler) GetAllContacts(c *gin.Context) {
	user := middleware.CurrentUser(c)

	contacts, err := h.Storage.GetAllUsersExcept(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// GetChatPartners lists everyone the user has messaged with, annotated with
// the archived flag.
func (h *Handler) GetChatPartners(c *gin.Context) {
	user := middleware.CurrentUser(c)

	partners, err := h.Storage.ListChatPartners(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, partners)
}

// GetMessages returns the conversation with the user in the path, oldest
// first.
func (h *Handler) GetMessages(c *gin.Context) {
	user := middleware.CurrentUser(c)

	partnerID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	messages, err := h.Storage.GetConversation(user.ID, partnerID, 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

type sendMessageRequest struct {
	Text  string `json:"text"`
	Image string `json:"image"`
}

// SendMessage persists a message and then, and only then, pushes it to the
// receiver's live connection if there is one. The response depends solely on
// the persistence outcome.
func (h *Handler) SendMessage(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Text or image is required."})
		return
	}
	if req.Text == "" && req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Text or image is required."})
		return
	}

	receiverID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}
	if receiverID == user.ID {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot send message to yourself."})
		return
	}

	if _, err := h.Storage.GetUserByID(receiverID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Receiver not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	imageRef := ""
	if req.Image != "" {
		imageRef, err = h.Uploader.Upload(req.Image)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Upload failed"})
			return
		}
	}

	msg := &models.Message{
		SenderID:   user.ID,
		ReceiverID: receiverID,
		Text:       req.Text,
		Image:      imageRef,
	}
	if err := h.Storage.SaveMessage(msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	// Durably committed; notify the receiver only. The sender's own other
	// connections are not echoed to.
	h.Hub.Notify(receiverID, models.EventNewMessage, msg)

	c.JSON(http.StatusCreated, msg)
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		if err == nil {
			err = errors.New("zero id")
		}
		log.Printf("Rejected malformed id param %q", c.Param("id"))
		return 0, err
	}
	return uint(id), nil
}
