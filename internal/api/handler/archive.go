package handler

import (
	"errors"
	"net/http"

	"pingo/backend/internal/api/middleware"
	"pingo/backend/internal/archive"
	"pingo/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ArchiveUser adds the partner to the caller's archived set and syncs the
// caller's own live connection.
func (h *Handler) ArchiveUser(c *gin.Context) {
	user := middleware.CurrentUser(c)

	set, err := h.Archive.Add(user.ID, c.Param("id"))
	if err != nil {
		h.writeArchiveError(c, err)
		return
	}

	// Self-notification: keeps the user's other tabs in sync. The partner
	// is never told they were archived.
	h.Hub.Notify(user.ID, models.EventArchivedUpdated, models.ArchivedUpdate{ArchivedChats: set})

	c.JSON(http.StatusOK, gin.H{"archivedChats": set})
}

// UnarchiveUser removes the partner from the caller's archived set.
func (h *Handler) UnarchiveUser(c *gin.Context) {
	user := middleware.CurrentUser(c)

	set, err := h.Archive.Remove(user.ID, c.Param("id"))
	if err != nil {
		h.writeArchiveError(c, err)
		return
	}

	h.Hub.Notify(user.ID, models.EventArchivedUpdated, models.ArchivedUpdate{ArchivedChats: set})

	c.JSON(http.StatusOK, gin.H{"archivedChats": set})
}

// GetMyArchived returns the caller's current archived set.
func (h *Handler) GetMyArchived(c *gin.Context) {
	user := middleware.CurrentUser(c)

	set, err := h.Archive.List(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"archivedChats": set})
}

func (h *Handler) writeArchiveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, archive.ErrInvalidPartner):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid partner"})
	case errors.Is(err, archive.ErrPartnerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Partner not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
