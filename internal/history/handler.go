package history

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// List returns all finalized orders, most recent first.
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"records": h.store.Records()})
}

// Delete removes one record. Deleting an unknown id succeeds quietly.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.Remove(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not persist history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
