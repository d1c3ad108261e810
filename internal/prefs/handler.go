package prefs

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bingyoan/sausage-menu-ai/internal/currency"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Get returns the last-used target currency, or the default when none was
// ever saved.
func (h *Handler) Get(c *gin.Context) {
	code, err := h.repo.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load preference"})
		return
	}
	if code == "" {
		code = DefaultTargetCurrency
	}
	c.JSON(http.StatusOK, gin.H{"targetCurrency": code})
}

// Put saves the target currency preference. The label is normalized first
// so the stored value is always a canonical code.
func (h *Handler) Put(c *gin.Context) {
	var req struct {
		TargetCurrency string `json:"targetCurrency"`
	}
	if err := c.BindJSON(&req); err != nil || req.TargetCurrency == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "targetCurrency is required"})
		return
	}

	code := currency.Normalize(req.TargetCurrency)
	if err := h.repo.Set(c.Request.Context(), code); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save preference"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"targetCurrency": code})
}
