package session

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bingyoan/sausage-menu-ai/internal/auth"
	"github.com/bingyoan/sausage-menu-ai/internal/cart"
	"github.com/bingyoan/sausage-menu-ai/internal/currency"
	"github.com/bingyoan/sausage-menu-ai/internal/history"
	"github.com/bingyoan/sausage-menu-ai/internal/menu"
	"github.com/bingyoan/sausage-menu-ai/internal/prefs"
)

type Handler struct {
	manager  *Manager
	resolver *currency.Resolver
	store    *history.Store
	prefs    prefs.Repository
}

func NewHandler(manager *Manager, resolver *currency.Resolver, store *history.Store, prefsRepo prefs.Repository) *Handler {
	return &Handler{
		manager:  manager,
		resolver: resolver,
		store:    store,
		prefs:    prefsRepo,
	}
}

// Create opens a new ordering session and returns its bearer token.
func (h *Handler) Create(c *gin.Context) {
	id := h.manager.Create()

	token, err := auth.GenerateToken(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue session token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": id,
		"token":      token,
	})
}

// Scan ingests a menu parse result into the session. This is the one place
// a failure reaches the client: a broken payload is rejected whole, nothing
// is partially adopted. The exchange rate is resolved through the fallback
// chain so the response always carries a usable rate.
//
// The conversion target comes from `?lang=` (client UI language) or
// `?target=` (explicit currency label), falling back to the saved
// preference.
func (h *Handler) Scan(c *gin.Context) {
	sessionID := c.GetString("sessionID")

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil || len(payload) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu parse payload is required"})
		return
	}

	catalog, err := menu.Ingest(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target := h.targetCurrency(c)
	estimate := catalog.ExchangeRate

	catalog.TargetCurrency = target
	catalog.ExchangeRate = h.resolver.ResolveRate(
		c.Request.Context(),
		catalog.OriginalCurrency,
		target,
		estimate,
	)

	generation, err := h.manager.SetCatalog(sessionID, catalog)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"catalog":    catalog,
		"generation": generation,
	})
}

func (h *Handler) targetCurrency(c *gin.Context) string {
	if lang := c.Query("lang"); lang != "" {
		return currency.TargetForLanguage(lang)
	}
	if target := c.Query("target"); target != "" {
		return currency.Normalize(target)
	}
	saved, err := h.prefs.Get(c.Request.Context())
	if err != nil || saved == "" {
		return prefs.DefaultTargetCurrency
	}
	return saved
}

// UpdateCartItem applies a quantity delta for one menu item and returns the
// updated cart with a fresh summary.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	sessionID := c.GetString("sessionID")
	itemID := c.Param("id")

	var req struct {
		Delta int `json:"delta"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delta is required"})
		return
	}

	updated, err := h.manager.UpdateCart(sessionID, itemID, req.Delta)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	_, catalog, _ := h.manager.Snapshot(sessionID)
	c.JSON(http.StatusOK, gin.H{
		"cart":    updated,
		"summary": cart.Summarize(updated, catalog, rate(catalog), 1),
	})
}

// Summary returns totals for the current cart; ?split=N adds the ceiling
// per-person share.
func (h *Handler) Summary(c *gin.Context) {
	sessionID := c.GetString("sessionID")

	split := 1
	if raw := c.Query("split"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "split must be a positive integer"})
			return
		}
		split = n
	}

	currentCart, catalog, err := h.manager.Snapshot(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": cart.Summarize(currentCart, catalog, rate(catalog), split)})
}

// Finish commits the current order to history. The cart is taken and
// cleared in one atomic manager operation, so one finished ledger yields
// exactly one record no matter how requests interleave; if persisting
// fails the taken cart is merged back so no tap is lost. An empty cart
// finishes without recording anything.
func (h *Handler) Finish(c *gin.Context) {
	sessionID := c.GetString("sessionID")

	taken, catalog, generation, err := h.manager.TakeCart(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	if len(taken) == 0 {
		c.JSON(http.StatusOK, gin.H{"recorded": false})
		return
	}

	rec, err := h.store.Append(c.Request.Context(), taken, catalog)
	if err != nil {
		_ = h.manager.RestoreCart(sessionID, taken, generation)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not persist order"})
		return
	}
	if rec == nil {
		c.JSON(http.StatusOK, gin.H{"recorded": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recorded": true,
		"record":   rec,
	})
}

// ClearCart resets the session's cart without recording anything.
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID := c.GetString("sessionID")

	if err := h.manager.ClearCart(sessionID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": cart.New()})
}

func rate(catalog *menu.Catalog) float64 {
	if catalog == nil {
		return 0
	}
	return catalog.ExchangeRate
}
