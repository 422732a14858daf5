package handlers

import (
	"errors"
	"net/http"

	"fitgarden/backend"
	"fitgarden/services/catalog"
	"fitgarden/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the read-only reference lists the dialog renders.
type CatalogHandler struct {
	Catalog catalog.Service
	Logger  *zap.Logger
}

func NewCatalogHandler(service catalog.Service, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		Catalog: service,
		Logger:  logger,
	}
}

// ListClientes returns the customer reference list.
func (h *CatalogHandler) ListClientes(c *gin.Context) {
	clientes, err := h.Catalog.ListClientes(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientes": clientes})
}

// ListOpcoes returns the menu options with their size tiers.
func (h *CatalogHandler) ListOpcoes(c *gin.Context) {
	opcoes, err := h.Catalog.ListOpcoes(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"opcoes": opcoes})
}

func (h *CatalogHandler) renderError(c *gin.Context, err error) {
	if errors.Is(err, backend.ErrSessionExpired) {
		utils.JSONError(c, http.StatusUnauthorized, "Sessão expirada, faça login novamente", "")
		return
	}
	h.Logger.Error("catalog fetch failed", zap.Error(err))
	utils.JSONError(c, http.StatusBadGateway, "Falha ao carregar dados de referência", "")
}
