package routes

import (
	"net/http"
	"time"

	"fitgarden/handlers"
	"fitgarden/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterAgendamentoRoutes registers the booking dialog and day-view
// endpoints.
func RegisterAgendamentoRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/agendamentos")
	{
		api.Use(middleware.JWTAuthStaffMiddleware())

		// Day view.
		api.GET("", hb.ListDay)
		api.GET("/producao", hb.Producao)
		api.GET("/rota", hb.Rota)
		api.DELETE("/:id", hb.DeleteAgendamento)
		api.POST("/:id/finalizar-pagamento", hb.FinalizarPagamento)

		// Booking dialog drafts.
		api.POST("/draft", hb.OpenDraft)
		api.GET("/draft/:draftID", hb.GetDraft)
		api.PATCH("/draft/:draftID", hb.PatchDraft)
		api.POST("/draft/:draftID/reset", hb.ResetDraft)
		api.DELETE("/draft/:draftID", hb.DiscardDraft)
		api.POST("/draft/:draftID/itens", hb.AddItem)
		api.PATCH("/draft/:draftID/itens/:itemID", hb.ChangeQuantity)
		api.DELETE("/draft/:draftID/itens/:itemID", hb.RemoveItem)
		api.POST("/draft/:draftID/confirmar", hb.ConfirmDraft)
		api.GET("/draft/:draftID/whatsapp", hb.WhatsAppLink)
	}
}

// RegisterReferenceRoutes registers the read-only reference lists.
func RegisterReferenceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthStaffMiddleware())
		api.GET("/clientes", hb.ListClientes)
		api.GET("/cardapio/opcoes", hb.ListOpcoes)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm FitGarden back-office"})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAgendamentoRoutes(r, hb)
	RegisterReferenceRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
