package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"cortado/internal/menu"
	ordercontroller "cortado/internal/order/controller"
)

func NewRouter(menuCtrl *menu.Controller, orderCtrl *ordercontroller.OrderController, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Customer surface
		r.Get("/menu", menuCtrl.HandleCustomerMenu)
		r.Post("/orders", orderCtrl.HandlePlaceOrder)
		r.Get("/orders/{orderId}", orderCtrl.HandleTrackOrder)
		r.Get("/track/{orderId}", orderCtrl.HandleTrackOrder)

		// Admin surface
		r.Route("/admin", func(r chi.Router) {
			r.Get("/dashboard", orderCtrl.HandleDashboard)
			r.Get("/orders", orderCtrl.HandleListOrders)
			r.Patch("/orders/{orderId}/status", orderCtrl.HandleUpdateStatus)

			r.Get("/menu", menuCtrl.HandleAdminMenu)
			r.Post("/menu", menuCtrl.HandleAddItem)
			r.Get("/menu/{itemId}", menuCtrl.HandleGetItem)
			r.Put("/menu/{itemId}", menuCtrl.HandleEditItem)
			r.Delete("/menu/{itemId}", menuCtrl.HandleDeleteItem)
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
