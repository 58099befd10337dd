package http

import (
	"context"
	"net/http"

	"campustix/entity"

	commonHTTP "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/labstack/echo/v4"
)

var ErrServerClosed = http.ErrServerClosed

type Publisher interface {
	Publish(ctx context.Context, event any) error
}

type Advisor interface {
	Advise(ctx context.Context, req entity.AdvisoryRequest) (entity.AdvisoryResult, error)
}

type EventRepo interface {
	List(ctx context.Context) ([]entity.Event, error)
	Get(ctx context.Context, eventID string) (entity.Event, error)
	Tiers(ctx context.Context, eventID string) ([]entity.TicketTier, error)
	ResaleListings(ctx context.Context, eventID string) ([]entity.ResaleListing, error)
	Reviews(ctx context.Context, eventID string) ([]entity.Review, error)
	Create(ctx context.Context, newEvent entity.NewEvent) (entity.Event, error)
}

type WalletRepo interface {
	Get(ctx context.Context, userID string) (entity.User, error)
	Purchase(ctx context.Context, userID, eventID, tierID string) (entity.Purchase, error)
}

type InsightsReader interface {
	Get(ctx context.Context, eventID string) entity.MarketInsights
}

type RouterDeps struct {
	Publisher  Publisher
	Advisor    Advisor
	EventRepo  EventRepo
	WalletRepo WalletRepo
	Insights   InsightsReader
}

func NewRouter(deps RouterDeps) *echo.Echo {
	server := commonHTTP.NewEcho()
	server.Use(requestFieldsMiddleware)

	server.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	h := handler{
		publisher:  deps.Publisher,
		advisor:    deps.Advisor,
		eventRepo:  deps.EventRepo,
		walletRepo: deps.WalletRepo,
		insights:   deps.Insights,
	}

	server.GET("/events", h.ListEvents)
	server.POST("/events", h.CreateEvent)
	server.GET("/events/:id", h.GetEvent)
	server.GET("/events/:id/tickets", h.ListTicketTiers)
	server.GET("/events/:id/resale-tickets", h.ListResaleListings)
	server.GET("/events/:id/reviews", h.ListReviews)
	server.GET("/events/:id/insights", h.GetInsights)
	server.POST("/events/:id/resale-analysis", h.AnalyzeEventResale)
	server.POST("/resale-analysis", h.AnalyzeResale)

	server.GET("/users/:id/wallet", h.GetWallet)
	server.POST("/users/:id/purchases", h.PurchaseTicket)

	return server
}

type handler struct {
	publisher  Publisher
	advisor    Advisor
	eventRepo  EventRepo
	walletRepo WalletRepo
	insights   InsightsReader
}
