// Package api exposes the parsing engine over HTTP for integration
// testing and collaborator services. The engine stays a pure library;
// this surface only marshals messages in and records out.
package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/expensewise/sms-parser/internal/models"
	"github.com/expensewise/sms-parser/internal/registry"
)

const version = "1.0.0"

// Handler holds the HTTP handlers for the API.
type Handler struct {
	Registry *registry.Registry
	Log      zerolog.Logger
}

// NewApp builds the fiber application with all routes registered.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "sms-parser",
		DisableStartupMessage: true,
	})
	app.Use(h.logRequests)
	app.Get("/api/health", h.HandleHealth)
	app.Get("/api/banks", h.HandleBanks)
	app.Post("/api/parse", h.HandleParse)
	app.Post("/api/scan", h.HandleScan)
	return app
}

// ParseRequest is one message to run through the engine.
type ParseRequest struct {
	Body      string `json:"body"`
	Sender    string `json:"sender"`
	Timestamp int64  `json:"timestamp"`
}

// ParseResponse reports the outcome for a single message. Matched is
// false for unknown senders and non-transaction messages alike; that is
// an expected outcome, not an error.
type ParseResponse struct {
	Matched     bool                `json:"matched"`
	ID          string              `json:"id,omitempty"`
	Transaction *models.Transaction `json:"transaction,omitempty"`
}

// ScanRequest is a batch of messages.
type ScanRequest struct {
	Messages []ParseRequest `json:"messages"`
}

// ScanResponse aggregates a batch scan.
type ScanResponse struct {
	Count        int                   `json:"count"`
	Matched      int                   `json:"matched"`
	Transactions []*models.Transaction `json:"transactions"`
}

// logRequests emits one structured line per request.
func (h *Handler) logRequests(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	h.Log.Info().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("took", time.Since(start)).
		Msg("request")
	return err
}

func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": version,
		"parsers": h.Registry.Len(),
	})
}

// HandleBanks lists the supported institutions in resolution order.
func (h *Handler) HandleBanks(c *fiber.Ctx) error {
	banks := h.Registry.Banks()
	return c.JSON(fiber.Map{
		"count": len(banks),
		"banks": banks,
	})
}

func (h *Handler) HandleParse(c *fiber.Ctx) error {
	var req ParseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Body == "" || req.Sender == "" {
		return fiber.NewError(fiber.StatusBadRequest, "body and sender are required")
	}

	txn := h.Registry.Parse(req.Body, req.Sender, req.Timestamp)
	if txn == nil {
		h.Log.Debug().Str("sender", req.Sender).Msg("message not parsed")
		return c.JSON(ParseResponse{Matched: false})
	}

	h.Log.Info().
		Str("sender", req.Sender).
		Str("bank", txn.Bank).
		Str("type", string(txn.Type)).
		Str("amount", txn.Amount.String()).
		Msg("message parsed")

	return c.JSON(ParseResponse{
		Matched:     true,
		ID:          txn.GenerateID(),
		Transaction: txn,
	})
}

func (h *Handler) HandleScan(c *fiber.Ctx) error {
	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	resp := ScanResponse{
		Count:        len(req.Messages),
		Transactions: []*models.Transaction{},
	}
	for _, m := range req.Messages {
		if txn := h.Registry.Parse(m.Body, m.Sender, m.Timestamp); txn != nil {
			resp.Matched++
			resp.Transactions = append(resp.Transactions, txn)
		}
	}

	h.Log.Info().Int("count", resp.Count).Int("matched", resp.Matched).Msg("scan complete")
	return c.JSON(resp)
}
