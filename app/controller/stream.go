package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/recargaexpress/ms-go-recharges/app/factory"
	"github.com/recargaexpress/ms-go-recharges/app/notify"
)

type notificationHub interface {
	Subscribe() (uint64, <-chan notify.Event)
	Unsubscribe(id uint64)
}

type StreamController struct {
	hub    notificationHub
	logger logrus.FieldLogger
}

func NewStreamController(hub notificationHub) *StreamController {
	return &StreamController{
		hub:    hub,
		logger: factory.NewModuleLogger("notifications-stream"),
	}
}

// NotificationsStream holds the connection open and forwards hub events as
// server-sent events. The subscription is released as soon as the client
// disconnects; missed events are not replayed.
func (c *StreamController) NotificationsStream(ctx echo.Context) error {
	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	id, events := c.hub.Subscribe()
	defer c.hub.Unsubscribe(id)

	logger := factory.LoggerWithContext(c.logger, ctx).WithField("session_id", id)

	ack := notify.Event{Type: notify.EventTypeConnected, Message: "Connected to notifications"}
	if err := writeSSE(res, ack); err != nil {
		logger.WithError(err).Debug("Failed to write connect ack")
		return nil
	}

	done := ctx.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if err := writeSSE(res, event); err != nil {
				logger.WithError(err).Debug("Session write failed, closing stream")
				return nil
			}
		}
	}
}

func writeSSE(res *echo.Response, event notify.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(res, "data: %s\n\n", data); err != nil {
		return err
	}
	res.Flush()
	return nil
}
