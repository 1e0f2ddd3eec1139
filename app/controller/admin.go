package controller

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/recargaexpress/ms-go-recharges/app/dto"
	"github.com/recargaexpress/ms-go-recharges/app/factory"
	"github.com/recargaexpress/ms-go-recharges/app/types"
	"github.com/recargaexpress/ms-go-recharges/config"
)

type AdminController struct {
	admin   config.AdminConfig
	support config.SupportConfig
	logger  logrus.FieldLogger
}

func NewAdminController(admin config.AdminConfig, support config.SupportConfig) *AdminController {
	return &AdminController{
		admin:   admin,
		support: support,
		logger:  factory.NewModuleLogger("admin-controller"),
	}
}

func (c *AdminController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &dto.HealthResponse{Status: "ok"})
}

func (c *AdminController) SupportInfo(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &dto.SupportInfoResponse{SupportNumber: c.support.Number})
}

// Login is a stateless credential check; no session or token is issued.
func (c *AdminController) Login(ctx echo.Context) error {
	req, err := types.NewLoginRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(c.admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(c.admin.Password)) == 1
	if !userOK || !passOK {
		c.logger.WithField("username", req.Username).Warn("Failed admin login attempt")
		return ctx.JSON(http.StatusUnauthorized, &dto.LoginResponse{
			Success: false,
			Message: "Invalid credentials",
		})
	}

	return ctx.JSON(http.StatusOK, &dto.LoginResponse{Success: true, Message: "Login successful"})
}
