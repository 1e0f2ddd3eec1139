package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/recargaexpress/ms-go-recharges/app/dto"
	"github.com/recargaexpress/ms-go-recharges/app/factory"
	"github.com/recargaexpress/ms-go-recharges/app/mapper"
	"github.com/recargaexpress/ms-go-recharges/app/service"
	"github.com/recargaexpress/ms-go-recharges/app/types"
)

type PlanController struct {
	planService *service.PlanService
	logger      logrus.FieldLogger
}

func NewPlanController(planService *service.PlanService) *PlanController {
	return &PlanController{
		planService: planService,
		logger:      factory.NewModuleLogger("plans-controller"),
	}
}

func (c *PlanController) ListPlans(ctx echo.Context) error {
	items, err := c.planService.ListPlans(ctx.Request().Context())
	if err != nil {
		c.logger.WithError(err).Error("List plans failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, mapper.PlansToResponse(items))
}

func (c *PlanController) GetPlan(ctx echo.Context) error {
	req, err := types.NewPlanIDRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.planService.GetPlan(ctx.Request().Context(), req.ID)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			return writeError(ctx, http.StatusNotFound, "plan not found")
		}
		c.logger.WithError(err).Error("Get plan failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, mapper.PlanToResponse(item))
}

func (c *PlanController) CreatePlan(ctx echo.Context) error {
	req, err := types.NewCreatePlanRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.planService.CreatePlan(ctx.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			return writeError(ctx, http.StatusBadRequest, err.Error())
		}
		c.logger.WithError(err).Error("Create plan failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusCreated, mapper.PlanToResponse(item))
}

func (c *PlanController) UpdatePlan(ctx echo.Context) error {
	req, err := types.NewUpdatePlanRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.planService.UpdatePlan(ctx.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			return writeError(ctx, http.StatusNotFound, "plan not found")
		}
		c.logger.WithError(err).Error("Update plan failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, mapper.PlanToResponse(item))
}

func (c *PlanController) DeletePlan(ctx echo.Context) error {
	req, err := types.NewPlanIDRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err := c.planService.DeletePlan(ctx.Request().Context(), req.ID); err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			return writeError(ctx, http.StatusNotFound, "plan not found")
		}
		c.logger.WithError(err).Error("Delete plan failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &dto.MessageResponse{Message: "Plan deleted successfully"})
}

func writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &dto.ErrorResponse{Error: message})
}
