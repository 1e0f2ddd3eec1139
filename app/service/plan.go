package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/recargaexpress/ms-go-recharges/app/entity"
	"github.com/recargaexpress/ms-go-recharges/app/repository"
	"github.com/recargaexpress/ms-go-recharges/app/types"
)

type planRepository interface {
	Create(ctx context.Context, plan *entity.Plan) error
	Update(ctx context.Context, plan *entity.Plan) error
	FindByID(ctx context.Context, id string) (*entity.Plan, error)
	List(ctx context.Context) ([]*entity.Plan, error)
	Delete(ctx context.Context, id string) error
	RepairPaymentOptions(ctx context.Context) ([]string, error)
}

type PlanService struct {
	planRepo planRepository
}

func NewPlanService(planRepo planRepository) *PlanService {
	return &PlanService{planRepo: planRepo}
}

func (s *PlanService) ListPlans(ctx context.Context) ([]*entity.Plan, error) {
	return s.planRepo.List(ctx)
}

func (s *PlanService) GetPlan(ctx context.Context, id string) (*entity.Plan, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

func (s *PlanService) CreatePlan(ctx context.Context, req *types.CreatePlanRequest) (*entity.Plan, error) {
	if req.Name == "" || req.PaymentOptions == nil {
		return nil, ErrInvalidRequest
	}

	now := time.Now().UTC()
	plan := &entity.Plan{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Description:    req.Description,
		PaymentOptions: types.PaymentOptionsToEntities(*req.PaymentOptions),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// UpdatePlan merges the supplied fields into the stored record; fields absent
// from the request keep their prior values.
func (s *PlanService) UpdatePlan(ctx context.Context, req *types.UpdatePlanRequest) (*entity.Plan, error) {
	plan, err := s.planRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.PaymentOptions != nil {
		plan.PaymentOptions = types.PaymentOptionsToEntities(*req.PaymentOptions)
	}
	plan.UpdatedAt = time.Now().UTC()

	if err := s.planRepo.Update(ctx, plan); err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) DeletePlan(ctx context.Context, id string) error {
	if err := s.planRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	return nil
}

// RepairPaymentOptions resets invalid stored payment_options columns to an
// empty list and returns the ids of the repaired plans.
func (s *PlanService) RepairPaymentOptions(ctx context.Context) ([]string, error) {
	return s.planRepo.RepairPaymentOptions(ctx)
}
