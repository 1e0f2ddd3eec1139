package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/recargaexpress/ms-go-recharges/app/entity"
	"github.com/recargaexpress/ms-go-recharges/app/repository"
	"github.com/recargaexpress/ms-go-recharges/app/types"
)

type mockPlanRepo struct {
	createFn   func(ctx context.Context, plan *entity.Plan) error
	updateFn   func(ctx context.Context, plan *entity.Plan) error
	findByIDFn func(ctx context.Context, id string) (*entity.Plan, error)
	listFn     func(ctx context.Context) ([]*entity.Plan, error)
	deleteFn   func(ctx context.Context, id string) error
	repairFn   func(ctx context.Context) ([]string, error)
}

func (m *mockPlanRepo) Create(ctx context.Context, plan *entity.Plan) error {
	if m.createFn != nil {
		return m.createFn(ctx, plan)
	}
	return nil
}

func (m *mockPlanRepo) Update(ctx context.Context, plan *entity.Plan) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, plan)
	}
	return nil
}

func (m *mockPlanRepo) FindByID(ctx context.Context, id string) (*entity.Plan, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPlanRepo) List(ctx context.Context) ([]*entity.Plan, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockPlanRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockPlanRepo) RepairPaymentOptions(ctx context.Context) ([]string, error) {
	if m.repairFn != nil {
		return m.repairFn(ctx)
	}
	return nil, nil
}

func dataPlanRequest() *types.CreatePlanRequest {
	options := []types.PaymentOptionPayload{
		{Method: "Zelle", Amount: decimal.NewFromInt(5), Currency: "USD"},
	}
	return &types.CreatePlanRequest{
		Name:           "1GB Data",
		PaymentOptions: &options,
	}
}

func TestCreatePlanAssignsID(t *testing.T) {
	var created *entity.Plan
	repo := &mockPlanRepo{
		createFn: func(_ context.Context, plan *entity.Plan) error {
			created = plan
			return nil
		},
	}
	svc := NewPlanService(repo)

	item, err := svc.CreatePlan(context.Background(), dataPlanRequest())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.ID == "" {
		t.Fatal("expected a generated id")
	}
	if created == nil || created.Name != "1GB Data" {
		t.Fatalf("expected plan persisted, got %+v", created)
	}
	if len(created.PaymentOptions) != 1 || created.PaymentOptions[0].Method != "Zelle" {
		t.Fatalf("expected one Zelle option, got %+v", created.PaymentOptions)
	}
}

func TestCreatePlanAllowsEmptyOptionList(t *testing.T) {
	svc := NewPlanService(&mockPlanRepo{})

	options := []types.PaymentOptionPayload{}
	item, err := svc.CreatePlan(context.Background(), &types.CreatePlanRequest{
		Name:           "Free Trial",
		PaymentOptions: &options,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.PaymentOptions == nil || len(item.PaymentOptions) != 0 {
		t.Fatalf("expected empty option list, got %+v", item.PaymentOptions)
	}
}

func TestCreatePlanMissingOptions(t *testing.T) {
	svc := NewPlanService(&mockPlanRepo{})

	_, err := svc.CreatePlan(context.Background(), &types.CreatePlanRequest{Name: "1GB Data"})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestGetPlanNotFound(t *testing.T) {
	svc := NewPlanService(&mockPlanRepo{})

	_, err := svc.GetPlan(context.Background(), "missing")
	if !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestUpdatePlanMergesPartialFields(t *testing.T) {
	stored := &entity.Plan{
		ID:          "p1",
		Name:        "1GB Data",
		Description: "old description",
		PaymentOptions: []entity.PaymentOption{
			{Method: "Zelle", Amount: decimal.NewFromInt(5), Currency: "USD"},
		},
	}
	var updated *entity.Plan
	repo := &mockPlanRepo{
		findByIDFn: func(_ context.Context, id string) (*entity.Plan, error) {
			if id == "p1" {
				return stored, nil
			}
			return nil, nil
		},
		updateFn: func(_ context.Context, plan *entity.Plan) error {
			updated = plan
			return nil
		},
	}
	svc := NewPlanService(repo)

	name := "2GB Data"
	item, err := svc.UpdatePlan(context.Background(), &types.UpdatePlanRequest{ID: "p1", Name: &name})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.Name != "2GB Data" {
		t.Fatalf("expected updated name, got %s", item.Name)
	}
	if item.Description != "old description" {
		t.Fatalf("expected description retained, got %s", item.Description)
	}
	if len(item.PaymentOptions) != 1 {
		t.Fatalf("expected payment options retained, got %+v", item.PaymentOptions)
	}
	if updated == nil {
		t.Fatal("expected update persisted")
	}
}

func TestUpdatePlanNotFound(t *testing.T) {
	svc := NewPlanService(&mockPlanRepo{})

	name := "x"
	_, err := svc.UpdatePlan(context.Background(), &types.UpdatePlanRequest{ID: "missing", Name: &name})
	if !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestDeletePlanMapsRepoNotFound(t *testing.T) {
	repo := &mockPlanRepo{
		deleteFn: func(context.Context, string) error {
			return repository.ErrPlanNotFound
		},
	}
	svc := NewPlanService(repo)

	err := svc.DeletePlan(context.Background(), "missing")
	if !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestRepairPaymentOptions(t *testing.T) {
	repo := &mockPlanRepo{
		repairFn: func(context.Context) ([]string, error) {
			return []string{"p1", "p2"}, nil
		},
	}
	svc := NewPlanService(repo)

	ids, err := svc.RepairPaymentOptions(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 repaired ids, got %v", ids)
	}
}
