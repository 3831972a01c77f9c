package services

import (
	"context"

	"github.com/Techkepper/PoskepperApi/entity"
	"github.com/Techkepper/PoskepperApi/pkg/apperr"
	"github.com/Techkepper/PoskepperApi/pkg/report"

	"github.com/xuri/excelize/v2"
)

type InventoryReportSource interface {
	ReportRows(ctx context.Context) ([]entity.Product, error)
}

type MovementFinder interface {
	FindByID(ctx context.Context, id int64) (*entity.InventoryMovement, error)
}

type CommissionSource interface {
	CommissionReport(ctx context.Context, userID int64, from, to string) ([]entity.Commission, error)
}

// ReportService loads report data and renders it as a workbook.
type ReportService struct {
	inventory   InventoryReportSource
	movements   MovementFinder
	commissions CommissionSource
}

func NewReportService(inventory InventoryReportSource, movements MovementFinder, commissions CommissionSource) *ReportService {
	return &ReportService{inventory: inventory, movements: movements, commissions: commissions}
}

func (s *ReportService) inventoryRows(ctx context.Context) ([]entity.Product, error) {
	rows, err := s.inventory.ReportRows(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperr.NotFoundf("No se encontraron productos")
	}
	return rows, nil
}

func (s *ReportService) Differences(ctx context.Context) (*excelize.File, error) {
	rows, err := s.inventoryRows(ctx)
	if err != nil {
		return nil, err
	}
	return report.Differences(rows)
}

func (s *ReportService) Snapshot(ctx context.Context) (*excelize.File, error) {
	rows, err := s.inventoryRows(ctx)
	if err != nil {
		return nil, err
	}
	return report.Snapshot(rows)
}

func (s *ReportService) Movement(ctx context.Context, id int64) (*excelize.File, error) {
	m, err := s.movements.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.NotFoundf("Movimiento no encontrado")
	}
	return report.Movement(m)
}

func (s *ReportService) Commissions(ctx context.Context, userID int64, from, to string) (*excelize.File, error) {
	rows, err := s.commissions.CommissionReport(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperr.NotFoundf("No se encontraron comisiones")
	}
	return report.Commissions(rows)
}
