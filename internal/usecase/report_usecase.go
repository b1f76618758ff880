package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"ssx_solar/internal/domain/entities"
	"ssx_solar/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

// serviceRequestReportHeader is the column order of the admin export.
var serviceRequestReportHeader = []string{
	"Request ID",
	"Client ID",
	"Equipment",
	"Priority",
	"Status",
	"Installer",
	"City",
	"State",
	"Created At",
	"Completed At",
}

const reportSheetName = "Service Requests"

// IReportUseCase builds the admin portal's XLSX export over the full
// service-request listing.

type IReportUseCase interface {
	ExportServiceRequests(ctx context.Context) ([]byte, error)
}

type ReportUseCase struct {
	repo interfaces.IServiceRequestRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(repo interfaces.IServiceRequestRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

func (u *ReportUseCase) ExportServiceRequests(ctx context.Context) ([]byte, error) {
	records, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByCreatedAtDesc(records)
	return generateServiceRequestWorkbook(records)
}

func generateServiceRequestWorkbook(records []entities.ServiceRequest) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open, so Close only on the error paths.

	index, err := f.NewSheet(reportSheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, title := range serviceRequestReportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(reportSheetName, cell, title); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellStyle(reportSheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}

	for i, rec := range records {
		row := []any{
			rec.ID,
			rec.ClientID,
			string(rec.EquipmentType),
			string(rec.Priority),
			string(rec.Status),
			rec.InstallerName,
			rec.Address.City,
			rec.Address.State,
			rec.CreatedAt.UTC().Format(time.RFC3339),
			formatOptionalTime(rec.CompletedAt),
		}
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(reportSheetName, cell, value); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
