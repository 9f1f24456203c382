package reporting

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
)

const dateLayout = "2006-01-02"

var contentTypes = map[models.ReportFormat]string{
	models.ReportPDF:   "application/pdf",
	models.ReportExcel: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// Generator renders reports on the backend.
type Generator interface {
	GenerateReport(ctx context.Context, req models.ReportRequest) ([]byte, error)
}

// Service turns backend-rendered reports into named downloads.
type Service struct {
	generator Generator
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires a new reporting service instance.
func NewService(generator Generator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{generator: generator, logger: logger, now: time.Now}
}

// Download renders the report and names it <type>_<scope>_<date>.<ext>.
func (s *Service) Download(ctx context.Context, req models.ReportRequest) (*models.Report, error) {
	data, err := s.generator.GenerateReport(ctx, req)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		Filename:    Filename(req, s.now()),
		ContentType: contentTypes[req.Format],
		Data:        data,
	}
	if report.ContentType == "" {
		report.ContentType = "application/octet-stream"
	}

	s.logger.Info("report generated",
		zap.String("type", req.Type),
		zap.String("format", string(req.Format)),
		zap.String("filename", report.Filename),
		zap.Int("bytes", len(data)))

	return report, nil
}

// Filename builds the download name. Scope defaults to the farm, then the
// animal, then "general".
func Filename(req models.ReportRequest, now time.Time) string {
	scope := req.Scope
	switch {
	case scope != "":
	case req.FarmID != "":
		scope = "farm-" + req.FarmID
	case req.AnimalID != "":
		scope = "animal-" + req.AnimalID
	default:
		scope = "general"
	}
	scope = strings.Trim(unsafeFilename.ReplaceAllString(scope, "-"), "-")
	return fmt.Sprintf("%s_%s_%s.%s", req.Type, scope, now.Format(dateLayout), req.Format.Extension())
}
