package reporting

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"

	"cartera-go/internal/model"
)

var ErrUnknownReport = errors.New("unknown report")

type Service struct {
	aggregator Aggregator
	sheet      SheetReader
	pipelines  map[string]PipelineReport
}

func NewService(aggregator Aggregator, sheet SheetReader) *Service {
	pipelines := map[string]PipelineReport{}
	for _, report := range PipelineReports() {
		pipelines[report.Name] = report
	}
	return &Service{aggregator: aggregator, sheet: sheet, pipelines: pipelines}
}

// Pipeline runs the named store-side aggregation.
func (s *Service) Pipeline(ctx context.Context, name string) ([]bson.M, error) {
	report, ok := s.pipelines[name]
	if !ok {
		return nil, errors.Wrap(ErrUnknownReport, name)
	}
	rows, err := s.aggregator.Aggregate(ctx, report.Collection, report.Pipeline)
	if err != nil {
		return nil, errors.Wrapf(err, "run report %s", name)
	}
	return rows, nil
}

func (s *Service) SheetCount(ctx context.Context) (int64, error) {
	return s.sheet.Count(ctx)
}

// SheetRows loads and decodes every row of the project sheet.
func (s *Service) SheetRows(ctx context.Context) ([]model.SheetRow, error) {
	docs, err := s.sheet.Rows(ctx)
	if err != nil {
		return nil, err
	}
	return model.DecodeSheetRows(docs)
}

func (s *Service) Analyze(ctx context.Context) (Analysis, error) {
	rows, err := s.SheetRows(ctx)
	if err != nil {
		return Analysis{}, err
	}
	return Analyze(rows), nil
}

// AnalyzeFull reads the stored count and the rows concurrently.
func (s *Service) AnalyzeFull(ctx context.Context) (FullAnalysis, error) {
	var (
		total int64
		rows  []model.SheetRow
	)
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		count, err := s.sheet.Count(gctx)
		total = count
		return err
	})
	group.Go(func() error {
		decoded, err := s.SheetRows(gctx)
		rows = decoded
		return err
	})
	if err := group.Wait(); err != nil {
		return FullAnalysis{}, err
	}
	return AnalyzeFull(rows, int(total)), nil
}

func (s *Service) CountColumn(ctx context.Context, col Column) ([]Count, error) {
	rows, err := s.SheetRows(ctx)
	if err != nil {
		return nil, err
	}
	return CountColumn(rows, col), nil
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	rows, err := s.SheetRows(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(rows), nil
}

// SheetReport runs one of the per-project folds over the sheet.
func (s *Service) SheetReport(ctx context.Context, fold func([]model.SheetRow) []Count) ([]Count, error) {
	rows, err := s.SheetRows(ctx)
	if err != nil {
		return nil, err
	}
	return fold(rows), nil
}
