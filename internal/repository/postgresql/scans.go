package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/vulnscan/internal/domain"
)

const (
	TableScans        = "scans"
	TableScanServices = "scan_services"
)

type ScansRepository struct {
	pool      *pgxpool.Pool
	qb        sq.StatementBuilderType
	txManager *TxManager
}

func NewScansRepository(pool *pgxpool.Pool, txManager *TxManager) *ScansRepository {
	return &ScansRepository{
		pool:      pool,
		qb:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		txManager: txManager,
	}
}

type scanRow struct {
	ID                string                  `db:"id"`
	CreatedAt         time.Time               `db:"created_at"`
	TotalServices     int                     `db:"total_services"`
	SeverityBreakdown map[domain.Severity]int `db:"severity_breakdown"`
	HighRiskCount     int                     `db:"high_risk_count"`
	MediumRiskCount   int                     `db:"medium_risk_count"`
	LowRiskCount      int                     `db:"low_risk_count"`
}

func (r scanRow) toSummary() *domain.ScanSummary {
	breakdown := r.SeverityBreakdown
	if breakdown == nil {
		breakdown = make(map[domain.Severity]int)
	}

	return &domain.ScanSummary{
		ID:        r.ID,
		Timestamp: r.CreatedAt,
		Summary: domain.Summary{
			TotalServices:     r.TotalServices,
			SeverityBreakdown: breakdown,
			HighRiskCount:     r.HighRiskCount,
			MediumRiskCount:   r.MediumRiskCount,
			LowRiskCount:      r.LowRiskCount,
		},
	}
}

var scanColumns = []string{
	"id",
	"created_at",
	"total_services",
	"severity_breakdown",
	"high_risk_count",
	"medium_risk_count",
	"low_risk_count",
}

var serviceColumns = []string{
	"ip",
	"port",
	"service",
	"version",
	"recommendation",
	"severity",
	"cve_info",
}

func (r *ScansRepository) SaveScan(ctx context.Context, scan *domain.Scan) error {
	return r.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		db := extractDB(ctx, r.pool)

		sql, args, err := r.qb.
			Insert(TableScans).
			Columns(scanColumns...).
			Values(
				scan.ID,
				scan.Timestamp,
				scan.Summary.TotalServices,
				scan.Summary.SeverityBreakdown,
				scan.Summary.HighRiskCount,
				scan.Summary.MediumRiskCount,
				scan.Summary.LowRiskCount,
			).
			ToSql()
		if err != nil {
			return createQueryError(err)
		}

		if _, err := db.Exec(ctx, sql, args...); err != nil {
			return executeQueryError(err)
		}

		columns := append([]string{"scan_id", "idx"}, serviceColumns...)

		copied, err := db.CopyFrom(ctx, pgx.Identifier{TableScanServices}, columns,
			pgx.CopyFromSlice(len(scan.Services), func(i int) ([]any, error) {
				s := scan.Services[i]
				return []any{
					scan.ID,
					i,
					s.IP,
					s.Port,
					s.Service,
					s.Version,
					s.Recommendation,
					string(s.Severity),
					s.CVEInfo,
				}, nil
			}))
		if err != nil {
			return copyRowsError(err)
		}

		if copied != int64(len(scan.Services)) {
			return fmt.Errorf("failed to save services: copied %d rows, expected %d", copied, len(scan.Services))
		}

		return nil
	})
}

func (r *ScansRepository) Scans(ctx context.Context) ([]*domain.ScanSummary, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(scanColumns...).
		From(TableScans).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	scanRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[scanRow])
	if err != nil {
		return nil, collectRowsError(err)
	}

	summaries := make([]*domain.ScanSummary, 0, len(scanRows))
	for _, row := range scanRows {
		summaries = append(summaries, row.toSummary())
	}

	return summaries, nil
}

func (r *ScansRepository) ScanByID(ctx context.Context, id string) (*domain.Scan, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(scanColumns...).
		From(TableScans).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[scanRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrScanNotFound
		}
		return nil, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(serviceColumns...).
		From(TableScanServices).
		Where(sq.Eq{"scan_id": id}).
		OrderBy("idx ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err = db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	services, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Service])
	if err != nil {
		return nil, collectRowsError(err)
	}

	summary := row.toSummary()

	return &domain.Scan{
		ID:        summary.ID,
		Timestamp: summary.Timestamp,
		Services:  services,
		Summary:   summary.Summary,
	}, nil
}

func (r *ScansRepository) DeleteScan(ctx context.Context, id string) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Delete(TableScans).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrScanNotFound
	}

	return nil
}
