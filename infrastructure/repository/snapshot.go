// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/leora-investor/investor-os-api/infrastructure/database/postgres"
	"github.com/leora-investor/investor-os-api/internal/domain"
	"github.com/leora-investor/investor-os-api/pkg/utils"
)

//go:generate mockgen -source=snapshot.go -destination=mocks/snapshot.go -package=mocks

const DefaultSnapshotListLimit = 50

var ErrNoRequestUser = errors.New("repository: requisição sem usuário autenticado")

// SnapshotRepository expõe as RPCs somente leitura de snapshots.
type SnapshotRepository interface {
	ListSnapshots(ctx context.Context, params domain.ListSnapshotsParams) ([]domain.Snapshot, error)
	ListMetricValues(ctx context.Context, snapshotID string) ([]domain.MetricValue, error)
	GetInvestorPosition(ctx context.Context, snapshotID string) (*domain.InvestorPosition, error)
	ListSnapshotSources(ctx context.Context, snapshotID string) ([]domain.SnapshotSource, error)
}

type snapshotRepository struct {
	conn postgres.Conn
}

func NewSnapshotRepository(conn postgres.Conn) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

// rpcQuery monta "SELECT cols FROM rpc(...)" com placeholders no formato do Postgres.
func rpcQuery(fn squirrel.Sqlizer, columns ...string) (string, []any, error) {
	fnSQL, args, err := fn.ToSql()
	if err != nil {
		return "", nil, err
	}

	query, _, err := squirrel.
		Select(columns...).
		From(fnSQL).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}

func (r *snapshotRepository) asUser(ctx context.Context, fn func(postgres.Queryer) error) error {
	claims := domain.ClaimsFromContext(ctx)
	if claims == nil || claims.UserID() == "" {
		return ErrNoRequestUser
	}

	return r.conn.RunAsUser(ctx, postgres.RequestUser{
		ID:    claims.UserID(),
		Email: claims.Email,
		Role:  claims.Role,
	}, fn)
}

func (r *snapshotRepository) ListSnapshots(ctx context.Context, params domain.ListSnapshotsParams) ([]domain.Snapshot, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultSnapshotListLimit
	}

	var kind *string
	if params.SnapshotKind != nil {
		k := string(*params.SnapshotKind)
		kind = &k
	}

	query, args, err := rpcQuery(
		squirrel.Expr("rpc_list_snapshots(?, ?, ?, ?)", kind, params.SnapshotMonth, params.ProjectKey, limit),
		"id", "investor_id", "snapshot_kind", "snapshot_month::text", "project_key", "created_at", "label",
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de snapshots")
	}

	snapshots := make([]domain.Snapshot, 0)
	err = r.asUser(ctx, func(q postgres.Queryer) error {
		rows, err := q.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var s domain.Snapshot
			var kind string
			var projectKey, label sql.NullString
			var createdAt sql.NullTime
			if err := rows.Scan(&s.ID, &s.InvestorID, &kind, &s.SnapshotMonth, &projectKey, &createdAt, &label); err != nil {
				return err
			}
			s.CreatedAt = timestampText(createdAt)
			s.SnapshotKind = domain.SnapshotKind(kind)
			s.ProjectKey = nullStringPtr(projectKey)
			s.Label = nullStringPtr(label)
			snapshots = append(snapshots, s)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, errors.Wrap(err, "rpc_list_snapshots")
	}

	return snapshots, nil
}

func (r *snapshotRepository) ListMetricValues(ctx context.Context, snapshotID string) ([]domain.MetricValue, error) {
	query, args, err := rpcQuery(
		squirrel.Expr("rpc_list_metric_values(?)", snapshotID),
		"snapshot_id", "metric_key", "value_text", "source_page", "created_at",
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de métricas")
	}

	metrics := make([]domain.MetricValue, 0)
	err = r.asUser(ctx, func(q postgres.Queryer) error {
		rows, err := q.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var m domain.MetricValue
			var valueText, sourcePage sql.NullString
			var createdAt sql.NullTime
			if err := rows.Scan(&m.SnapshotID, &m.MetricKey, &valueText, &sourcePage, &createdAt); err != nil {
				return err
			}
			m.CreatedAt = timestampText(createdAt)
			m.ValueText = valueText.String
			m.SourcePage = sourcePage.String
			metrics = append(metrics, m)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, errors.Wrap(err, "rpc_list_metric_values")
	}

	return metrics, nil
}

// GetInvestorPosition retorna a primeira linha da RPC, ou nil se não houver posição.
func (r *snapshotRepository) GetInvestorPosition(ctx context.Context, snapshotID string) (*domain.InvestorPosition, error) {
	query, args, err := rpcQuery(
		squirrel.Expr("rpc_get_investor_position(?)", snapshotID),
		"investor_id", "snapshot_id", "summary_text", "narrative_text", "created_at", "updated_at",
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de posição")
	}

	var position *domain.InvestorPosition
	err = r.asUser(ctx, func(q postgres.Queryer) error {
		var p domain.InvestorPosition
		var summary, narrative sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := q.QueryRowContext(ctx, query+" LIMIT 1", args...).
			Scan(&p.InvestorID, &p.SnapshotID, &summary, &narrative, &createdAt, &updatedAt)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return err
		}

		p.CreatedAt = timestampText(createdAt)
		p.UpdatedAt = timestampText(updatedAt)
		p.SummaryText = nullStringPtr(summary)
		p.NarrativeText = nullStringPtr(narrative)
		position = &p
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "rpc_get_investor_position")
	}

	return position, nil
}

func (r *snapshotRepository) ListSnapshotSources(ctx context.Context, snapshotID string) ([]domain.SnapshotSource, error) {
	query, args, err := rpcQuery(
		squirrel.Expr("rpc_list_snapshot_sources(?)", snapshotID),
		"source_type", "title", "url", "note",
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de fontes")
	}

	sources := make([]domain.SnapshotSource, 0)
	err = r.asUser(ctx, func(q postgres.Queryer) error {
		rows, err := q.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var sourceType, title, url, note sql.NullString
			if err := rows.Scan(&sourceType, &title, &url, &note); err != nil {
				return err
			}
			sources = append(sources, domain.SnapshotSource{
				SourceType: nullStringPtr(sourceType),
				Title:      nullStringPtr(title),
				URL:        nullStringPtr(url),
				Note:       nullStringPtr(note),
			})
		}
		return rows.Err()
	})
	if err != nil {
		return nil, errors.Wrap(err, "rpc_list_snapshot_sources")
	}

	return sources, nil
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

// timestampText devolve o timestamptz no formato do Supabase, ou vazio se nulo.
func timestampText(v sql.NullTime) string {
	if !v.Valid {
		return ""
	}
	return utils.SupabaseTimestamp(v.Time)
}
