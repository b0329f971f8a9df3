package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/collection"
	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/schema"
	pgdb "github.com/ogurasousui/onboarding-grpc-clean-arch/internal/platform/db/postgres"
)

// ProfileRepository は PostgreSQL を利用した従業員プロフィール投影の実装です。
// 更新可能な列はレジストリ由来のホワイトリストに限定されます。
type ProfileRepository struct {
	pool    pgdb.Queryer
	columns []string
	allowed map[string]struct{}
}

// NewProfileRepository は ProfileRepository を生成します。
func NewProfileRepository(pool pgdb.Queryer) *ProfileRepository {
	columns := schema.ProfileColumns()
	allowed := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		allowed[c] = struct{}{}
	}
	return &ProfileRepository{pool: pool, columns: columns, allowed: allowed}
}

// UpsertField はプロフィールの単一属性を上書きします。マージは行いません。
func (r *ProfileRepository) UpsertField(ctx context.Context, employeeID, column, value string) error {
	if _, ok := r.allowed[column]; !ok {
		return fmt.Errorf("profile column %s: %w", column, collection.ErrUnknownField)
	}

	// column はホワイトリスト検証済みの識別子であり、プレースホルダにはできない。
	query := fmt.Sprintf(`
        INSERT INTO employee_profiles (employee_id, %s, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (employee_id)
        DO UPDATE SET %s = EXCLUDED.%s, updated_at = EXCLUDED.updated_at
    `, column, column, column)

	if _, err := r.pool.Exec(ctx, query, employeeID, value); err != nil {
		return err
	}
	return nil
}

// Find は存在する属性のみを列名→値のマップで返します。レコードが無ければ nil を返します。
func (r *ProfileRepository) Find(ctx context.Context, employeeID string) (map[string]string, error) {
	query := fmt.Sprintf(`
        SELECT %s
          FROM employee_profiles
         WHERE employee_id = $1
         LIMIT 1
    `, strings.Join(r.columns, ", "))

	row := r.pool.QueryRow(ctx, query, employeeID)

	values := make([]sql.NullString, len(r.columns))
	dest := make([]any, len(r.columns))
	for idx := range values {
		dest[idx] = &values[idx]
	}

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	profile := make(map[string]string, len(r.columns))
	for idx, column := range r.columns {
		if values[idx].Valid {
			profile[column] = values[idx].String
		}
	}
	return profile, nil
}
