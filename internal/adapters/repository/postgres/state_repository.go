package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/collection"
	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/schema"
	pgdb "github.com/ogurasousui/onboarding-grpc-clean-arch/internal/platform/db/postgres"
)

const stateUniqueViolationCode = "23505"

// StateRepository は PostgreSQL を利用したセッション状態永続化の実装です。
// collection_states には employee_id に対する部分一意インデックス
// (WHERE phase = 'collecting') があり、収集中セッションの重複を原子的に弾きます。
type StateRepository struct {
	pool pgdb.Queryer
}

// NewStateRepository は StateRepository を生成します。
func NewStateRepository(pool pgdb.Queryer) *StateRepository {
	return &StateRepository{pool: pool}
}

type storedField struct {
	Key           string `json:"key"`
	Section       string `json:"section"`
	Required      bool   `json:"required"`
	ProfileColumn string `json:"profile_column,omitempty"`
}

// Create はセッション状態を新規作成します。
func (r *StateRepository) Create(ctx context.Context, state *collection.CollectionState) error {
	collected, missing, err := marshalFieldSets(state)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
        INSERT INTO collection_states (session_id, employee_id, jurisdiction, phase, collected, missing, started_at, last_updated_at, last_resumed_at, resume_count)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `,
		state.SessionID,
		state.EmployeeID,
		string(state.Jurisdiction),
		string(state.Phase),
		collected,
		missing,
		state.StartedAt,
		state.LastUpdatedAt,
		nullableTime(state.LastResumedAt),
		state.ResumeCount,
	)
	if err != nil {
		return translateStatePgError(err)
	}
	return nil
}

// Update はセッション ID をキーに状態を上書きします。
func (r *StateRepository) Update(ctx context.Context, state *collection.CollectionState) error {
	collected, missing, err := marshalFieldSets(state)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `
        UPDATE collection_states
           SET phase = $1,
               collected = $2,
               missing = $3,
               last_updated_at = $4,
               last_resumed_at = $5,
               resume_count = $6
         WHERE session_id = $7
    `,
		string(state.Phase),
		collected,
		missing,
		state.LastUpdatedAt,
		nullableTime(state.LastResumedAt),
		state.ResumeCount,
		state.SessionID,
	)
	if err != nil {
		return translateStatePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return collection.ErrSessionNotFound
	}
	return nil
}

// FindBySessionID はセッション ID で状態を取得します。
func (r *StateRepository) FindBySessionID(ctx context.Context, sessionID string) (*collection.CollectionState, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT session_id, employee_id, jurisdiction, phase, collected, missing, started_at, last_updated_at, last_resumed_at, resume_count
          FROM collection_states
         WHERE session_id = $1
         LIMIT 1
    `, sessionID)

	state, err := scanState(row)
	if err != nil {
		return nil, translateStatePgError(err)
	}
	return state, nil
}

// FindActiveByEmployee は収集中のセッションを取得します。
func (r *StateRepository) FindActiveByEmployee(ctx context.Context, employeeID string) (*collection.CollectionState, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT session_id, employee_id, jurisdiction, phase, collected, missing, started_at, last_updated_at, last_resumed_at, resume_count
          FROM collection_states
         WHERE employee_id = $1 AND phase = 'collecting'
         LIMIT 1
    `, employeeID)

	state, err := scanState(row)
	if err != nil {
		return nil, translateStatePgError(err)
	}
	return state, nil
}

// FindLatestByEmployee は状態の有無を問わず直近のセッションを取得します。
func (r *StateRepository) FindLatestByEmployee(ctx context.Context, employeeID string) (*collection.CollectionState, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT session_id, employee_id, jurisdiction, phase, collected, missing, started_at, last_updated_at, last_resumed_at, resume_count
          FROM collection_states
         WHERE employee_id = $1
         ORDER BY started_at DESC, session_id DESC
         LIMIT 1
    `, employeeID)

	state, err := scanState(row)
	if err != nil {
		return nil, translateStatePgError(err)
	}
	return state, nil
}

func marshalFieldSets(state *collection.CollectionState) ([]byte, []byte, error) {
	collected, err := json.Marshal(state.Collected)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres: marshal collected: %w", err)
	}

	stored := make([]storedField, 0, len(state.Missing))
	for _, f := range state.Missing {
		stored = append(stored, storedField{
			Key:           string(f.Key),
			Section:       string(f.Section),
			Required:      f.Required,
			ProfileColumn: f.ProfileColumn,
		})
	}
	missing, err := json.Marshal(stored)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres: marshal missing: %w", err)
	}

	return collected, missing, nil
}

func scanState(row pgx.Row) (*collection.CollectionState, error) {
	var (
		sessionID     string
		employeeID    string
		jurisdiction  string
		phase         string
		collectedRaw  []byte
		missingRaw    []byte
		startedAt     time.Time
		lastUpdatedAt time.Time
		lastResumedAt sql.NullTime
		resumeCount   int
	)

	if err := row.Scan(
		&sessionID,
		&employeeID,
		&jurisdiction,
		&phase,
		&collectedRaw,
		&missingRaw,
		&startedAt,
		&lastUpdatedAt,
		&lastResumedAt,
		&resumeCount,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, collection.ErrSessionNotFound
		}
		return nil, err
	}

	collected := make(map[schema.FieldKey]string)
	if err := json.Unmarshal(collectedRaw, &collected); err != nil {
		return nil, fmt.Errorf("postgres: unmarshal collected: %w", err)
	}

	var stored []storedField
	if err := json.Unmarshal(missingRaw, &stored); err != nil {
		return nil, fmt.Errorf("postgres: unmarshal missing: %w", err)
	}
	missing := make([]schema.FieldDescriptor, 0, len(stored))
	for _, f := range stored {
		missing = append(missing, schema.FieldDescriptor{
			Key:           schema.FieldKey(f.Key),
			Section:       schema.Section(f.Section),
			Required:      f.Required,
			ProfileColumn: f.ProfileColumn,
		})
	}

	var resumedPtr *time.Time
	if lastResumedAt.Valid {
		t := lastResumedAt.Time.UTC()
		resumedPtr = &t
	}

	return &collection.CollectionState{
		SessionID:     sessionID,
		EmployeeID:    employeeID,
		Jurisdiction:  schema.Jurisdiction(jurisdiction),
		Collected:     collected,
		Missing:       missing,
		Phase:         collection.Phase(phase),
		StartedAt:     startedAt,
		LastUpdatedAt: lastUpdatedAt,
		LastResumedAt: resumedPtr,
		ResumeCount:   resumeCount,
	}, nil
}

func translateStatePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return collection.ErrSessionNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == stateUniqueViolationCode {
		return collection.ErrAlreadyCollecting
	}

	return err
}

func nullableTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return value.UTC()
}
