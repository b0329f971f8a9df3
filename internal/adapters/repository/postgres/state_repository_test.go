package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/collection"
	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/schema"
)

type stubStateRow struct {
	scanFn func(dest ...interface{}) error
}

func (s stubStateRow) Scan(dest ...interface{}) error {
	return s.scanFn(dest...)
}

func sampleState(t *testing.T) *collection.CollectionState {
	t.Helper()
	started := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return &collection.CollectionState{
		SessionID:    "11111111-2222-3333-4444-555555555555",
		EmployeeID:   "emp-1",
		Jurisdiction: schema.JurisdictionMY,
		Collected:    map[schema.FieldKey]string{"full_name": "Aisyah binti Rahman"},
		Missing: []schema.FieldDescriptor{
			{Key: "national_id", Section: schema.SectionPersonal, Required: true},
		},
		Phase:         collection.PhaseCollecting,
		StartedAt:     started,
		LastUpdatedAt: started,
	}
}

func TestStateRepository_Create(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewStateRepository(mock)
	state := sampleState(t)
	collected, missing, err := marshalFieldSets(state)
	if err != nil {
		t.Fatalf("marshalFieldSets returned error: %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO collection_states (session_id, employee_id, jurisdiction, phase, collected, missing, started_at, last_updated_at, last_resumed_at, resume_count)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `)).
		WithArgs(
			state.SessionID,
			state.EmployeeID,
			string(state.Jurisdiction),
			string(state.Phase),
			collected,
			missing,
			state.StartedAt,
			state.LastUpdatedAt,
			nil,
			state.ResumeCount,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := repo.Create(context.Background(), state); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStateRepository_Create_DuplicateActive(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewStateRepository(mock)
	state := sampleState(t)

	mock.ExpectExec("INSERT INTO collection_states").
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnError(&pgconn.PgError{Code: stateUniqueViolationCode, ConstraintName: "collection_states_active_employee_idx"})

	err = repo.Create(context.Background(), state)
	if !errors.Is(err, collection.ErrAlreadyCollecting) {
		t.Fatalf("expected ErrAlreadyCollecting, got %v", err)
	}
}

func TestStateRepository_Update_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewStateRepository(mock)
	state := sampleState(t)

	mock.ExpectExec("UPDATE collection_states").
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.Update(context.Background(), state)
	if !errors.Is(err, collection.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestStateRepository_FindActiveByEmployee(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewStateRepository(mock)
	state := sampleState(t)
	collected, missing, err := marshalFieldSets(state)
	if err != nil {
		t.Fatalf("marshalFieldSets returned error: %v", err)
	}

	rows := pgxmock.NewRows([]string{
		"session_id", "employee_id", "jurisdiction", "phase", "collected", "missing",
		"started_at", "last_updated_at", "last_resumed_at", "resume_count",
	}).AddRow(
		state.SessionID, state.EmployeeID, string(state.Jurisdiction), string(state.Phase),
		collected, missing, state.StartedAt, state.LastUpdatedAt, nil, 0,
	)

	mock.ExpectQuery("SELECT (.+) FROM collection_states").
		WithArgs("emp-1").
		WillReturnRows(rows)

	found, err := repo.FindActiveByEmployee(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("FindActiveByEmployee returned error: %v", err)
	}
	if found.SessionID != state.SessionID {
		t.Errorf("unexpected session id: %s", found.SessionID)
	}
	if found.Collected["full_name"] != "Aisyah binti Rahman" {
		t.Errorf("collected data not round-tripped: %+v", found.Collected)
	}
	if len(found.Missing) != 1 || found.Missing[0].Key != "national_id" {
		t.Errorf("missing fields not round-tripped: %+v", found.Missing)
	}
	if !found.Missing[0].Required {
		t.Errorf("required flag lost in round trip")
	}
}

func TestScanState_NoRows(t *testing.T) {
	t.Parallel()

	row := stubStateRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanState(row)
	if !errors.Is(err, collection.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestScanState_MalformedCollected(t *testing.T) {
	t.Parallel()

	row := stubStateRow{scanFn: func(dest ...interface{}) error {
		*(dest[0].(*string)) = "session-1"
		*(dest[1].(*string)) = "emp-1"
		*(dest[2].(*string)) = "MY"
		*(dest[3].(*string)) = "collecting"
		*(dest[4].(*[]byte)) = []byte("{not json")
		*(dest[5].(*[]byte)) = []byte("[]")
		return nil
	}}

	if _, err := scanState(row); err == nil {
		t.Fatalf("expected error for malformed collected payload")
	}
}

func TestMarshalFieldSets_RoundTrip(t *testing.T) {
	t.Parallel()

	state := sampleState(t)
	_, missing, err := marshalFieldSets(state)
	if err != nil {
		t.Fatalf("marshalFieldSets returned error: %v", err)
	}

	var stored []storedField
	if err := json.Unmarshal(missing, &stored); err != nil {
		t.Fatalf("missing payload is not valid JSON: %v", err)
	}
	if len(stored) != 1 || stored[0].Key != "national_id" || stored[0].Section != "personal_details" {
		t.Fatalf("unexpected missing payload: %+v", stored)
	}
}

func TestTranslateStatePgError(t *testing.T) {
	t.Parallel()

	if err := translateStatePgError(nil); err != nil {
		t.Errorf("nil must pass through, got %v", err)
	}

	plain := errors.New("boom")
	if got := translateStatePgError(plain); !errors.Is(got, plain) {
		t.Errorf("unknown errors must pass through, got %v", got)
	}

	unique := &pgconn.PgError{Code: stateUniqueViolationCode}
	if got := translateStatePgError(unique); !errors.Is(got, collection.ErrAlreadyCollecting) {
		t.Errorf("unique violation must map to ErrAlreadyCollecting, got %v", got)
	}
}
