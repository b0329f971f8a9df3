package collection

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/schema"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// Service は契約フィールド収集に関するユースケースをまとめます。
// セッション状態の遷移を変更できるのはこの Service のみです。
type Service struct {
	states   StateRepository
	profiles ProfileStore
	docs     DocumentStore
	clock    Clock
	newID    func() string
}

// UseCase は収集マネージャの公開インターフェースです。
type UseCase interface {
	InitializeCollection(ctx context.Context, in InitializeCollectionInput) (*CollectionState, error)
	UpdateField(ctx context.Context, in UpdateFieldInput) (*UpdateFieldResult, error)
	ResumeCollection(ctx context.Context, in ResumeCollectionInput) (*CollectionState, error)
	FinalizeCollection(ctx context.Context, in FinalizeCollectionInput) (*WorkingDocument, error)
	ClearState(ctx context.Context, in ClearStateInput) error
	GetState(ctx context.Context, employeeID string) (*CollectionState, error)
	ActiveSession(ctx context.Context, employeeID string) (*ActiveSessionInfo, error)
	LoadTemplate(ctx context.Context, employeeID string) (*WorkingDocument, error)
	LoadContract(ctx context.Context, employeeID string) (*WorkingDocument, error)
}

// NewService は Service を生成します。
func NewService(states StateRepository, profiles ProfileStore, docs DocumentStore, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{
		states:   states,
		profiles: profiles,
		docs:     docs,
		clock:    clock,
		newID:    uuid.NewString,
	}
}

// InitializeCollectionInput は収集開始時の入力です。
// InitialData には事前抽出済みの値を渡せます。
type InitializeCollectionInput struct {
	EmployeeID   string
	Jurisdiction schema.Jurisdiction
	InitialData  map[schema.FieldKey]string
}

// UpdateFieldInput はフィールド 1 件の収集入力です。
type UpdateFieldInput struct {
	SessionID string
	Key       schema.FieldKey
	Value     string
	Section   schema.Section
}

// UpdateFieldResult はフィールド収集の結果サマリです。
type UpdateFieldResult struct {
	Field           schema.FieldKey
	CollectedCount  int
	RemainingFields int
}

// ResumeCollectionInput は再開時の入力です。
type ResumeCollectionInput struct {
	SessionID string
}

// FinalizeCollectionInput は確定時の入力です。
type FinalizeCollectionInput struct {
	SessionID string
}

// ClearStateInput は中断・破棄時の入力です。
type ClearStateInput struct {
	SessionID string
}

// ActiveSessionInfo は「この従業員の契約交渉が進行中か」を示す読み取り専用ビューです。
type ActiveSessionInfo struct {
	Active     bool
	EmployeeID string
	SessionID  string
}

// InitializeCollection は従業員の収集セッションを開始します。
// 同一従業員に収集中のセッションが存在する場合は ErrAlreadyCollecting を返し、
// 既存の状態には一切触れません。
func (s *Service) InitializeCollection(ctx context.Context, in InitializeCollectionInput) (*CollectionState, error) {
	employeeID, err := normalizeEmployeeID(in.EmployeeID)
	if err != nil {
		return nil, err
	}

	fields, err := schema.Fields(in.Jurisdiction)
	if err != nil {
		return nil, err
	}

	descriptors := indexFields(fields)
	for key := range in.InitialData {
		if _, ok := descriptors[key]; !ok {
			return nil, fmt.Errorf("%s: %w", key, ErrUnknownField)
		}
	}

	if active, err := s.states.FindActiveByEmployee(ctx, employeeID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return nil, err
	} else if active != nil {
		return nil, ErrAlreadyCollecting
	}

	now := s.clock.Now()
	state := &CollectionState{
		SessionID:     s.newID(),
		EmployeeID:    employeeID,
		Jurisdiction:  in.Jurisdiction,
		Collected:     make(map[schema.FieldKey]string, len(in.InitialData)),
		Missing:       make([]schema.FieldDescriptor, 0, len(fields)),
		Phase:         PhaseCollecting,
		StartedAt:     now,
		LastUpdatedAt: now,
	}

	for _, f := range fields {
		if value, ok := in.InitialData[f.Key]; ok {
			state.Collected[f.Key] = value
			continue
		}
		state.Missing = append(state.Missing, f)
	}

	// Create は収集中セッションの重複を原子的に弾きます。上の参照は早期応答のためです。
	if err := s.states.Create(ctx, state); err != nil {
		return nil, err
	}

	doc := s.newTemplateDocument(state, fields, now)
	if err := s.docs.Create(ctx, doc); err != nil {
		return nil, &PartialWriteError{Store: StoreDocument, Err: err}
	}

	return state, nil
}

// UpdateField はフィールド 1 件を三重書き込み(正本→プロフィール→ドキュメント)で反映します。
// 正本への書き込みが失敗した場合は何も起きていません。正本が成功し後続が失敗した場合は
// PartialWriteError を返します。同じ呼び出しの再実行で全ストアが収束します。
func (s *Service) UpdateField(ctx context.Context, in UpdateFieldInput) (*UpdateFieldResult, error) {
	sessionID, err := normalizeSessionID(in.SessionID)
	if err != nil {
		return nil, err
	}

	key := schema.FieldKey(strings.TrimSpace(string(in.Key)))
	if key == "" {
		return nil, ErrInvalidFieldKey
	}

	if !schema.IsValidSection(in.Section) {
		return nil, fmt.Errorf("%q: %w", string(in.Section), ErrUnknownSection)
	}

	state, err := s.states.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Phase != PhaseCollecting {
		return nil, ErrSessionNotActive
	}

	fields, err := schema.Fields(state.Jurisdiction)
	if err != nil {
		return nil, err
	}

	descriptor, ok := indexFields(fields)[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ErrUnknownField)
	}
	if descriptor.Section != in.Section {
		return nil, fmt.Errorf("%s: %w", key, ErrSectionMismatch)
	}

	now := s.clock.Now()
	state.Collected[key] = in.Value
	state.Missing = removeField(state.Missing, key)
	state.LastUpdatedAt = now

	if err := s.states.Update(ctx, state); err != nil {
		return nil, err
	}

	if descriptor.ProfileColumn != "" {
		if err := s.profiles.UpsertField(ctx, state.EmployeeID, descriptor.ProfileColumn, in.Value); err != nil {
			return nil, &PartialWriteError{Store: StoreProfile, Field: key, Err: err}
		}
	}

	progress := progressOf(state, len(fields))
	if err := s.docs.UpdateField(ctx, state.EmployeeID, descriptor.Section, key, in.Value, now, progress); err != nil {
		return nil, &PartialWriteError{Store: StoreDocument, Field: key, Err: err}
	}

	return &UpdateFieldResult{
		Field:           key,
		CollectedCount:  len(state.Collected),
		RemainingFields: len(state.Missing),
	}, nil
}

// ResumeCollection は中断されたセッションを再開し、収集済み・未収集の全体像を返します。
// プロフィールとドキュメントには書き込みません。
func (s *Service) ResumeCollection(ctx context.Context, in ResumeCollectionInput) (*CollectionState, error) {
	sessionID, err := normalizeSessionID(in.SessionID)
	if err != nil {
		return nil, err
	}

	state, err := s.states.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	state.ResumeCount++
	state.LastResumedAt = &now

	if err := s.states.Update(ctx, state); err != nil {
		return nil, err
	}

	return state, nil
}

// FinalizeCollection はテンプレートを契約書へ変換し、セッションを確定します。
// 必須フィールドの充足はキャッシュを信用せず、呼び出し時点のレジストリで再判定します。
func (s *Service) FinalizeCollection(ctx context.Context, in FinalizeCollectionInput) (*WorkingDocument, error) {
	sessionID, err := normalizeSessionID(in.SessionID)
	if err != nil {
		return nil, err
	}

	state, err := s.states.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Phase != PhaseCollecting {
		return nil, ErrSessionNotActive
	}

	fields, err := schema.Fields(state.Jurisdiction)
	if err != nil {
		return nil, err
	}

	var missingRequired []schema.FieldKey
	for _, f := range fields {
		if !f.Required {
			continue
		}
		if _, ok := state.Collected[f.Key]; !ok {
			missingRequired = append(missingRequired, f.Key)
		}
	}
	if len(missingRequired) > 0 {
		return nil, &IncompleteError{MissingRequired: missingRequired}
	}

	now := s.clock.Now()
	contract, err := s.docs.Finalize(ctx, state.EmployeeID, now)
	if err != nil {
		return nil, fmt.Errorf("finalize document for employee %s: %w", state.EmployeeID, err)
	}
	if contract == nil {
		return nil, ErrDocumentNotFound
	}

	// ドキュメント変換後に正本を確定させる。ここで失敗しても確定の再実行で収束する。
	state.Phase = PhaseFinalized
	state.LastUpdatedAt = now
	if err := s.states.Update(ctx, state); err != nil {
		return nil, &PartialWriteError{Store: StoreState, Err: err}
	}

	return contract, nil
}

// ClearState はセッションを破棄します。終端状態に対しては何もせず成功します。
// 収集済みのプロフィール投影は意図的に残します。
func (s *Service) ClearState(ctx context.Context, in ClearStateInput) error {
	sessionID, err := normalizeSessionID(in.SessionID)
	if err != nil {
		return err
	}

	state, err := s.states.FindBySessionID(ctx, sessionID)
	if err != nil {
		return err
	}
	if state.Phase.IsTerminal() {
		return nil
	}

	if err := s.docs.DeleteTemplate(ctx, state.EmployeeID); err != nil {
		return &PartialWriteError{Store: StoreDocument, Err: err}
	}

	state.Phase = PhaseCancelled
	state.LastUpdatedAt = s.clock.Now()
	if err := s.states.Update(ctx, state); err != nil {
		return &PartialWriteError{Store: StoreState, Err: err}
	}

	return nil
}

// GetState は従業員の直近のセッション状態を返します。存在しなければ nil を返します。
func (s *Service) GetState(ctx context.Context, employeeID string) (*CollectionState, error) {
	employeeID, err := normalizeEmployeeID(employeeID)
	if err != nil {
		return nil, err
	}

	state, err := s.states.FindLatestByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return state, nil
}

// ActiveSession は契約交渉が進行中かどうかを返します。ダッシュボード等の読み取り専用 API です。
func (s *Service) ActiveSession(ctx context.Context, employeeID string) (*ActiveSessionInfo, error) {
	employeeID, err := normalizeEmployeeID(employeeID)
	if err != nil {
		return nil, err
	}

	state, err := s.states.FindActiveByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return &ActiveSessionInfo{Active: false, EmployeeID: employeeID}, nil
		}
		return nil, err
	}

	return &ActiveSessionInfo{
		Active:     true,
		EmployeeID: state.EmployeeID,
		SessionID:  state.SessionID,
	}, nil
}

// LoadTemplate はテンプレート形態のドキュメントを返します。存在しなければ nil を返します。
func (s *Service) LoadTemplate(ctx context.Context, employeeID string) (*WorkingDocument, error) {
	return s.loadDocument(ctx, employeeID, DocumentStatusCollecting)
}

// LoadContract は契約書形態のドキュメントを返します。存在しなければ nil を返します。
func (s *Service) LoadContract(ctx context.Context, employeeID string) (*WorkingDocument, error) {
	return s.loadDocument(ctx, employeeID, DocumentStatusReadyForSignature)
}

func (s *Service) loadDocument(ctx context.Context, employeeID string, status DocumentStatus) (*WorkingDocument, error) {
	employeeID, err := normalizeEmployeeID(employeeID)
	if err != nil {
		return nil, err
	}

	doc, err := s.docs.Get(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.Status != status {
		return nil, nil
	}
	return doc, nil
}

func (s *Service) newTemplateDocument(state *CollectionState, fields []schema.FieldDescriptor, now time.Time) *WorkingDocument {
	doc := &WorkingDocument{
		EmployeeID:        state.EmployeeID,
		SessionID:         state.SessionID,
		Status:            DocumentStatusCollecting,
		Jurisdiction:      state.Jurisdiction,
		CreatedAt:         now,
		LastUpdated:       now,
		PersonalDetails:   make(map[string]string),
		BankingDetails:    make(map[string]string),
		EmploymentDetails: make(map[string]string),
	}

	for _, f := range fields {
		if value, ok := state.Collected[f.Key]; ok {
			doc.SetField(f.Section, f.Key, value)
		}
	}

	doc.CollectionProgress = progressOf(state, len(fields))
	return doc
}

func progressOf(state *CollectionState, totalFields int) Progress {
	missing := make([]string, 0, len(state.Missing))
	for _, f := range state.Missing {
		missing = append(missing, string(f.Key))
	}
	return Progress{
		TotalFields:     totalFields,
		CollectedFields: len(state.Collected),
		MissingFields:   missing,
	}
}

func indexFields(fields []schema.FieldDescriptor) map[schema.FieldKey]schema.FieldDescriptor {
	index := make(map[schema.FieldKey]schema.FieldDescriptor, len(fields))
	for _, f := range fields {
		index[f.Key] = f
	}
	return index
}

func removeField(fields []schema.FieldDescriptor, key schema.FieldKey) []schema.FieldDescriptor {
	for idx, f := range fields {
		if f.Key == key {
			return append(fields[:idx], fields[idx+1:]...)
		}
	}
	return fields
}

func normalizeEmployeeID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidEmployeeID
	}
	return trimmed, nil
}

func normalizeSessionID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidSessionID
	}
	return trimmed, nil
}
