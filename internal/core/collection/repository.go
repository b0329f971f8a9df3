package collection

import (
	"context"
	"time"

	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/schema"
)

// StateRepository は正本となるセッション状態の永続化の抽象です。
type StateRepository interface {
	// Create は状態を新規作成します。同一従業員に収集中の状態が既に存在する場合は
	// ErrAlreadyCollecting を返します(insert-if-absent)。
	Create(ctx context.Context, state *CollectionState) error
	// Update はセッション ID をキーに状態を上書きします。
	Update(ctx context.Context, state *CollectionState) error
	FindBySessionID(ctx context.Context, sessionID string) (*CollectionState, error)
	// FindActiveByEmployee は収集中の状態を返します。存在しなければ ErrSessionNotFound です。
	FindActiveByEmployee(ctx context.Context, employeeID string) (*CollectionState, error)
	// FindLatestByEmployee は状態の有無を問わず直近のセッションを返します。
	FindLatestByEmployee(ctx context.Context, employeeID string) (*CollectionState, error)
}

// ProfileStore は従業員プロフィール投影の永続化の抽象です。
// プロフィールは利便性のための投影であり、常に上書きされます。
type ProfileStore interface {
	UpsertField(ctx context.Context, employeeID, column, value string) error
	// Find は存在する列のみを列名→値のマップで返します。レコードが無ければ nil を返します。
	Find(ctx context.Context, employeeID string) (map[string]string, error)
}

// DocumentStore はワーキングドキュメントの永続化の抽象です。
// 具体的な格納媒体は実装の選択であり、契約の一部ではありません。
type DocumentStore interface {
	Create(ctx context.Context, doc *WorkingDocument) error
	// Get はドキュメントを返します。存在しない、または読み取れない場合は nil を返します。
	Get(ctx context.Context, employeeID string) (*WorkingDocument, error)
	// UpdateField はセクション内の葉と進捗を上書きします。
	UpdateField(ctx context.Context, employeeID string, section schema.Section, key schema.FieldKey, value string, updatedAt time.Time, progress Progress) error
	// Finalize はテンプレートをその場で契約書へ変換します(リネームであって複製ではない)。
	Finalize(ctx context.Context, employeeID string, at time.Time) (*WorkingDocument, error)
	// DeleteTemplate はテンプレート形態のドキュメントのみ削除します。契約書には触れません。
	DeleteTemplate(ctx context.Context, employeeID string) error
}
