// Package audit は同期処理の結果（特に失敗）を記録する。
package audit

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Operation は同期操作の種別を表す。
type Operation string

const (
	// OpUpsert は認証ストアへの登録・更新
	OpUpsert Operation = "upsert"
	// OpRemove は認証ストアからの削除
	OpRemove Operation = "remove"
	// OpDisconnect はセッション切断要求
	OpDisconnect Operation = "disconnect"
	// OpNasCreate はNASエントリ作成
	OpNasCreate Operation = "nas-create"
	// OpNasUpdate はNASエントリ更新
	OpNasUpdate Operation = "nas-update"
	// OpNasLink はルーターへのNAS逆参照書き込み
	OpNasLink Operation = "nas-link"
	// OpMirror はNASクライアントミラーの更新
	OpMirror Operation = "mirror"
	// OpSetSecret はルーターへのパスワード反映
	OpSetSecret Operation = "set-secret"
)

// TargetType は同期対象の種別を表す。
type TargetType string

const (
	// TargetCustomer は顧客
	TargetCustomer TargetType = "customer"
	// TargetRouter はルーター
	TargetRouter TargetType = "router"
)

// Outcome は同期結果を表す。
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// DefaultRecentCapacity は保持する直近失敗件数のデフォルト値
const DefaultRecentCapacity = 100

// Record は記録対象の同期結果
type Record struct {
	Operation  Operation
	TargetType TargetType
	TargetKey  string // 対象キー（ユーザー名、NAS IP等）
	CustomerID int64
	RouterID   int64
	Username   string
	Err        error
}

// Entry は監査ログエントリを表す。
type Entry struct {
	ID         string     `json:"id"`                    // エントリID（UUID）
	Time       string     `json:"time"`                  // RFC3339形式のタイムスタンプ
	Level      string     `json:"level"`                 // 成功時INFO、失敗時WARN
	App        string     `json:"app"`                   // アプリケーション名
	EventID    string     `json:"event_id"`              // イベントID（常に"SYNC_AUDIT"）
	Msg        string     `json:"msg"`                   // メッセージ
	Operation  Operation  `json:"operation"`             // 操作種別
	TargetType TargetType `json:"target_type"`           // 対象種別
	TargetKey  string     `json:"target_key,omitempty"`  // 対象キー
	CustomerID int64      `json:"customer_id,omitempty"` // 顧客ID
	RouterID   int64      `json:"router_id,omitempty"`   // ルーターID
	Username   string     `json:"username,omitempty"`    // ユーザー名
	Outcome    Outcome    `json:"outcome"`               // 結果
	Error      string     `json:"error,omitempty"`       // エラー内容（失敗時のみ）
}

// Logger は同期監査ログを出力する。
type Logger struct {
	writer io.Writer
	app    string
	now    func() time.Time

	mu       sync.Mutex
	recent   []Entry
	capacity int
}

// NewLogger は標準出力へ書き出すLoggerを生成する。
func NewLogger(app string) *Logger {
	return NewLoggerWithWriter(os.Stdout, app)
}

// NewLoggerWithWriter は指定されたWriterを使用するLoggerを生成する。
func NewLoggerWithWriter(writer io.Writer, app string) *Logger {
	return &Logger{
		writer:   writer,
		app:      app,
		now:      time.Now,
		capacity: DefaultRecentCapacity,
	}
}

// RecordFailure は同期失敗を記録する。失敗は直近一覧にも保持される。
func (l *Logger) RecordFailure(rec Record) {
	entry := l.newEntry(rec, OutcomeFailure)
	l.write(entry, true)
}

// RecordSuccess は同期成功を記録する。
func (l *Logger) RecordSuccess(rec Record) {
	entry := l.newEntry(rec, OutcomeSuccess)
	l.write(entry, false)
}

// RecentFailures は直近の失敗を新しい順に最大n件返す。n<=0の場合は全件。
func (l *Logger) RecentFailures(n int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 || n > len(l.recent) {
		n = len(l.recent)
	}
	out := make([]Entry, 0, n)
	for i := len(l.recent) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, l.recent[i])
	}
	return out
}

func (l *Logger) newEntry(rec Record, outcome Outcome) Entry {
	entry := Entry{
		ID:         uuid.NewString(),
		Time:       l.now().UTC().Format(time.RFC3339),
		Level:      "INFO",
		App:        l.app,
		EventID:    "SYNC_AUDIT",
		Msg:        string(rec.TargetType) + " " + string(rec.Operation) + " " + string(outcome),
		Operation:  rec.Operation,
		TargetType: rec.TargetType,
		TargetKey:  rec.TargetKey,
		CustomerID: rec.CustomerID,
		RouterID:   rec.RouterID,
		Username:   rec.Username,
		Outcome:    outcome,
	}
	if outcome == OutcomeFailure {
		entry.Level = "WARN"
		if rec.Err != nil {
			entry.Error = rec.Err.Error()
		}
	}
	return entry
}

func (l *Logger) write(entry Entry, keep bool) {
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.writer.Write(append(data, '\n'))

	if keep {
		l.recent = append(l.recent, entry)
		if len(l.recent) > l.capacity {
			l.recent = l.recent[len(l.recent)-l.capacity:]
		}
	}
}
