package auth

import (
	"context"
	"sync"
	"time"

	"github.com/hitoshi/saathi/internal/model"
)

// SessionStore はログインセッションのプロセス内ストア。
// 永続化は行わず、プロセス終了とともに全セッションは破棄される。
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session

	now func() time.Time
}

// NewSessionStore は空のSessionStoreを生成する。
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*model.Session),
		now:      time.Now,
	}
}

// Create はセッションを保存する。
func (s *SessionStore) Create(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := *session
	s.sessions[session.ID] = &sess
	return nil
}

// FindByID は指定IDのセッションを返す。
// 見つからない場合および期限切れの場合はnilを返す。
func (s *SessionStore) FindByID(ctx context.Context, id string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	if s.now().After(sess.ExpiresAt) {
		return nil, nil
	}

	out := *sess
	return &out, nil
}

// DeleteByID は指定IDのセッションを削除する。存在しないIDは無視する。
func (s *SessionStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}
