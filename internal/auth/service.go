// Package auth はデモ用の形式チェック認証とセッション管理を提供する。
//
// 実在する資格情報ストアは存在しない。入力が方式ごとの形式チェックを
// 通過すればログイン成功として扱い、患者役割のセッションユーザーを
// 作成してインストールする。OTPも実際には発行・照合されない。
// 本物のIdPやSMSゲートウェイとの連携はスコープ外。
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/hitoshi/saathi/internal/model"
)

// sessionUserID はデモデータセットにおけるセッションユーザーのID。
// 単一患者データセットでは患者IDと同一視される。
const sessionUserID = "user1"

// demoPhone はデモユーザーの既定の電話番号。
const demoPhone = "+91-9876543210"

// UserInstaller はセッションユーザーのインストールに必要なストア操作。
// store.Storeの部分集合として定義する。
type UserInstaller interface {
	SetCurrentUser(user *model.User)
	Language() model.Language
}

// Recorder は認証メトリクスの記録インターフェース。
type Recorder interface {
	RecordAuthAttempt(method string, success bool)
}

// nopRecorder はメトリクス未設定時のフォールバック。
type nopRecorder struct{}

func (nopRecorder) RecordAuthAttempt(method string, success bool) {}

// ServiceConfig は認証サービスの設定。
type ServiceConfig struct {
	SessionMaxAge  int           // セッション有効期間（秒）
	SimulatedDelay time.Duration // ネットワーク往復を模擬する固定遅延
}

// Service は認証に関するビジネスロジックを提供する。
type Service struct {
	users    UserInstaller
	sessions *SessionStore
	metrics  Recorder
	config   ServiceConfig
}

// NewService はServiceを生成する。metricsにnilを渡すと記録を行わない。
func NewService(users UserInstaller, sessions *SessionStore, metrics Recorder, config ServiceConfig) *Service {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Service{
		users:    users,
		sessions: sessions,
		metrics:  metrics,
		config:   config,
	}
}

// Authenticate は形式チェック認証を実行する。
// 固定遅延の後、方式ごとの形式チェックを行う:
//   - email: credentialが"@"を含むこと
//   - mobile: credentialが10文字以上であること
//   - username: credentialとpasswordがともに非空であること
//
// 成功時は患者役割のセッションユーザーをストアにインストールし、
// セッションを発行してtrueを返す。失敗時は状態を変更せずfalseを返す。
// 形式チェックの失敗はエラーではなく、booleanのみで通知される。
func (s *Service) Authenticate(ctx context.Context, method model.AuthMethod, credential, password string) (*model.Session, bool) {
	s.simulateRoundTrip()

	user, ok := s.checkCredential(method, credential, password)
	s.metrics.RecordAuthAttempt(string(method), ok)
	if !ok {
		slog.Warn("authentication failed",
			slog.String("method", string(method)),
		)
		return nil, false
	}

	s.users.SetCurrentUser(user)
	session := s.createSession(ctx, user.ID)

	slog.Info("user authenticated",
		slog.String("method", string(method)),
		slog.String("user_id", user.ID),
	)
	return session, true
}

// Register はOTPによる新規登録を模擬する。
// 固定遅延の後、mobileが10文字以上かつotpがちょうど6文字であれば成功とし、
// 新しいセッションユーザーをインストールする。OTPの照合は行わない
// （任意の6文字が通過する）。
func (s *Service) Register(ctx context.Context, mobile, otp string) (*model.Session, bool) {
	s.simulateRoundTrip()

	ok := len(mobile) >= 10 && len(otp) == 6
	s.metrics.RecordAuthAttempt("register", ok)
	if !ok {
		slog.Warn("registration failed")
		return nil, false
	}

	user := &model.User{
		ID:       sessionUserID,
		Name:     "New User",
		Phone:    mobile,
		Role:     model.RolePatient,
		Language: s.users.Language(),
	}
	s.users.SetCurrentUser(user)
	session := s.createSession(ctx, user.ID)

	slog.Info("user registered", slog.String("user_id", user.ID))
	return session, true
}

// Logout はセッションを破棄し、セッションユーザーを外す。
func (s *Service) Logout(ctx context.Context, sessionID string) {
	if sessionID != "" {
		// メモリ上の削除は失敗しない
		_ = s.sessions.DeleteByID(ctx, sessionID)
	}
	s.users.SetCurrentUser(nil)

	slog.Info("user logged out")
}

// checkCredential は方式ごとの形式チェックを行い、
// 成功時にインストールするセッションユーザーを組み立てる。
func (s *Service) checkCredential(method model.AuthMethod, credential, password string) (*model.User, bool) {
	base := model.User{
		ID:       sessionUserID,
		Name:     "Demo User",
		Phone:    demoPhone,
		Role:     model.RolePatient,
		Language: s.users.Language(),
	}

	switch method {
	case model.AuthMethodEmail:
		if !strings.Contains(credential, "@") {
			return nil, false
		}
		return &base, true

	case model.AuthMethodMobile:
		if len(credential) < 10 {
			return nil, false
		}
		base.Phone = credential
		return &base, true

	case model.AuthMethodUsername:
		if credential == "" || password == "" {
			return nil, false
		}
		base.Name = credential
		return &base, true
	}

	return nil, false
}

// simulateRoundTrip は外部認証サービスへの往復を模擬する固定遅延。
// ロック外で待機し、他の操作をブロックしない。
func (s *Service) simulateRoundTrip() {
	if s.config.SimulatedDelay > 0 {
		time.Sleep(s.config.SimulatedDelay)
	}
}

// createSession はセッションを作成し保存する。
func (s *Service) createSession(ctx context.Context, userID string) *model.Session {
	session := &model.Session{
		ID:        generateSessionID(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Duration(s.config.SessionMaxAge) * time.Second),
		CreatedAt: time.Now(),
	}

	// メモリ上の保存は失敗しない
	_ = s.sessions.Create(ctx, session)
	return session
}

// generateSessionID は暗号的に安全なセッションIDを生成する。
func generateSessionID() string {
	b := make([]byte, 32)
	// crypto/rand.Readはエラーを返さない（Go 1.24以降保証）
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
