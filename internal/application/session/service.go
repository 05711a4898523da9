// Package session 管理匿名会话的签发与持久化
package session

import (
	"context"
	"time"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/repository"
	apperrors "github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/errors"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/logger"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/metrics"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/utils"
)

// Service 会话应用服务：凭令牌找回会话，找不到则新建
type Service struct {
	repo repository.SessionRepository
	jwt  *utils.JWTManager
	ttl  time.Duration
}

func NewService(repo repository.SessionRepository, jwt *utils.JWTManager, ttl time.Duration) *Service {
	return &Service{repo: repo, jwt: jwt, ttl: ttl}
}

// Resolve 用令牌找回会话。令牌缺失、无效、过期或会话已被
// 存储端淘汰时，都退回一个全新的匿名会话并签发新令牌。
// 返回值 token 非空表示调用方需要把新令牌带回给客户端。
func (s *Service) Resolve(ctx context.Context, token string) (*entity.Session, string, error) {
	if token != "" {
		claims, err := s.jwt.ParseToken(token)
		if err == nil {
			sess, err := s.repo.Get(ctx, claims.SessionID)
			if err != nil {
				return nil, "", err
			}
			if sess != nil {
				return sess, "", nil
			}
			// 令牌有效但会话已过期淘汰，视作全新来访
		}
	}
	return s.create(ctx)
}

func (s *Service) create(ctx context.Context) (*entity.Session, string, error) {
	sess := entity.NewSession()
	if err := s.repo.Put(ctx, sess); err != nil {
		return nil, "", err
	}
	token, err := s.jwt.GenerateSessionToken(sess.ID, s.ttl)
	if err != nil {
		return nil, "", apperrors.ErrInternalError.WithError(err)
	}
	metrics.SessionsCreatedTotal.Inc()
	logger.Debug(ctx, "session created", "session_id", sess.ID)
	return sess, token, nil
}

// Persist 回写会话并刷新过期时间
func (s *Service) Persist(ctx context.Context, sess *entity.Session) error {
	sess.Touch()
	return s.repo.Put(ctx, sess)
}
