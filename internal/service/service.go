// Package service implements the data-access operations behind the API.
// Every operation resolves the caller's session, issues a single repository
// call scoped to that user and returns a domain.Result; failures never
// escape as bare errors.
package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/yusufkecer/jarosmart-backend/internal/auth"
	"github.com/yusufkecer/jarosmart-backend/internal/domain"
)

type base struct {
	logger *zap.Logger
}

func newBase(logger *zap.Logger) base {
	if logger == nil {
		logger = zap.NewNop()
	}
	return base{logger: logger}
}

func (b base) session(ctx context.Context, op string) (auth.Session, error) {
	s, ok := auth.FromContext(ctx)
	if !ok {
		b.logger.Debug("rejected unauthenticated call", zap.String("op", op))
		return auth.Session{}, domain.ErrUnauthenticated
	}
	return s, nil
}

// remote logs err and converts it to a *domain.RemoteError.
func (b base) remote(op string, s auth.Session, err error) error {
	re := toRemoteError(err)
	b.logger.Error("remote request failed",
		zap.String("op", op),
		zap.String("user_id", s.UserID),
		zap.String("code", re.Code),
		zap.Error(err))
	return re
}

func toRemoteError(err error) *domain.RemoteError {
	var re *domain.RemoteError
	if errors.As(err, &re) {
		return re
	}

	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return &domain.RemoteError{
			Code:    strconv.Itoa(int(me.Number)),
			Message: me.Message,
			Cause:   err,
		}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &domain.RemoteError{Code: "timeout", Message: err.Error(), Cause: err}
	case errors.Is(err, context.Canceled):
		return &domain.RemoteError{Code: "canceled", Message: err.Error(), Cause: err}
	}
	return &domain.RemoteError{Message: err.Error(), Cause: err}
}
