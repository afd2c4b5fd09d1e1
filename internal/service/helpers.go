package service

import (
	"time"

	"github.com/ashchan-dev/ashchan/internal/domain"
	"github.com/ashchan-dev/ashchan/internal/errors"
	"github.com/ashchan-dev/ashchan/internal/logger"
)

// timeNow is swapped in tests.
var timeNow = func() time.Time { return time.Now().UTC() }

type UserReader interface {
	UserById(userId string) (domain.User, error)
}

type LogStorage interface {
	SaveLog(message string, link, linkTitle *string) (domain.Log, error)
}

// requireType resolves the actor and checks its type against the
// allowed set. A missing actor reads as an authorization failure, not
// a lookup failure.
func requireType(users UserReader, actor string, allowed ...domain.UserType) (domain.User, error) {
	user, err := users.UserById(actor)
	if err != nil {
		if errors.IsNotFound(err) {
			return domain.User{}, errors.Forbidden("Not allowed")
		}
		return domain.User{}, err
	}
	for _, t := range allowed {
		if user.Type == t {
			return user, nil
		}
	}
	return domain.User{}, errors.Forbidden("Not allowed")
}

// writeAudit appends a best-effort audit record: a failure here never
// rolls back the content mutation it annotates.
func writeAudit(audit LogStorage, message string, link, linkTitle *string) {
	if audit == nil {
		return
	}
	if _, err := audit.SaveLog(message, link, linkTitle); err != nil {
		logger.Log.Warn("audit log write failed", "message", message, "error", err)
	}
}
