package service

import (
	"fmt"


	"github.com/ashchan-dev/ashchan/internal/domain"
	"github.com/ashchan-dev/ashchan/internal/errors"
	"github.com/ashchan-dev/ashchan/internal/jwt"
	"github.com/ashchan-dev/ashchan/internal/utils"
)

const (
	minPasswordLen = 16
	userIdLen      = 16
)

type AuthService interface {
	Register(password string) (domain.User, error)
	Login(userId, password string) (string, error)
	// Verify is the sole authorization primitive: it checks the token
	// signature and expiration, then re-reads the user so a status
	// change revokes every outstanding token immediately.
	Verify(tokenStr string) (string, error)
	User(userId string) (domain.User, error)
	ChangeUserType(actor, targetUserId string, newType domain.UserType) error
	ChangeUserStatus(actor, targetUserId string, newStatus domain.UserStatus) error
}

type Auth struct {
	storage AuthStorage
	jwt     jwt.JwtService
	audit   LogStorage
}

type AuthStorage interface {
	SaveUser(user domain.User) error
	UserById(userId string) (domain.User, error)
	UpdateUserType(userId string, newType domain.UserType) error
	UpdateUserStatus(userId string, newStatus domain.UserStatus) error
}

func NewAuth(storage AuthStorage, jwtService jwt.JwtService, audit LogStorage) *Auth {
	return &Auth{storage: storage, jwt: jwtService, audit: audit}
}

func (a *Auth) Register(password string) (domain.User, error) {
	if len(password) < minPasswordLen {
		return domain.User{}, errors.Validation(fmt.Sprintf("Password is too short (at least %d characters)", minPasswordLen))
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}
	// Defensive self-check before anything is persisted.
	ok, err := utils.VerifyPassword(hash, password)
	if err != nil || !ok {
		return domain.User{}, fmt.Errorf("password hash failed round-trip verification: %w", err)
	}

	userId, err := a.freshUserId()
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		Id:           userId,
		RegisteredAt: timeNow(),
		PasswordHash: hash,
		Type:         domain.TypeNormal,
		Status:       domain.StatusNormal,
	}
	if err := a.storage.SaveUser(user); err != nil {
		return domain.User{}, err
	}

	writeAudit(a.audit, fmt.Sprintf("%s joined the network...", user.Id), nil, nil)
	return user, nil
}

// freshUserId generates ids until one is unused. Collisions over a
// 36^16 space are vanishingly rare, so the loop almost never repeats.
func (a *Auth) freshUserId() (string, error) {
	for {
		userId, err := utils.GenerateUserId(userIdLen)
		if err != nil {
			return "", err
		}
		_, err = a.storage.UserById(userId)
		if errors.IsNotFound(err) {
			return userId, nil
		}
		if err != nil {
			return "", err
		}
	}
}

func (a *Auth) Login(userId, password string) (string, error) {
	user, err := a.storage.UserById(userId)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", errors.Unauthorized("Invalid credentials")
		}
		return "", err
	}

	ok, err := utils.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.Unauthorized("Invalid credentials")
	}

	if user.Status.Blocked() {
		return "", errors.Forbidden("Not allowed")
	}

	return a.jwt.NewToken(user.Id)
}

func (a *Auth) Verify(tokenStr string) (string, error) {
	token, err := a.jwt.DecodeToken(tokenStr)
	if err != nil {
		return "", err
	}
	userId, err := jwt.UserId(token)
	if err != nil {
		return "", err
	}

	user, err := a.storage.UserById(userId)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", errors.Unauthorized("Invalid token")
		}
		return "", err
	}
	if user.Status.Blocked() {
		return "", errors.Unauthorized("Invalid token")
	}

	return user.Id, nil
}

func (a *Auth) User(userId string) (domain.User, error) {
	return a.storage.UserById(userId)
}

func (a *Auth) ChangeUserType(actor, targetUserId string, newType domain.UserType) error {
	if _, err := requireType(a.storage, actor, domain.TypeAdmin); err != nil {
		return err
	}
	// No self-service promotion path to Admin.
	if newType == domain.TypeAdmin {
		return errors.Forbidden("Not allowed")
	}
	return a.storage.UpdateUserType(targetUserId, newType)
}

func (a *Auth) ChangeUserStatus(actor, targetUserId string, newStatus domain.UserStatus) error {
	actorUser, err := requireType(a.storage, actor, domain.TypeAdmin, domain.TypeModerator)
	if err != nil {
		return err
	}

	target, err := a.storage.UserById(targetUserId)
	if err != nil {
		return err
	}
	if actorUser.Type == domain.TypeModerator && target.Type == domain.TypeAdmin {
		return errors.Forbidden("Not allowed")
	}

	return a.storage.UpdateUserStatus(targetUserId, newStatus)
}
