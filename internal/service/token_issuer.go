package service

import (
	"time"

	"devfinder/internal/entity"
	"devfinder/internal/utils"
)

type JWTSessionIssuer struct {
	Manager *utils.JWTManager
}

func (j JWTSessionIssuer) IssueSessionToken(user *entity.User) (string, time.Duration, error) {
	if j.Manager == nil {
		return "", 0, utils.ErrInvalidToken
	}
	return j.Manager.IssueSessionToken(user.ID.String(), user.Email, user.Name, string(user.Role))
}
