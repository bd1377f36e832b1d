package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrInvalidToken           = errors.New("invalid or missing token")
)
