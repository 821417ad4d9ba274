package domain

import "errors"

// 业务失败分类。校验/鉴权失败只产生提示消息，不改状态。
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrInvalidEmail       = errors.New("please enter a valid email address")
	ErrInvalidPhone       = errors.New("please enter a valid nigerian phone number")
	ErrNotLandlord        = errors.New("only landlords can create properties")
	ErrNotFound           = errors.New("not found")
)
