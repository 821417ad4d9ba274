package response

import (
	"errors"

	"studentrent/internal/domain"
)

// 业务码直接沿用 HTTP 语义，响应状态永远 200
const (
	CodeOK           = 0
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeServerError  = 500
)

// CodeMsgMap 集中管理 code - msg
var CodeMsgMap = map[int]string{
	CodeOK:           "OK",
	CodeBadRequest:   "Bad Request",
	CodeUnauthorized: "Unauthorized",
	CodeForbidden:    "Forbidden",
	CodeNotFound:     "Not Found",
	CodeServerError:  "Internal Server Error",
}

// CodeFor 业务错误 -> 业务码。消息用错误自带的文案。
func CodeFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return CodeUnauthorized
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidPhone):
		return CodeBadRequest
	case errors.Is(err, domain.ErrNotLandlord):
		return CodeForbidden
	case errors.Is(err, domain.ErrNotFound):
		return CodeNotFound
	default:
		return CodeServerError
	}
}
