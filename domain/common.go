package domain

import (
	"errors"
	"os"
)

const (
	RoleIndividual = "Individual"
	RoleKitchen    = "Kitchen"
	RoleNgo        = "Ngo"
)

var (
	MesaageUserNotAllowed       = "user not allowed"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)

func ValidPartyKind(kind string) bool {
	return kind == RoleIndividual || kind == RoleKitchen || kind == RoleNgo
}
