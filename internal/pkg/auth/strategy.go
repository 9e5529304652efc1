package auth

import "time"

type Strategy interface {
	IssueToken(userID string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL      time.Duration
	Issuer   string
	Audience string
	Now      func() time.Time
}
