package client

import "context"

type Client interface {
	Register(ctx context.Context, name, email string, password []byte) (string, error)
	Ping(ctx context.Context) error
}
