package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption      = goerr.New("invalid option")
	ErrConfigRequired     = goerr.New("missing required configuration")
	ErrUnexpectedResponse = goerr.New("unexpected response from forge")
	ErrRepoAlreadyExists  = goerr.New("repository already exists")
	ErrCommandNotFound    = goerr.New("command not found")
	ErrInvalidDestination = goerr.New("invalid destination")
)
