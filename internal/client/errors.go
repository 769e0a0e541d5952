package client

import "errors"

var (
	ErrNoServicesProvided = errors.New("no client services provided")
	ErrNotSignedIn        = errors.New("not signed in, run `signin` first")
)
