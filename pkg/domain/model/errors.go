package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for dashboard operations
var (
	ErrInvalidBorough = goerr.New("invalid borough")
	ErrInvalidSpecies = goerr.New("invalid species")
	ErrInvalidView    = goerr.New("invalid chart view")
	ErrUpstream       = goerr.New("tree census query failed")
)
