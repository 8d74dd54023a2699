package services

import "errors"

var (
	ErrSignInFailed     = errors.New("sign-in failed")
	ErrSignInInProgress = errors.New("sign-in already in progress")
	ErrAlreadySignedIn  = errors.New("already signed in")
)
