package auth

import "fmt"

// InvalidCredentialsError covers both unknown accounts and wrong passwords,
// deliberately indistinguishable to the caller.
type InvalidCredentialsError struct{}

func (e InvalidCredentialsError) Error() string {
	return "invalid email or password"
}

// DuplicateEmailError signals that the email is already registered.
type DuplicateEmailError struct {
	Email string
}

func (e DuplicateEmailError) Error() string {
	return fmt.Sprintf("an account with email %s already exists", e.Email)
}
