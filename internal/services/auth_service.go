package services

import (
	"errors"

	"circular/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadCreds = errors.New("invalid username or password")

type AuthService struct {
	Creds *repos.CredentialRepo
}

// VerifyLogin checks the supplied password against the single stored
// credential and on success binds the session.
func (s *AuthService) VerifyLogin(sid, username, password string) error {
	c, err := s.Creds.Get()
	if err != nil || c.Username != username {
		return ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(c.Hash), []byte(password)) != nil {
		return ErrBadCreds
	}
	return s.Creds.BindSession(sid, c.Username)
}

func (s *AuthService) Logout(sid string) error {
	return s.Creds.UnbindSession(sid)
}

// SessionActive reports whether a sid is bound to the logged-in credential.
func (s *AuthService) SessionActive(sid string) bool {
	_, err := s.Creds.SessionUser(sid)
	return err == nil
}

// Rotate replaces the stored credential with a fresh username/password pair.
func (s *AuthService) Rotate(username, password string) error {
	h, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	return s.Creds.Rotate(username, string(h))
}
