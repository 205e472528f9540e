package console

import "console-bank/internal/models"

// Session holds the single logged-in user of the process
type Session struct {
	user *models.User
}

// Login makes user the active user, replacing any previous one
func (s *Session) Login(user *models.User) {
	s.user = user
}

// Logout clears the session and returns the user that was logged in
func (s *Session) Logout() *models.User {
	user := s.user
	s.user = nil
	return user
}

// User returns the logged-in user, or nil
func (s *Session) User() *models.User {
	return s.user
}

func (s *Session) Active() bool {
	return s.user != nil
}
