package repositories

import (
	"testing"

	"console-bank/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	repo UserRepositoryInterface
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (s *UserRepositoryTestSuite) SetupTest() {
	s.repo = NewUserRepository()
}

func (s *UserRepositoryTestSuite) newUser(username string) *models.User {
	user, err := models.NewUser(username, "hash", models.SystemClock{})
	s.Require().NoError(err)
	return user
}

func (s *UserRepositoryTestSuite) TestCreate_Success() {
	user := s.newUser(gofakeit.Username())

	s.NoError(s.repo.Create(user))
	s.True(s.repo.ExistsByUsername(user.Username))
	s.Equal(1, s.repo.Count())
}

func (s *UserRepositoryTestSuite) TestCreate_Nil() {
	s.Error(s.repo.Create(nil))
	s.Zero(s.repo.Count())
}

func (s *UserRepositoryTestSuite) TestCreate_Duplicate() {
	original := s.newUser("alice")
	s.Require().NoError(s.repo.Create(original))

	err := s.repo.Create(s.newUser("alice"))
	s.ErrorIs(err, ErrUserAlreadyExists)

	stored, err := s.repo.GetByUsername("alice")
	s.Require().NoError(err)
	s.Same(original, stored)
	s.Equal(1, s.repo.Count())
}

func (s *UserRepositoryTestSuite) TestGetByUsername_ReturnsSameUser() {
	user := s.newUser("bob")
	s.Require().NoError(s.repo.Create(user))

	first, err := s.repo.GetByUsername("bob")
	s.Require().NoError(err)
	second, err := s.repo.GetByUsername("bob")
	s.Require().NoError(err)

	s.Same(user, first)
	s.Same(first, second)
}

func (s *UserRepositoryTestSuite) TestGetByUsername_NotFound() {
	user, err := s.repo.GetByUsername("nobody")
	s.ErrorIs(err, ErrUserNotFound)
	s.Nil(user)
	s.False(s.repo.ExistsByUsername("nobody"))
}

func (s *UserRepositoryTestSuite) TestGetByUsername_CaseSensitive() {
	s.Require().NoError(s.repo.Create(s.newUser("Carol")))

	_, err := s.repo.GetByUsername("carol")
	s.ErrorIs(err, ErrUserNotFound)
}
