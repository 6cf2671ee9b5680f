package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"droscher.com/BreweryDB/pkg/repository"
)

type UserTestSuite struct {
	RepositorySuite
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}

func (suite *UserTestSuite) TestGetUserFromEmail_FindsUser() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT $2`)).
		WithArgs("admin@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash"}).
			AddRow(1, "admin", "admin@example.com", "hash"))

	user, err := suite.repository.GetUserFromEmail(context.Background(), "admin@example.com")

	suite.Require().NoError(err)
	suite.Equal("admin", user.Username)
	suite.Equal("hash", user.PasswordHash)
}

func (suite *UserTestSuite) TestGetUserFromEmail_ReturnsNotFound() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := suite.repository.GetUserFromEmail(context.Background(), "nobody@example.com")

	suite.Require().ErrorIs(err, repository.ErrUserNotFound)
	suite.Nil(user)
}

func (suite *UserTestSuite) TestAddUser_AddsUser() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users" ("created_at","updated_at","deleted_at","uuid","username","email","password_hash") VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING "id"`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), nil, sqlmock.AnyArg(), "admin", "admin@example.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(1)))
	suite.mock.ExpectCommit()

	user, err := suite.repository.AddUser(context.Background(), "admin", "admin@example.com", "hash")

	suite.Require().NoError(err)
	suite.Equal(uint(1), user.ID)
	suite.NotEmpty(user.UUID.String())
}
