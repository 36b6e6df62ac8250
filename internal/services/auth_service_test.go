package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/xdSharp/Dashly-sub000/internal/middleware"
	"github.com/xdSharp/Dashly-sub000/internal/models"
)

const testSecret = "test-secret"

func TestRegister(t *testing.T) {
	users := new(MockUserStore)
	users.On("FindByEmail", mock.Anything, "owner@shop.test").Return(nil, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		// The password must never be stored in the clear
		return u.Email == "owner@shop.test" && u.PasswordHash != "s3cretpass"
	})).Return(nil)

	businesses := new(MockBusinessStore)
	businesses.On("GetOrCreate", mock.Anything, mock.Anything, "Corner Roastery").
		Return(&models.Business{ID: uuid.New(), Name: "Corner Roastery"}, nil)

	svc := NewAuthService(users, businesses, testSecret)
	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:        "owner@shop.test",
		Password:     "s3cretpass",
		Name:         "Dana",
		BusinessName: "Corner Roastery",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "owner@shop.test", resp.User.Email)
	users.AssertExpectations(t)
	businesses.AssertExpectations(t)
}

func TestRegister_EmailTaken(t *testing.T) {
	users := new(MockUserStore)
	users.On("FindByEmail", mock.Anything, "owner@shop.test").
		Return(&models.User{Email: "owner@shop.test"}, nil)

	svc := NewAuthService(users, new(MockBusinessStore), testSecret)
	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:    "owner@shop.test",
		Password: "s3cretpass",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.DefaultCost)
	require.NoError(t, err)

	userID := uuid.New()
	businessID := uuid.New()

	users := new(MockUserStore)
	users.On("FindByEmail", mock.Anything, "owner@shop.test").Return(&models.User{
		ID:           userID,
		Email:        "owner@shop.test",
		PasswordHash: string(hash),
	}, nil)

	businesses := new(MockBusinessStore)
	businesses.On("GetByOwner", mock.Anything, userID).
		Return(&models.Business{ID: businessID, OwnerID: userID}, nil)

	svc := NewAuthService(users, businesses, testSecret)
	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "owner@shop.test",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	// The issued token carries the identity claims
	token, err := jwt.ParseWithClaims(resp.Token, &middleware.Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(*middleware.Claims)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "owner@shop.test", claims.Email)
	assert.Equal(t, businessID.String(), claims.BusinessID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users := new(MockUserStore)
	users.On("FindByEmail", mock.Anything, "owner@shop.test").Return(&models.User{
		Email:        "owner@shop.test",
		PasswordHash: string(hash),
	}, nil)

	svc := NewAuthService(users, new(MockBusinessStore), testSecret)
	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "owner@shop.test",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserStore)
	users.On("FindByEmail", mock.Anything, "nobody@shop.test").Return(nil, nil)

	svc := NewAuthService(users, new(MockBusinessStore), testSecret)
	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@shop.test",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
