package service

import (
	"context"
	"fmt"
	"time"

	"github.com/arthverse/finance-service/internal/models"
	"github.com/arthverse/finance-service/internal/repository"
	"github.com/arthverse/finance-service/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new user with a generated client ID and hashed password
func (s *Service) Register(req *models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if _, err := s.repo.FindUserByEmail(req.Email); err == nil {
		return nil, fmt.Errorf("email already registered")
	}

	clientID, err := utils.GenerateClientID(req.Name, req.DateOfBirth, s.repo.ClientIDExists)
	if err != nil {
		return nil, fmt.Errorf("failed to generate client ID: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ClientID:           clientID,
		Email:              req.Email,
		Name:               req.Name,
		MobileNumber:       req.MobileNumber,
		DateOfBirth:        req.DateOfBirth,
		Age:                req.Age,
		City:               req.City,
		MaritalStatus:      req.MaritalStatus,
		NoOfDependents:     req.NoOfDependents,
		DataPrivacyConsent: req.DataPrivacyConsent,
		MonthlyIncome:      req.MonthlyIncome,
		PasswordHash:       string(hashedPassword),
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s (%s)", user.Email, user.ClientID)
	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login authenticates by client ID and returns a JWT token
func (s *Service) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.repo.FindUserByClientID(req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Infof("User logged in: %s", user.ClientID)
	return &models.AuthResponse{Token: token, User: user}, nil
}

// CurrentUser returns the authenticated user's record
func (s *Service) CurrentUser(ctx context.Context) (*models.User, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.FindUserByID(userID)
	if err == repository.ErrNotFound {
		return nil, fmt.Errorf("user not found")
	}
	return user, err
}

const tokenLifetime = 7 * 24 * time.Hour

func (s *Service) issueToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}
