package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/el-rastro/cmd/config"
	"github.com/muhammadheryan/el-rastro/constant"
	"github.com/muhammadheryan/el-rastro/model"
	authrepo "github.com/muhammadheryan/el-rastro/repository/auth"
	photorepo "github.com/muhammadheryan/el-rastro/repository/photo"
	ratingrepo "github.com/muhammadheryan/el-rastro/repository/rating"
	redisrepo "github.com/muhammadheryan/el-rastro/repository/redis"
	"github.com/muhammadheryan/el-rastro/repository/rest"
	userrepo "github.com/muhammadheryan/el-rastro/repository/user"
	"github.com/muhammadheryan/el-rastro/utils/errors"
	"github.com/muhammadheryan/el-rastro/utils/fanout"
	"github.com/muhammadheryan/el-rastro/utils/logger"
	validatorx "github.com/muhammadheryan/el-rastro/utils/validator"
	"go.uber.org/zap"
)

type UserApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ResolveSession(ctx context.Context, sessionID string) (*model.Session, error)
	Logout(ctx context.Context, session *model.Session) error
	GetProfile(ctx context.Context, session *model.Session, userID string) (*model.ProfileView, error)
	UpdateUsername(ctx context.Context, session *model.Session, req *model.UpdateUsernameRequest) (*model.User, error)
	UpdateLocation(ctx context.Context, session *model.Session, req *model.UpdateLocationRequest) (*model.User, error)
}

type UserAppImpl struct {
	config     *config.Config
	authRepo   authrepo.AuthRepository
	userRepo   userrepo.UserRepository
	photoRepo  photorepo.PhotoRepository
	ratingRepo ratingrepo.RatingRepository
	redisRepo  redisrepo.Repository
}

func NewUserApp(
	config *config.Config,
	authRepo authrepo.AuthRepository,
	userRepo userrepo.UserRepository,
	photoRepo photorepo.PhotoRepository,
	ratingRepo ratingrepo.RatingRepository,
	redisRepo redisrepo.Repository,
) UserApp {
	return &UserAppImpl{
		config:     config,
		authRepo:   authRepo,
		userRepo:   userRepo,
		photoRepo:  photoRepo,
		ratingRepo: ratingRepo,
		redisRepo:  redisRepo,
	}
}

// Login exchanges the identity for a backend token and opens a session holding it.
// The session lives until the token expires, capped by the configured session time.
func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	exchanged, err := s.authRepo.ExchangeToken(ctx, req)
	if err != nil {
		logger.Error("[Login] err authRepo.ExchangeToken", zap.String("error", err.Error()))
		return nil, rest.AsCustomError(err)
	}

	claims, err := s.parseToken(exchanged.JWT)
	if err != nil {
		logger.Error("[Login] err parseToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	now := time.Now()
	expiresAt := now.Add(s.config.Auth.SessionExpTime)
	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(expiresAt) {
		expiresAt = claims.ExpiresAt.Time
	}
	if !expiresAt.After(now) {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	userID := exchanged.ID
	if userID == "" {
		userID = claims.Subject
	}

	session := &model.Session{
		ID:          uuid.NewString(),
		AccessToken: exchanged.JWT,
		UserID:      userID,
		Username:    req.Username,
		Email:       req.Email,
		ExpiresAt:   expiresAt,
	}
	err = s.redisRepo.SetSession(ctx, session, expiresAt.Sub(now))
	if err != nil {
		logger.Error("[Login] err redisRepo.SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		SessionID: session.ID,
		UserID:    session.UserID,
		Username:  model.DisplayName(session.Username),
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// parseToken reads the registered claims of a backend token. The signature is checked only
// when a secret is configured; the expiry is always checked.
func (s *UserAppImpl) parseToken(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if s.config.Auth.JWTSecret == "" {
		if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
			return nil, fmt.Errorf("invalid token: %w", err)
		}
		if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
			return nil, fmt.Errorf("token expired")
		}
		return claims, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// ResolveSession loads a session by id. Missing or expired sessions are unauthenticated.
func (s *UserAppImpl) ResolveSession(ctx context.Context, sessionID string) (*model.Session, error) {
	if sessionID == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	session, err := s.redisRepo.GetSession(ctx, sessionID)
	if err != nil {
		logger.Error("[ResolveSession] err redisRepo.GetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if session == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	if !session.ExpiresAt.IsZero() && session.ExpiresAt.Before(time.Now()) {
		if err := s.redisRepo.DeleteSession(ctx, sessionID); err != nil {
			logger.Warn("[ResolveSession] err redisRepo.DeleteSession", zap.String("error", err.Error()))
		}
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	return session, nil
}

func (s *UserAppImpl) Logout(ctx context.Context, session *model.Session) error {
	if session == nil || session.ID == "" {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	if err := s.redisRepo.DeleteSession(ctx, session.ID); err != nil {
		logger.Error("[Logout] err redisRepo.DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// GetProfile assembles a user's public profile. Every part falls back independently.
func (s *UserAppImpl) GetProfile(ctx context.Context, session *model.Session, userID string) (*model.ProfileView, error) {
	if userID == "" {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	var (
		user     *model.User
		photoURL string
		ratings  []model.Rating
	)
	fanout.Group(ctx,
		func(ctx context.Context) {
			user = fanout.Settle(ctx, "profile user", func(ctx context.Context) (*model.User, error) {
				return s.userRepo.Get(ctx, userID)
			}, &model.User{ID: userID, Username: constant.UserNotFoundName})
		},
		func(ctx context.Context) {
			photoURL = fanout.Settle(ctx, "profile photo", func(ctx context.Context) (string, error) {
				return s.photoRepo.GetURL(ctx, userID)
			}, constant.PlaceholderPhotoURL)
		},
		func(ctx context.Context) {
			ratings = fanout.Settle(ctx, "profile ratings", func(ctx context.Context) ([]model.Rating, error) {
				return s.ratingRepo.ListForUser(ctx, userID)
			}, []model.Rating{})
		},
	)
	if ratings == nil {
		ratings = []model.Rating{}
	}

	return &model.ProfileView{
		ID:            userID,
		Name:          user.DisplayName(),
		PhotoURL:      photoURL,
		Ratings:       ratings,
		AverageRating: model.AverageRating(ratings),
		IsSelf:        session.ViewerID() == userID,
	}, nil
}

func (s *UserAppImpl) UpdateUsername(ctx context.Context, session *model.Session, req *model.UpdateUsernameRequest) (*model.User, error) {
	viewerID := session.ViewerID()
	if viewerID == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || validatorx.ValidateStruct(&model.UpdateUsernameRequest{Username: username}) != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	err := s.userRepo.Update(ctx, session, viewerID, &model.UserUpdate{Username: username})
	if err != nil {
		logger.Error("[UpdateUsername] err userRepo.Update", zap.String("error", err.Error()))
		return nil, rest.AsCustomError(err)
	}

	s.refreshSession(ctx, "UpdateUsername", session, username)
	return &model.User{ID: viewerID, Username: username}, nil
}

func (s *UserAppImpl) UpdateLocation(ctx context.Context, session *model.Session, req *model.UpdateLocationRequest) (*model.User, error) {
	viewerID := session.ViewerID()
	if viewerID == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	location := &model.Location{Lat: req.Lat, Lon: req.Lon}
	err := s.userRepo.Update(ctx, session, viewerID, &model.UserUpdate{Location: location})
	if err != nil {
		logger.Error("[UpdateLocation] err userRepo.Update", zap.String("error", err.Error()))
		return nil, rest.AsCustomError(err)
	}

	return &model.User{ID: viewerID, Location: location}, nil
}

// refreshSession stores the renamed session for its remaining lifetime. Failures are only logged.
func (s *UserAppImpl) refreshSession(ctx context.Context, method string, session *model.Session, username string) {
	if session.ID == "" {
		return
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return
	}

	updated := *session
	updated.Username = username
	if err := s.redisRepo.SetSession(ctx, &updated, ttl); err != nil {
		logger.Error("["+method+"] err redisRepo.SetSession", zap.String("error", err.Error()))
	}
}
