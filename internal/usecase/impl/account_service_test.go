package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	mockUsecase "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	repos        *txRepos
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	roles        *mockUsecase.MockRoleUsecase
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	roles := mockUsecase.NewMockRoleUsecase(t)

	svc := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		Hasher:       hasher,
		TokenService: tokenService,
		Roles:        roles,
		Logger:       newDiscardLogger(),
	})
	svc.(*accountService).now = func() time.Time { return fixedNow }

	return accountServiceFixtures{
		service:      svc,
		txManager:    txManager,
		repos:        newTxRepos(t),
		hasher:       hasher,
		tokenService: tokenService,
		roles:        roles,
	}
}

func (fx accountServiceFixtures) expectSessionIssued(t *testing.T, userID uuid.UUID) {
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)
	fx.repos.tokens.EXPECT().
		CreateRefreshToken(mock.Anything, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == userID &&
				token.TokenHash == "refresh-hash" &&
				token.ExpiresAt.Equal(fixedNow.Add(24*time.Hour))
		})).
		Return(nil)
}

func TestAccountService_SignUp_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.SignUpInput{
		Email:    "  Alice@Example.COM ",
		Password: "Password123!",
		Name:     " Alice ",
	}

	fx.repos.expectTx(t, fx.txManager)
	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.repos.auths.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "alice@example.com").
		Return(nil, repository.ErrAuthNotFound)
	fx.repos.users.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)
	fx.repos.auths.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.UserID == userID && auth.PasswordHash == "hashed_password" && auth.ProviderUserID == "alice@example.com"
		})).
		Return(nil)
	fx.repos.roles.EXPECT().
		Upsert(ctx, &entity.RoleAssignment{UserID: userID, Role: entity.RoleCustomer}).
		Return(nil)
	fx.expectSessionIssued(t, userID)

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", output.User.Email)
	assert.Equal(t, "Alice", output.User.Name)
	assert.Equal(t, entity.RoleCustomer, output.Role)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestAccountService_SignUp_ShopOwner(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.SignUpInput{Email: "owner@example.com", Password: "Password123!", Role: entity.RoleShopOwner}

	fx.repos.expectTx(t, fx.txManager)
	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.repos.auths.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).Return(nil, repository.ErrAuthNotFound)
	fx.repos.users.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) { user.ID = userID }).
		Return(nil)
	fx.repos.auths.EXPECT().CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).Return(nil)
	fx.repos.roles.EXPECT().
		Upsert(ctx, &entity.RoleAssignment{UserID: userID, Role: entity.RoleShopOwner}).
		Return(nil)
	fx.expectSessionIssued(t, userID)

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleShopOwner, output.Role)
}

func TestAccountService_SignUp_AdminRoleNotAssignable(t *testing.T) {
	fx := createTestAccountService(t)

	output, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{
		Email:    "mallory@example.com",
		Password: "Password123!",
		Role:     entity.RoleAdmin,
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRoleNotAssignable))
}

func TestAccountService_SignUp_WeakPassword(t *testing.T) {
	fx := createTestAccountService(t)

	fx.hasher.EXPECT().ValidatePasswordStrength("short").Return(domainerrors.ErrPasswordTooWeak.WrapMessage("too short"))

	output, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{Email: "a@example.com", Password: "short"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooWeak))
}

func TestAccountService_SignUp_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{Email: "taken@example.com", Password: "Password123!"}

	fx.repos.expectTx(t, fx.txManager)
	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.repos.auths.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: uuid.New()}, nil)

	output, err := fx.service.SignUp(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAccountService_SignIn_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "owner@example.com"}
	credential := &entity.Authentication{UserID: user.ID, PasswordHash: "hashed", Provider: entity.ProviderTypeEmail}

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.auths.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "owner@example.com").Return(credential, nil)
	fx.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
	fx.roles.EXPECT().ResolveRole(ctx, user.ID).Return(entity.RoleShopOwner)
	fx.expectSessionIssued(t, user.ID)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "OWNER@example.com", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, entity.RoleShopOwner, output.Role)
}

func TestAccountService_SignIn_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx accountServiceFixtures, ctx context.Context)
	}{
		{
			name: "unknown email",
			setup: func(fx accountServiceFixtures, ctx context.Context) {
				fx.repos.auths.EXPECT().
					FindAuthentication(ctx, entity.ProviderTypeEmail, "nobody@example.com").
					Return(nil, repository.ErrAuthNotFound)
			},
		},
		{
			name: "wrong password",
			setup: func(fx accountServiceFixtures, ctx context.Context) {
				userID := uuid.New()
				fx.repos.auths.EXPECT().
					FindAuthentication(ctx, entity.ProviderTypeEmail, "nobody@example.com").
					Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
				fx.repos.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
				fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)
			ctx := context.Background()
			fx.repos.expectTx(t, fx.txManager)
			tt.setup(fx, ctx)

			output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "nobody@example.com", Password: "wrong"})

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
		})
	}
}

func TestAccountService_Refresh(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		stored  *entity.RefreshToken
		findErr error
		wantErr bool
	}{
		{
			name:   "valid token",
			stored: &entity.RefreshToken{UserID: userID, ExpiresAt: fixedNow.Add(time.Hour)},
		},
		{
			name:    "expired token",
			stored:  &entity.RefreshToken{UserID: userID, ExpiresAt: fixedNow.Add(-time.Minute)},
			wantErr: true,
		},
		{
			name:    "revoked token",
			findErr: repository.ErrRefreshTokenNotFound,
			wantErr: true,
		},
		{
			name:    "token of another account",
			stored:  &entity.RefreshToken{UserID: uuid.New(), ExpiresAt: fixedNow.Add(time.Hour)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)
			ctx := context.Background()

			fx.repos.expectTx(t, fx.txManager)
			fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(&service.Claims{UserID: userID}, nil)
			fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
			fx.repos.tokens.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(tt.stored, tt.findErr)
			if !tt.wantErr {
				fx.tokenService.EXPECT().GenerateAccessToken(userID).Return("new-access-token", nil)
			}

			accessToken, err := fx.service.Refresh(ctx, "refresh-token")

			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
				assert.Empty(t, accessToken)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "new-access-token", accessToken)
		})
	}
}

func TestAccountService_Refresh_MalformedToken(t *testing.T) {
	fx := createTestAccountService(t)

	fx.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("token is malformed"))

	accessToken, err := fx.service.Refresh(context.Background(), "garbage")

	assert.Empty(t, accessToken)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAccountService_SignOut_UnknownTokenIsNotAnError(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	fx.repos.expectTx(t, fx.txManager)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.repos.tokens.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-hash").Return(repository.ErrRefreshTokenNotFound)

	assert.NoError(t, fx.service.SignOut(ctx, "refresh-token"))
}

func TestAccountService_Authenticate(t *testing.T) {
	fx := createTestAccountService(t)

	userID := uuid.New()
	fx.tokenService.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID}, nil)
	fx.tokenService.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("signature is invalid"))

	session, err := fx.service.Authenticate(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)

	session, err = fx.service.Authenticate(context.Background(), "bad")
	assert.Nil(t, session)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAccountService_GetProfile(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "admin@example.com"}

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.roles.EXPECT().ResolveRole(ctx, user.ID).Return(entity.RoleAdmin)

	profile, err := fx.service.GetProfile(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, profile.User)
	assert.Equal(t, entity.RoleAdmin, profile.Role)
}

func TestAccountService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.users.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	profile, err := fx.service.GetProfile(ctx, userID)

	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_UpdateProfile(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Old", Phone: "111"}
	name := "  New Name "

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.repos.users.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Name == "New Name" && u.Phone == "111"
		})).
		Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
}
