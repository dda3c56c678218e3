package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TonAldo48/matematch-sub001/internal/logging"
	"github.com/TonAldo48/matematch-sub001/internal/model"
	"github.com/TonAldo48/matematch-sub001/internal/repository"
	repoMocks "github.com/TonAldo48/matematch-sub001/internal/repository/mocks"
	"github.com/TonAldo48/matematch-sub001/internal/storage"
	storeMocks "github.com/TonAldo48/matematch-sub001/internal/storage/mocks"
)

func validInput() OnboardInput {
	return OnboardInput{
		Email:     "Ada@Example.com",
		Name:      " Ada ",
		City:      "Seattle",
		BudgetMin: 800,
		BudgetMax: 1400,
		MoveIn:    "2024-06-01",
		MoveOut:   "2024-08-31",
		Lifestyle: model.Lifestyle{Cleanliness: 4, SleepSchedule: "early"},
	}
}

func TestProfileService_Onboard(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockProfileRepository)
		svc := NewProfileService(mRepo, nil, logging.Discard())

		mRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Profile) bool {
			return p.ID != "" && p.Email == "ada@example.com" && p.Name == "Ada" &&
				p.Onboarded && p.MoveIn != nil && p.MoveIn.Format("2006-01-02") == "2024-06-01"
		})).Return(func(_ context.Context, p *model.Profile) *model.Profile { return p }, nil)

		p, err := svc.Onboard(ctx, validInput())
		require.NoError(t, err)
		assert.True(t, p.Onboarded)
		assert.False(t, p.CreatedAt.IsZero())
		mRepo.AssertExpectations(t)
	})

	t.Run("partial profile is not onboarded", func(t *testing.T) {
		mRepo := new(repoMocks.MockProfileRepository)
		svc := NewProfileService(mRepo, nil, logging.Discard())

		mRepo.On("Create", ctx, mock.Anything).
			Return(func(_ context.Context, p *model.Profile) *model.Profile { return p }, nil)

		p, err := svc.Onboard(ctx, OnboardInput{Email: "a@b.co", Name: "A"})
		require.NoError(t, err)
		assert.False(t, p.Onboarded)
	})

	validation := []struct {
		name   string
		mutate func(*OnboardInput)
	}{
		{"missing name", func(in *OnboardInput) { in.Name = "  " }},
		{"missing email", func(in *OnboardInput) { in.Email = "" }},
		{"bad email", func(in *OnboardInput) { in.Email = "not-an-email" }},
		{"display name email", func(in *OnboardInput) { in.Email = "Ada <ada@example.com>" }},
		{"negative budget", func(in *OnboardInput) { in.BudgetMin = -1 }},
		{"inverted budget", func(in *OnboardInput) { in.BudgetMin = 2000 }},
		{"bad date", func(in *OnboardInput) { in.MoveIn = "06/01/2024" }},
		{"move out before move in", func(in *OnboardInput) { in.MoveOut = "2024-05-01" }},
		{"cleanliness out of range", func(in *OnboardInput) { in.Lifestyle.Cleanliness = 9 }},
		{"long name", func(in *OnboardInput) { in.Name = strings.Repeat("x", 101) }},
	}
	for _, tt := range validation {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockProfileRepository)
			svc := NewProfileService(mRepo, nil, logging.Discard())

			in := validInput()
			tt.mutate(&in)
			_, err := svc.Onboard(ctx, in)
			assert.ErrorIs(t, err, ErrValidation)
			mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("duplicate email", func(t *testing.T) {
		mRepo := new(repoMocks.MockProfileRepository)
		svc := NewProfileService(mRepo, nil, logging.Discard())
		mRepo.On("Create", ctx, mock.Anything).Return(nil, repository.ErrConflict)

		_, err := svc.Onboard(ctx, validInput())
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockProfileRepository)
		svc := NewProfileService(mRepo, nil, logging.Discard())
		mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db down"))

		_, err := svc.Onboard(ctx, validInput())
		assert.EqualError(t, err, "create profile: db down")
	})
}

func TestProfileService_Get(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockProfileRepository)
	svc := NewProfileService(mRepo, nil, logging.Discard())

	_, err := svc.Get(ctx, "")
	assert.ErrorIs(t, err, ErrIDRequired)

	mRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrNotFound)
	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	mRepo.On("FindByID", ctx, "u1").Return(&model.Profile{ID: "u1"}, nil)
	p, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", p.ID)
}

func TestProfileService_Update(t *testing.T) {
	ctx := context.Background()
	moveIn := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	existing := func() *model.Profile {
		return &model.Profile{
			ID: "u1", Email: "ada@example.com", Name: "Ada",
			BudgetMin: 500, BudgetMax: 1000, MoveIn: &moveIn,
		}
	}
	str := func(s string) *string { return &s }

	t.Run("applies patch and marks onboarded", func(t *testing.T) {
		mRepo := new(repoMocks.MockProfileRepository)
		svc := NewProfileService(mRepo, nil, logging.Discard())

		mRepo.On("FindByID", ctx, "u1").Return(existing(), nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(p *model.Profile) bool {
			return p.City == "Seattle" && p.Name == "Ada" && p.BudgetMax == 1000 && p.Onboarded
		})).Return(func(_ context.Context, p *model.Profile) *model.Profile { return p }, nil)

		p, err := svc.Update(ctx, "u1", ProfilePatch{City: str(" Seattle ")})
		require.NoError(t, err)
		assert.True(t, p.Onboarded)
		mRepo.AssertExpectations(t)
	})

	t.Run("clearing move in drops onboarded", func(t *testing.T) {
		mRepo := new(repoMocks.MockProfileRepository)
		svc := NewProfileService(mRepo, nil, logging.Discard())

		p0 := existing()
		p0.City = "Seattle"
		p0.Onboarded = true
		mRepo.On("FindByID", ctx, "u1").Return(p0, nil)
		mRepo.On("Update", ctx, mock.Anything).
			Return(func(_ context.Context, p *model.Profile) *model.Profile { return p }, nil)

		p, err := svc.Update(ctx, "u1", ProfilePatch{MoveIn: str("")})
		require.NoError(t, err)
		assert.Nil(t, p.MoveIn)
		assert.False(t, p.Onboarded)
	})

	t.Run("invalid patch", func(t *testing.T) {
		mRepo := new(repoMocks.MockProfileRepository)
		svc := NewProfileService(mRepo, nil, logging.Discard())
		mRepo.On("FindByID", ctx, "u1").Return(existing(), nil)

		budgetMin := 5000
		_, err := svc.Update(ctx, "u1", ProfilePatch{BudgetMin: &budgetMin})
		assert.ErrorIs(t, err, ErrValidation)
		mRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("email taken", func(t *testing.T) {
		mRepo := new(repoMocks.MockProfileRepository)
		svc := NewProfileService(mRepo, nil, logging.Discard())
		mRepo.On("FindByID", ctx, "u1").Return(existing(), nil)
		mRepo.On("Update", ctx, mock.Anything).Return(nil, repository.ErrConflict)

		_, err := svc.Update(ctx, "u1", ProfilePatch{Email: str("grace@example.com")})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockProfileRepository)
		svc := NewProfileService(mRepo, nil, logging.Discard())
		mRepo.On("FindByID", ctx, "nope").Return(nil, repository.ErrNotFound)

		_, err := svc.Update(ctx, "nope", ProfilePatch{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestProfileService_List(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockProfileRepository)
	svc := NewProfileService(mRepo, nil, logging.Discard())

	mRepo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
		Return(&repository.PageResult[model.Profile]{Items: []model.Profile{{ID: "u1"}}, Total: 1}, nil)
	mRepo.On("List", ctx, repository.PageQuery{Limit: 100, Offset: 5}).
		Return(&repository.PageResult[model.Profile]{Items: []model.Profile{}, Total: 1}, nil)

	res, err := svc.List(ctx, 0, -3)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Items, 1)

	_, err = svc.List(ctx, 500, 5)
	require.NoError(t, err)
	mRepo.AssertExpectations(t)
}

func TestProfileService_UploadAvatar(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		contentType string
		size        int64
		setupMocks  func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockProfileRepository) io.Reader
		wantErr     error
		wantErrMsg  string
	}{
		{
			name:        "happy path replaces previous avatar",
			contentType: "image/png",
			size:        4,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockProfileRepository) io.Reader {
				r := strings.NewReader("\x89PNG")
				mRepo.On("FindByID", ctx, "u1").Return(&model.Profile{ID: "u1", Name: "Ada", AvatarKey: "avatars/u1/old.png"}, nil)
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "avatars/u1/") && strings.HasSuffix(key, ".png")
				}), r, storage.PutObjectOptions{
					Size:         4,
					ContentType:  "image/png",
					CacheControl: storage.AvatarCacheControl,
					Metadata:     map[string]string{"user-id": "u1"},
				}).Return(storage.ObjectInfo{}, nil)
				mRepo.On("Update", ctx, mock.MatchedBy(func(p *model.Profile) bool {
					return strings.HasPrefix(p.AvatarKey, "avatars/u1/") && p.AvatarKey != "avatars/u1/old.png"
				})).Return(func(_ context.Context, p *model.Profile) *model.Profile { return p }, nil)
				mStore.On("Delete", ctx, "avatars/u1/old.png").Return(nil)
				return r
			},
		},
		{
			name:        "extension follows content type",
			contentType: "image/jpeg; charset=binary",
			size:        1,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockProfileRepository) io.Reader {
				r := strings.NewReader("x")
				mRepo.On("FindByID", ctx, "u1").Return(&model.Profile{ID: "u1"}, nil)
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "avatars/u1/") && strings.HasSuffix(key, ".jpg")
				}), r, mock.Anything).Return(storage.ObjectInfo{}, nil)
				mRepo.On("Update", ctx, mock.Anything).Return(func(_ context.Context, p *model.Profile) *model.Profile { return p }, nil)
				return r
			},
		},
		{
			name:        "unsupported type",
			contentType: "application/pdf",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockProfileRepository) io.Reader {
				return strings.NewReader("%PDF")
			},
			wantErr: ErrUnsupportedType,
		},
		{
			name:        "too large",
			contentType: "image/jpeg",
			size:        MaxAvatarBytes + 1,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockProfileRepository) io.Reader {
				return strings.NewReader("x")
			},
			wantErr: ErrValidation,
		},
		{
			name:        "nil reader",
			contentType: "image/jpeg",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockProfileRepository) io.Reader {
				return nil
			},
			wantErr: ErrReaderNil,
		},
		{
			name:        "storage error",
			contentType: "image/jpeg",
			size:        1,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockProfileRepository) io.Reader {
				r := strings.NewReader("x")
				mRepo.On("FindByID", ctx, "u1").Return(&model.Profile{ID: "u1"}, nil)
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
				return r
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name:        "repository error with successful rollback",
			contentType: "image/jpeg",
			size:        1,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockProfileRepository) io.Reader {
				r := strings.NewReader("x")
				mRepo.On("FindByID", ctx, "u1").Return(&model.Profile{ID: "u1"}, nil)
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).Return(storage.ObjectInfo{}, nil)
				mRepo.On("Update", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, mock.Anything).Return(nil)
				return r
			},
			wantErrMsg: "db save failed: db fail",
		},
		{
			name:        "repository error with failed rollback",
			contentType: "image/jpeg",
			size:        1,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockProfileRepository) io.Reader {
				r := strings.NewReader("x")
				mRepo.On("FindByID", ctx, "u1").Return(&model.Profile{ID: "u1"}, nil)
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).Return(storage.ObjectInfo{}, nil)
				mRepo.On("Update", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, mock.Anything).Return(errors.New("delete fail"))
				return r
			},
			wantErrMsg: "rollback delete failed: delete fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockProfileRepository)
			svc := NewProfileService(mRepo, mStore, logging.Discard())

			r := tt.setupMocks(mStore, mRepo)
			p, err := svc.UploadAvatar(ctx, "u1", r, tt.contentType, tt.size)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.ErrorContains(t, err, tt.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.NotEmpty(t, p.AvatarKey)
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestProfileService_UploadAvatar_StorageDisabled(t *testing.T) {
	svc := NewProfileService(new(repoMocks.MockProfileRepository), nil, logging.Discard())
	_, err := svc.UploadAvatar(context.Background(), "u1", strings.NewReader("x"), "image/png", 1)
	assert.ErrorIs(t, err, ErrStorageDisabled)

	_, err = svc.AvatarURL(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrStorageDisabled)
}

func TestProfileService_AvatarURL(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStorage)
	mRepo := new(repoMocks.MockProfileRepository)
	svc := NewProfileService(mRepo, mStore, logging.Discard())

	mRepo.On("FindByID", ctx, "bare").Return(&model.Profile{ID: "bare"}, nil)
	_, err := svc.AvatarURL(ctx, "bare")
	assert.ErrorIs(t, err, ErrNotFound)

	mRepo.On("FindByID", ctx, "u1").Return(&model.Profile{ID: "u1", AvatarKey: "avatars/u1/a.png"}, nil)
	mStore.On("Stat", ctx, "avatars/u1/a.png").Return(storage.ObjectInfo{Key: "avatars/u1/a.png"}, nil)
	mStore.On("PresignGet", ctx, "avatars/u1/a.png", AvatarURLExpiry).Return("https://minio/signed", nil)

	url, err := svc.AvatarURL(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "https://minio/signed", url)

	mRepo.On("FindByID", ctx, "gone").Return(&model.Profile{ID: "gone", AvatarKey: "avatars/gone/a.png"}, nil)
	mStore.On("Stat", ctx, "avatars/gone/a.png").Return(storage.ObjectInfo{}, storage.ErrObjectNotFound)

	_, err = svc.AvatarURL(ctx, "gone")
	assert.ErrorIs(t, err, ErrNotFound)
	mStore.AssertNotCalled(t, "PresignGet", ctx, "avatars/gone/a.png", AvatarURLExpiry)
}

func TestProfileService_OpenAvatar(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStorage)
	mRepo := new(repoMocks.MockProfileRepository)
	svc := NewProfileService(mRepo, mStore, logging.Discard())

	body := io.NopCloser(strings.NewReader("\x89PNG"))
	mRepo.On("FindByID", ctx, "u1").Return(&model.Profile{ID: "u1", AvatarKey: "avatars/u1/a.png"}, nil)
	mStore.On("Get", ctx, "avatars/u1/a.png").Return(body, storage.ObjectInfo{ContentType: "image/png", Size: 4}, nil)

	rc, info, err := svc.OpenAvatar(ctx, "u1")
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, "image/png", info.ContentType)
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(b))

	mRepo.On("FindByID", ctx, "u2").Return(&model.Profile{ID: "u2", AvatarKey: "avatars/u2/b.png"}, nil)
	mStore.On("Get", ctx, "avatars/u2/b.png").Return(nil, storage.ObjectInfo{}, errors.New("connection reset"))

	_, _, err = svc.OpenAvatar(ctx, "u2")
	assert.ErrorContains(t, err, "read avatar: connection reset")
	assert.NotErrorIs(t, err, ErrNotFound)
}
