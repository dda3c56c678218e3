package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TonAldo48/matematch-sub001/internal/logging"
	"github.com/TonAldo48/matematch-sub001/internal/model"
	"github.com/TonAldo48/matematch-sub001/internal/repository"
	"github.com/TonAldo48/matematch-sub001/internal/storage"
)

const (
	dateLayout = "2006-01-02"

	// MaxAvatarBytes caps avatar uploads.
	MaxAvatarBytes = 5 << 20
	// AvatarURLExpiry is the lifetime of presigned avatar links.
	AvatarURLExpiry = 15 * time.Minute

	maxNameLen = 100
	maxBioLen  = 2000
)

var avatarTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// OnboardInput is the payload collected by the onboarding flow.
// Dates are YYYY-MM-DD.
type OnboardInput struct {
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Pronouns  string          `json:"pronouns"`
	School    string          `json:"school"`
	Company   string          `json:"company"`
	Role      string          `json:"role"`
	City      string          `json:"city"`
	Bio       string          `json:"bio"`
	BudgetMin int             `json:"budget_min"`
	BudgetMax int             `json:"budget_max"`
	MoveIn    string          `json:"move_in"`
	MoveOut   string          `json:"move_out"`
	Lifestyle model.Lifestyle `json:"lifestyle"`
}

// ProfilePatch is a partial profile update. Nil fields are left unchanged;
// an empty move_in or move_out clears the date.
type ProfilePatch struct {
	Email     *string          `json:"email"`
	Name      *string          `json:"name"`
	Pronouns  *string          `json:"pronouns"`
	School    *string          `json:"school"`
	Company   *string          `json:"company"`
	Role      *string          `json:"role"`
	City      *string          `json:"city"`
	Bio       *string          `json:"bio"`
	BudgetMin *int             `json:"budget_min"`
	BudgetMax *int             `json:"budget_max"`
	MoveIn    *string          `json:"move_in"`
	MoveOut   *string          `json:"move_out"`
	Lifestyle *model.Lifestyle `json:"lifestyle"`
}

// ProfileListResult is the service-level DTO for paginated profiles.
type ProfileListResult struct {
	Items []model.Profile `json:"data"`
	Total int             `json:"total"`
}

// ProfileService defines onboarding and profile management.
type ProfileService interface {
	// Onboard validates and creates a profile. A registered email returns ErrEmailTaken.
	Onboard(ctx context.Context, in OnboardInput) (*model.Profile, error)

	Get(ctx context.Context, id string) (*model.Profile, error)

	// Update applies a partial patch and recomputes the onboarded flag.
	Update(ctx context.Context, id string, patch ProfilePatch) (*model.Profile, error)

	// List returns profiles using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*ProfileListResult, error)

	// UploadAvatar stores an image and points the profile at it. The object is
	// removed again if the profile cannot be saved.
	UploadAvatar(ctx context.Context, id string, r io.Reader, contentType string, size int64) (*model.Profile, error)

	// AvatarURL returns a presigned download link for the profile's avatar.
	AvatarURL(ctx context.Context, id string) (string, error)

	// OpenAvatar streams the avatar for clients that cannot reach object
	// storage directly. The caller closes the reader.
	OpenAvatar(ctx context.Context, id string) (io.ReadCloser, storage.ObjectInfo, error)
}

type profileService struct {
	repo  repository.ProfileRepository
	store storage.Storage
	log   *slog.Logger
}

// NewProfileService constructs a ProfileService. store may be nil, which
// disables avatars.
func NewProfileService(repo repository.ProfileRepository, store storage.Storage, log *slog.Logger) ProfileService {
	return &profileService{repo: repo, store: store, log: logging.Component(log, "profile_service")}
}

func (s *profileService) Onboard(ctx context.Context, in OnboardInput) (*model.Profile, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p := &model.Profile{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      strings.TrimSpace(in.Name),
		Pronouns:  strings.TrimSpace(in.Pronouns),
		School:    strings.TrimSpace(in.School),
		Company:   strings.TrimSpace(in.Company),
		Role:      strings.TrimSpace(in.Role),
		City:      strings.TrimSpace(in.City),
		Bio:       strings.TrimSpace(in.Bio),
		BudgetMin: in.BudgetMin,
		BudgetMax: in.BudgetMax,
		Lifestyle: in.Lifestyle,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if p.MoveIn, err = parseDate("move_in", in.MoveIn); err != nil {
		return nil, err
	}
	if p.MoveOut, err = parseDate("move_out", in.MoveOut); err != nil {
		return nil, err
	}
	if err := validateProfile(p); err != nil {
		return nil, err
	}
	p.Onboarded = isOnboarded(p)

	stored, err := s.repo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}
	s.log.InfoContext(ctx, "profile_onboarded", slog.String("user_id", stored.ID), slog.Bool("onboarded", stored.Onboarded))
	return stored, nil
}

func (s *profileService) Get(ctx context.Context, id string) (*model.Profile, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: profile %s", ErrNotFound, id)
		}
		return nil, err
	}
	return p, nil
}

func (s *profileService) Update(ctx context.Context, id string, patch ProfilePatch) (*model.Profile, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		if p.Email, err = normalizeEmail(*patch.Email); err != nil {
			return nil, err
		}
	}
	setString(&p.Name, patch.Name)
	setString(&p.Pronouns, patch.Pronouns)
	setString(&p.School, patch.School)
	setString(&p.Company, patch.Company)
	setString(&p.Role, patch.Role)
	setString(&p.City, patch.City)
	setString(&p.Bio, patch.Bio)
	if patch.BudgetMin != nil {
		p.BudgetMin = *patch.BudgetMin
	}
	if patch.BudgetMax != nil {
		p.BudgetMax = *patch.BudgetMax
	}
	if patch.MoveIn != nil {
		if p.MoveIn, err = parseDate("move_in", *patch.MoveIn); err != nil {
			return nil, err
		}
	}
	if patch.MoveOut != nil {
		if p.MoveOut, err = parseDate("move_out", *patch.MoveOut); err != nil {
			return nil, err
		}
	}
	if patch.Lifestyle != nil {
		p.Lifestyle = *patch.Lifestyle
	}
	if err := validateProfile(p); err != nil {
		return nil, err
	}
	p.Onboarded = isOnboarded(p)
	p.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			return nil, ErrEmailTaken
		case errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("%w: profile %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return updated, nil
}

// List returns paginated profiles without exposing repository types.
func (s *profileService) List(ctx context.Context, limit, offset int) (*ProfileListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ProfileListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *profileService) UploadAvatar(ctx context.Context, id string, r io.Reader, contentType string, size int64) (*model.Profile, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}
	if r == nil {
		return nil, ErrReaderNil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, contentType)
	}
	ext, ok := avatarTypes[mediaType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, mediaType)
	}
	if size > MaxAvatarBytes {
		return nil, invalid("avatar exceeds %d bytes", MaxAvatarBytes)
	}

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// the extension follows the validated type, never the client's filename
	key := storage.AvatarKey(p.ID, ext)
	if _, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:         size,
		ContentType:  mediaType,
		CacheControl: storage.AvatarCacheControl,
		Metadata:     map[string]string{"user-id": p.ID},
	}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	previous := p.AvatarKey
	p.AvatarKey = key
	p.UpdatedAt = time.Now().UTC()
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	if previous != "" {
		if err := s.store.Delete(ctx, previous); err != nil {
			s.log.WarnContext(ctx, "avatar_cleanup_failed", slog.String("key", previous), slog.String("error", err.Error()))
		}
	}
	return updated, nil
}

func (s *profileService) AvatarURL(ctx context.Context, id string) (string, error) {
	key, err := s.avatarKey(ctx, id)
	if err != nil {
		return "", err
	}
	// presigning never touches the bucket, so check the object is still there
	if _, err := s.store.Stat(ctx, key); err != nil {
		return "", avatarObjectErr(id, err)
	}
	return s.store.PresignGet(ctx, key, AvatarURLExpiry)
}

func (s *profileService) OpenAvatar(ctx context.Context, id string) (io.ReadCloser, storage.ObjectInfo, error) {
	key, err := s.avatarKey(ctx, id)
	if err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	rc, info, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, storage.ObjectInfo{}, avatarObjectErr(id, err)
	}
	return rc, info, nil
}

func (s *profileService) avatarKey(ctx context.Context, id string) (string, error) {
	if s.store == nil {
		return "", ErrStorageDisabled
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if p.AvatarKey == "" {
		return "", fmt.Errorf("%w: profile %s has no avatar", ErrNotFound, id)
	}
	return p.AvatarKey, nil
}

func avatarObjectErr(id string, err error) error {
	if errors.Is(err, storage.ErrObjectNotFound) {
		return fmt.Errorf("%w: avatar of profile %s is missing from storage", ErrNotFound, id)
	}
	return fmt.Errorf("read avatar: %w", err)
}

func normalizeEmail(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", invalid("email is required")
	}
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw {
		return "", invalid("email %q is not valid", raw)
	}
	return strings.ToLower(addr.Address), nil
}

func parseDate(field, v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, invalid("%s must be YYYY-MM-DD", field)
	}
	return &t, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func validateProfile(p *model.Profile) error {
	switch {
	case p.Name == "":
		return invalid("name is required")
	case len(p.Name) > maxNameLen:
		return invalid("name must be at most %d characters", maxNameLen)
	case len(p.Bio) > maxBioLen:
		return invalid("bio must be at most %d characters", maxBioLen)
	case p.BudgetMin < 0 || p.BudgetMax < 0:
		return invalid("budget must not be negative")
	case p.BudgetMax > 0 && p.BudgetMin > p.BudgetMax:
		return invalid("budget_min must not exceed budget_max")
	case p.MoveIn != nil && p.MoveOut != nil && !p.MoveOut.After(*p.MoveIn):
		return invalid("move_out must be after move_in")
	case p.Lifestyle.Cleanliness < 0 || p.Lifestyle.Cleanliness > 5:
		return invalid("lifestyle.cleanliness must be between 1 and 5 when set")
	}
	return nil
}

// isOnboarded reports whether the fields needed for matching are filled in.
func isOnboarded(p *model.Profile) bool {
	return p.Name != "" && p.Email != "" && p.City != "" && p.BudgetMax > 0 && p.MoveIn != nil
}
