package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"docshelf_app_echo/internal/models"
)

// ErrNoSession is returned when no authenticated user is attached to the
// request context.
var ErrNoSession = errors.New("no authenticated session")

type ctxKey int

const userUIDKey ctxKey = iota

// WithUserUID attaches the authenticated Firebase UID to the context.
// The auth middleware calls this; services read it back.
func WithUserUID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userUIDKey, uid)
}

// UserUIDFromContext returns the authenticated UID, if any.
func UserUIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(userUIDKey).(string)
	return uid, ok && uid != ""
}

const userCacheTTL = time.Minute

// UserService resolves the signed-in user and provisions their special
// folders (inbox, home) on first use.
type UserService struct {
	db    *gorm.DB
	cache *RedisCache
}

// NewUserService creates a UserService.
func NewUserService(db *gorm.DB, cache *RedisCache) *UserService {
	return &UserService{db: db, cache: cache}
}

// CurrentUser resolves the user bound to the request context. Fails with
// ErrNoSession when the context carries no UID, and with the underlying
// database error when the lookup fails.
func (s *UserService) CurrentUser(ctx context.Context) (*models.User, error) {
	uid, ok := UserUIDFromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	user, err := GetOrSet(s.cache, ctx, "user:uid:"+uid, userCacheTTL, func() (models.User, error) {
		var u models.User
		if err := s.db.WithContext(ctx).Where("uid = ?", uid).First(&u).Error; err != nil {
			return u, err
		}
		if err := s.ensureSpecialFolders(ctx, &u); err != nil {
			return u, err
		}
		return u, nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	return &user, nil
}

// EnsureUser upserts the user record for a verified login and provisions
// the special folders. Called by the login handler after token
// verification.
func (s *UserService) EnsureUser(ctx context.Context, uid, email, name string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where(models.User{UID: uid}).
		Attrs(models.User{Email: email, Name: name}).
		FirstOrCreate(&user).Error
	if err != nil {
		return nil, fmt.Errorf("upsert user %s: %w", uid, err)
	}

	if err := s.ensureSpecialFolders(ctx, &user); err != nil {
		return nil, err
	}

	// Drop any cached copy so the next resolve sees the folders.
	if s.cache != nil {
		_ = s.cache.Delete(ctx, "user:uid:"+uid)
	}

	return &user, nil
}

// ensureSpecialFolders creates the inbox and home root folders when the
// user does not have them yet.
func (s *UserService) ensureSpecialFolders(ctx context.Context, user *models.User) error {
	if user.InboxFolderID != "" && user.HomeFolderID != "" {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if user.InboxFolderID == "" {
			inbox := models.Node{
				Title:  models.FolderTitleInbox,
				CType:  models.NodeTypeFolder,
				UserID: user.ID,
			}
			if err := tx.Create(&inbox).Error; err != nil {
				return fmt.Errorf("create inbox folder: %w", err)
			}
			user.InboxFolderID = inbox.ID
		}
		if user.HomeFolderID == "" {
			home := models.Node{
				Title:  models.FolderTitleHome,
				CType:  models.NodeTypeFolder,
				UserID: user.ID,
			}
			if err := tx.Create(&home).Error; err != nil {
				return fmt.Errorf("create home folder: %w", err)
			}
			user.HomeFolderID = home.ID
		}
		return tx.Save(user).Error
	})
}
