package user

import (
	"context"
	"errors"
	"mime/multipart"

	"devconnect-service/internal/models"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrWrongPassword    = errors.New("current password is incorrect")
	ErrWeakPassword     = errors.New("password must contain upper and lower case letters and a digit")
	ErrPhotoUnavailable = errors.New("photo storage is not available")
	ErrPhotoTooLarge    = errors.New("photo exceeds the maximum allowed size")
)

// PhotoStore is the upload surface the profile service needs.
type PhotoStore interface {
	UploadPhoto(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type UserService struct {
	repo         UserRepository
	photos       PhotoStore
	maxPhotoSize int64
}

func NewUserService(repo UserRepository, photos PhotoStore, maxPhotoSize int64) *UserService {
	return &UserService{repo: repo, photos: photos, maxPhotoSize: maxPhotoSize}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.UserResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := u.Response()
	return &resp, nil
}

// UpdateProfile applies the whitelisted edit fields. Unset fields keep their
// current value.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req *models.EditProfileRequest) (*models.UserResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Age != nil {
		u.Age = *req.Age
	}
	if req.Gender != nil {
		u.Gender = *req.Gender
	}
	if req.PhotoURL != nil {
		u.PhotoURL = *req.PhotoURL
	}
	if req.About != nil {
		u.About = *req.About
	}
	if req.Skills != nil {
		u.Skills = req.Skills
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	resp := u.Response()
	return &resp, nil
}

// ChangePassword verifies the old password before rehashing the new one.
// The new password must pass the same strength rules as signup.
func (s *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if !models.IsStrongPassword(newPassword) {
		return ErrWeakPassword
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(oldPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.Password = string(hashed)
	return s.repo.Update(ctx, u)
}

// UpdatePhoto uploads the file and stores the resulting URL on the profile.
func (s *UserService) UpdatePhoto(ctx context.Context, userID string, file *multipart.FileHeader) (string, error) {
	if s.photos == nil {
		return "", ErrPhotoUnavailable
	}
	if s.maxPhotoSize > 0 && file.Size > s.maxPhotoSize {
		return "", ErrPhotoTooLarge
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}

	url, err := s.photos.UploadPhoto(ctx, file)
	if err != nil {
		return "", err
	}

	u.PhotoURL = url
	if err := s.repo.Update(ctx, u); err != nil {
		return "", err
	}

	return url, nil
}
