package user

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"devconnect-service/internal/models"

	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	m := make(map[string]*models.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrUserNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, u *models.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return ErrUserNotFound
	}
	clone := *u
	f.users[u.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindPage(ctx context.Context, excludeIDs []string, selfID string, offset, limit int) ([]models.User, error) {
	return nil, nil
}

type fakePhotoStore struct {
	url string
	err error
}

func (f *fakePhotoStore) UploadPhoto(ctx context.Context, file *multipart.FileHeader) (string, error) {
	return f.url, f.err
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("AppliesOnlySetFields", func(t *testing.T) {
		repo := newFakeUserRepo(&models.User{
			ID:        "user-a",
			FirstName: "Alice",
			LastName:  "Nguyen",
			About:     "old about",
		})
		svc := NewUserService(repo, nil, 0)

		resp, err := svc.UpdateProfile(ctx, "user-a", &models.EditProfileRequest{
			About:  strPtr("new about"),
			Age:    intPtr(28),
			Skills: models.StringList{"go", "sql"},
		})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if resp.About != "new about" || resp.Age != 28 || len(resp.Skills) != 2 {
			t.Errorf("edited fields not applied: %+v", resp)
		}
		if resp.FirstName != "Alice" || resp.LastName != "Nguyen" {
			t.Errorf("unset fields were clobbered: %+v", resp)
		}
	})

	t.Run("UnknownUser", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(), nil, 0)
		if _, err := svc.UpdateProfile(ctx, "user-x", &models.EditProfileRequest{}); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("OldSecret1"), bcrypt.DefaultCost)
	repo := newFakeUserRepo(&models.User{ID: "user-a", Password: string(hashed)})
	svc := NewUserService(repo, nil, 0)

	t.Run("WrongOldPassword", func(t *testing.T) {
		if err := svc.ChangePassword(ctx, "user-a", "Nope12345", "NewSecret1"); !errors.Is(err, ErrWrongPassword) {
			t.Errorf("expected ErrWrongPassword, got %v", err)
		}
	})

	t.Run("WeakNewPassword", func(t *testing.T) {
		for _, password := range []string{"aaaaaaaa", "Short1A", "NODIGITS", "nodigits", "12345678"} {
			if err := svc.ChangePassword(ctx, "user-a", "OldSecret1", password); !errors.Is(err, ErrWeakPassword) {
				t.Errorf("password %q: expected ErrWeakPassword, got %v", password, err)
			}
		}
		stored := repo.users["user-a"]
		if bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("OldSecret1")) != nil {
			t.Error("stored hash changed despite weak new password")
		}
	})

	t.Run("RehashesOnSuccess", func(t *testing.T) {
		if err := svc.ChangePassword(ctx, "user-a", "OldSecret1", "NewSecret1"); err != nil {
			t.Fatalf("change failed: %v", err)
		}
		stored := repo.users["user-a"]
		if bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("NewSecret1")) != nil {
			t.Error("new password does not verify")
		}
		if bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("OldSecret1")) == nil {
			t.Error("old password still verifies")
		}
	})
}

func TestUpdatePhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("StoresReturnedURL", func(t *testing.T) {
		repo := newFakeUserRepo(&models.User{ID: "user-a"})
		svc := NewUserService(repo, &fakePhotoStore{url: "http://minio/devconnect-photos/photos/x.png"}, 1024)

		url, err := svc.UpdatePhoto(ctx, "user-a", &multipart.FileHeader{Filename: "x.png", Size: 512})
		if err != nil {
			t.Fatalf("upload failed: %v", err)
		}
		if repo.users["user-a"].PhotoURL != url {
			t.Errorf("photo url not persisted: %s", repo.users["user-a"].PhotoURL)
		}
	})

	t.Run("RejectsOversizedFile", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(&models.User{ID: "user-a"}), &fakePhotoStore{url: "u"}, 1024)
		if _, err := svc.UpdatePhoto(ctx, "user-a", &multipart.FileHeader{Filename: "x.png", Size: 4096}); !errors.Is(err, ErrPhotoTooLarge) {
			t.Errorf("expected ErrPhotoTooLarge, got %v", err)
		}
	})

	t.Run("UnavailableStore", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(&models.User{ID: "user-a"}), nil, 1024)
		if _, err := svc.UpdatePhoto(ctx, "user-a", &multipart.FileHeader{Filename: "x.png", Size: 512}); !errors.Is(err, ErrPhotoUnavailable) {
			t.Errorf("expected ErrPhotoUnavailable, got %v", err)
		}
	})
}
