package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sefazor/snapvault-backend/internal/models"
	"github.com/sefazor/snapvault-backend/internal/repository"
	"github.com/sefazor/snapvault-backend/internal/testutil"
	jwtPkg "github.com/sefazor/snapvault-backend/pkg/jwt"
	"github.com/sefazor/snapvault-backend/pkg/qrcode"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	db     *gorm.DB
	store  *testutil.MemoryStorage
	mailer *testutil.RecordingMailer
	tokens *jwtPkg.Manager

	auth        *AuthService
	users       *UserService
	events      *EventService
	collections *CollectionService
	photos      *PhotoService
	studio      *StudioSettingsService
	superAdmin  *SuperAdminSettingsService
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutil.NewDB(s.T())
	s.store = testutil.NewMemoryStorage()
	s.mailer = testutil.NewRecordingMailer()
	s.tokens = jwtPkg.NewManager("test-secret", time.Minute, time.Hour)
	log := zap.NewNop()

	userRepo := repository.NewUserRepository(s.db)
	eventRepo := repository.NewEventRepository(s.db)
	collectionRepo := repository.NewCollectionRepository(s.db)
	photoRepo := repository.NewPhotoRepository(s.db)

	s.auth = NewAuthService(userRepo, s.tokens, s.mailer, log)
	s.users = NewUserService(userRepo)
	s.events = NewEventService(eventRepo, s.store, qrcode.NewQRService("https://app.test"), log)
	s.collections = NewCollectionService(collectionRepo, eventRepo)
	s.photos = NewPhotoService(photoRepo, eventRepo, collectionRepo, s.store, log)
	s.studio = NewStudioSettingsService(repository.NewStudioSettingsRepository(s.db))
	s.superAdmin = NewSuperAdminSettingsService(repository.NewSuperAdminSettingsRepository(s.db), log)
}

func (s *ServiceTestSuite) requireKind(err error, kind error) {
	s.Require().Error(err)
	s.Require().True(errors.Is(err, kind), "got %v", err)
}

func (s *ServiceTestSuite) register(email string, admin bool) *models.User {
	_, err := s.auth.Register(s.ctx, models.RegisterRequest{Email: email, Password: "secret1"}, admin)
	s.Require().NoError(err)
	user, err := repository.NewUserRepository(s.db).GetByEmail(s.ctx, email)
	s.Require().NoError(err)
	return user
}

func (s *ServiceTestSuite) createEvent(name string) *models.Event {
	event, err := s.events.CreateEvent(s.ctx, models.EventRequest{Name: name})
	s.Require().NoError(err)
	return event
}

func (s *ServiceTestSuite) TestRegisterAndLogin() {
	pair, err := s.auth.Register(s.ctx, models.RegisterRequest{
		Email:    "studio@example.com",
		Password: "secret1",
	}, false)
	s.Require().NoError(err)

	select {
	case to := <-s.mailer.Sent():
		s.Equal("studio@example.com", to)
	case <-time.After(2 * time.Second):
		s.Fail("welcome email was not sent")
	}

	claims, err := s.tokens.VerifyType(pair.AccessToken, jwtPkg.TypeAccess)
	s.Require().NoError(err)
	userID, err := claims.UserID()
	s.Require().NoError(err)

	profile, err := s.users.GetProfile(s.ctx, userID)
	s.Require().NoError(err)
	s.Equal(models.RoleStudio, profile.Role)
	s.True(profile.IsActive)
	s.False(profile.IsSuperuser)

	_, err = s.auth.Register(s.ctx, models.RegisterRequest{Email: "studio@example.com", Password: "other12"}, false)
	s.requireKind(err, ErrConflict)
	s.Equal("The user with this username already exists in the system.", err.Error())

	_, err = s.auth.Login(s.ctx, models.LoginRequest{Email: "studio@example.com", Password: "secret1"})
	s.NoError(err)

	_, err = s.auth.Login(s.ctx, models.LoginRequest{Email: "studio@example.com", Password: "wrong"})
	s.requireKind(err, ErrInvalidCredentials)

	_, err = s.auth.Login(s.ctx, models.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	s.requireKind(err, ErrInvalidCredentials)
	s.Equal("Incorrect email or password", err.Error())
}

func (s *ServiceTestSuite) TestLoginRejectsInactiveUser() {
	user := s.register("sleepy@example.com", false)
	s.Require().NoError(s.db.Model(user).Update("is_active", false).Error)

	_, err := s.auth.Login(s.ctx, models.LoginRequest{Email: "sleepy@example.com", Password: "secret1"})
	s.requireKind(err, ErrInactiveUser)
}

func (s *ServiceTestSuite) TestRegisterSuperAdmin() {
	admin := s.register("root@example.com", true)
	s.Equal(models.RoleAdmin, admin.Role)
	s.True(admin.IsSuperuser)

	_, err := s.users.RequireAdmin(s.ctx, admin.ID)
	s.NoError(err)

	studio := s.register("studio@example.com", false)
	_, err = s.users.RequireAdmin(s.ctx, studio.ID)
	s.requireKind(err, ErrForbidden)
}

func (s *ServiceTestSuite) TestRefresh() {
	user := s.register("studio@example.com", false)

	refresh, err := s.tokens.IssueRefreshToken(user.ID)
	s.Require().NoError(err)
	access, err := s.auth.Refresh(s.ctx, refresh)
	s.Require().NoError(err)
	_, err = s.tokens.VerifyType(access, jwtPkg.TypeAccess)
	s.NoError(err)

	_, err = s.auth.Refresh(s.ctx, access)
	s.requireKind(err, ErrInvalidToken)
	s.Equal("Invalid token type", err.Error())

	_, err = s.auth.Refresh(s.ctx, refresh+"x")
	s.requireKind(err, ErrInvalidToken)
	s.Equal("Could not validate credentials", err.Error())

	ghost, err := s.tokens.IssueRefreshToken(9999)
	s.Require().NoError(err)
	_, err = s.auth.Refresh(s.ctx, ghost)
	s.requireKind(err, ErrNotFound)
}

func (s *ServiceTestSuite) TestEventDefaultsAndUpdate() {
	event := s.createEvent("Test Wedding")
	s.Positive(event.ID)
	s.Equal(models.EventStatusUnpublished, event.Status)

	updated, err := s.events.UpdateEvent(s.ctx, event.ID, models.UpdateEventRequest{
		Status:   models.Set("published"),
		Location: models.Set("Lisbon"),
	})
	s.Require().NoError(err)
	s.Equal(models.EventStatusPublished, updated.Status)
	s.Equal("Test Wedding", updated.Name)

	_, err = s.events.UpdateEvent(s.ctx, event.ID, models.UpdateEventRequest{Name: models.Null[string]()})
	s.requireKind(err, ErrValidation)

	_, err = s.events.GetEvent(s.ctx, 4242)
	s.requireKind(err, ErrNotFound)
	s.Equal("Event not found", err.Error())
}

func (s *ServiceTestSuite) TestEventDeleteRemovesStoredObjects() {
	event := s.createEvent("Gala")
	photo, err := s.photos.UploadPhoto(s.ctx, models.Upload{
		EventID:     event.ID,
		FileName:    "IMG_01.JPG",
		ContentType: "image/jpeg",
		Size:        3,
	}, strings.NewReader("abc"))
	s.Require().NoError(err)
	s.Require().True(s.store.Has(*photo.StorageKey))

	deleted, err := s.events.DeleteEvent(s.ctx, event.ID)
	s.Require().NoError(err)
	s.Equal(event.ID, deleted.ID)
	s.False(s.store.Has(*photo.StorageKey))

	_, err = s.photos.GetPhoto(s.ctx, photo.ID)
	s.requireKind(err, ErrNotFound)
}

func (s *ServiceTestSuite) TestEventDeleteToleratesStorageFailure() {
	event := s.createEvent("Gala")
	_, err := s.photos.UploadPhoto(s.ctx, models.Upload{
		EventID: event.ID, FileName: "a.png", ContentType: "image/png", Size: 1,
	}, strings.NewReader("a"))
	s.Require().NoError(err)

	s.store.FailDelete = true
	_, err = s.events.DeleteEvent(s.ctx, event.ID)
	s.NoError(err)
}

func (s *ServiceTestSuite) TestEventQRCode() {
	event := s.createEvent("Gala")

	png, err := s.events.QRCode(s.ctx, event.ID, qrcode.DefaultSize)
	s.Require().NoError(err)
	s.True(bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = s.events.QRCode(s.ctx, event.ID+1, qrcode.DefaultSize)
	s.requireKind(err, ErrNotFound)

	_, err = s.events.QRCode(s.ctx, event.ID, 8)
	s.requireKind(err, ErrValidation)
}

func (s *ServiceTestSuite) TestCollectionRequiresEvent() {
	_, err := s.collections.CreateCollection(s.ctx, models.CollectionRequest{Name: "Ceremony", EventID: 77})
	s.requireKind(err, ErrNotFound)

	var count int64
	s.Require().NoError(s.db.Model(&models.Collection{}).Count(&count).Error)
	s.Zero(count)

	event := s.createEvent("Gala")
	collection, err := s.collections.CreateCollection(s.ctx, models.CollectionRequest{Name: "Ceremony", EventID: event.ID})
	s.Require().NoError(err)

	renamed, err := s.collections.UpdateCollection(s.ctx, collection.ID, models.UpdateCollectionRequest{Name: models.Set("Party")})
	s.Require().NoError(err)
	s.Equal("Party", renamed.Name)

	deleted, err := s.collections.DeleteCollection(s.ctx, collection.ID)
	s.Require().NoError(err)
	s.Equal("Party", deleted.Name)

	_, err = s.collections.GetCollection(s.ctx, collection.ID)
	s.requireKind(err, ErrNotFound)
}

func (s *ServiceTestSuite) TestPhotoPlacement() {
	_, err := s.photos.CreatePhoto(s.ctx, models.PhotoRequest{Title: "a", URL: "https://x/a.jpg", EventID: 5})
	s.requireKind(err, ErrNotFound)

	first := s.createEvent("First")
	second := s.createEvent("Second")
	other, err := s.collections.CreateCollection(s.ctx, models.CollectionRequest{Name: "Other", EventID: second.ID})
	s.Require().NoError(err)

	_, err = s.photos.CreatePhoto(s.ctx, models.PhotoRequest{
		Title: "a", URL: "https://x/a.jpg", EventID: first.ID, CollectionID: &other.ID,
	})
	s.requireKind(err, ErrValidation)

	photo, err := s.photos.CreatePhoto(s.ctx, models.PhotoRequest{Title: "a", URL: "https://x/a.jpg", EventID: first.ID})
	s.Require().NoError(err)
	s.Zero(photo.FileSize)

	_, err = s.photos.UpdatePhoto(s.ctx, photo.ID, models.UpdatePhotoRequest{CollectionID: models.Set(other.ID)})
	s.requireKind(err, ErrValidation)

	updated, err := s.photos.UpdatePhoto(s.ctx, photo.ID, models.UpdatePhotoRequest{Title: models.Set("b")})
	s.Require().NoError(err)
	s.Equal("b", updated.Title)
	s.Equal("https://x/a.jpg", updated.URL)

	list, err := s.photos.ListEventPhotos(s.ctx, first.ID, models.DefaultPage())
	s.Require().NoError(err)
	s.Len(list, 1)

	_, err = s.photos.ListEventPhotos(s.ctx, 999, models.DefaultPage())
	s.requireKind(err, ErrNotFound)
}

func (s *ServiceTestSuite) TestPhotoUpload() {
	event := s.createEvent("Gala")

	photo, err := s.photos.UploadPhoto(s.ctx, models.Upload{
		EventID:     event.ID,
		FileName:    "Beach.JPG",
		ContentType: "image/jpeg",
		Size:        5,
	}, strings.NewReader("hello"))
	s.Require().NoError(err)

	s.Equal("Beach.JPG", photo.Title)
	s.EqualValues(5, photo.FileSize)
	s.Require().NotNil(photo.StorageKey)
	s.True(strings.HasPrefix(*photo.StorageKey, "events/"))
	s.True(strings.HasSuffix(*photo.StorageKey, ".jpg"))
	s.Equal("https://cdn.test/"+*photo.StorageKey, photo.URL)

	_, err = s.photos.UploadPhoto(s.ctx, models.Upload{EventID: event.ID, Size: MaxUploadSize + 1}, strings.NewReader(""))
	s.requireKind(err, ErrValidation)

	deleted, err := s.photos.DeletePhoto(s.ctx, photo.ID)
	s.Require().NoError(err)
	s.Equal(photo.ID, deleted.ID)
	s.False(s.store.Has(*photo.StorageKey))
}

func (s *ServiceTestSuite) TestPhotoUploadWithoutStorage() {
	photos := NewPhotoService(
		repository.NewPhotoRepository(s.db),
		repository.NewEventRepository(s.db),
		repository.NewCollectionRepository(s.db),
		nil,
		zap.NewNop(),
	)
	_, err := photos.UploadPhoto(s.ctx, models.Upload{EventID: 1}, strings.NewReader(""))
	s.ErrorIs(err, ErrStorageDisabled)
}

func (s *ServiceTestSuite) TestStudioSettingsOwnership() {
	owner := s.register("owner@example.com", false)
	stranger := s.register("stranger@example.com", false)
	admin := s.register("admin@example.com", true)

	_, err := s.studio.CurrentSettings(s.ctx, owner)
	s.requireKind(err, ErrNotFound)

	settings, err := s.studio.CreateSettings(s.ctx, owner, models.StudioSettingsRequest{
		FullName: ptr("Owner"),
		EmailID:  ptr("studio@example.com"),
	})
	s.Require().NoError(err)
	s.True(settings.OwnedBy(owner.ID))

	_, err = s.studio.CreateSettings(s.ctx, owner, models.StudioSettingsRequest{})
	s.requireKind(err, ErrConflict)

	_, err = s.studio.CreateSettings(s.ctx, stranger, models.StudioSettingsRequest{EmailID: ptr("studio@example.com")})
	s.requireKind(err, ErrConflict)
	s.Equal("Email already registered", err.Error())

	current, err := s.studio.CurrentSettings(s.ctx, owner)
	s.Require().NoError(err)
	s.Equal(settings.ID, current.ID)

	_, err = s.studio.GetSettings(s.ctx, stranger, settings.ID)
	s.requireKind(err, ErrNotFound)
	_, err = s.studio.GetSettings(s.ctx, admin, settings.ID)
	s.NoError(err)

	_, err = s.studio.ListSettings(s.ctx, owner, models.DefaultPage())
	s.requireKind(err, ErrForbidden)
	all, err := s.studio.ListSettings(s.ctx, admin, models.DefaultPage())
	s.Require().NoError(err)
	s.Len(all, 1)

	_, err = s.studio.DeleteSettings(s.ctx, stranger, settings.ID)
	s.requireKind(err, ErrNotFound)
	_, err = s.studio.DeleteSettings(s.ctx, owner, settings.ID)
	s.NoError(err)
}

func (s *ServiceTestSuite) TestStudioSettingsPartialUpdate() {
	owner := s.register("owner@example.com", false)
	other := s.register("other@example.com", false)

	settings, err := s.studio.CreateSettings(s.ctx, owner, models.StudioSettingsRequest{
		FullName: ptr("Owner"),
		EmailID:  ptr("owner-studio@example.com"),
	})
	s.Require().NoError(err)
	_, err = s.studio.CreateSettings(s.ctx, other, models.StudioSettingsRequest{EmailID: ptr("taken@example.com")})
	s.Require().NoError(err)

	updated, err := s.studio.UpdateSettings(s.ctx, owner, settings.ID, models.UpdateStudioSettingsRequest{
		MobileNumber: models.Set("+351 900"),
	})
	s.Require().NoError(err)
	s.Equal("+351 900", *updated.MobileNumber)
	s.Equal("Owner", *updated.FullName)

	_, err = s.studio.UpdateSettings(s.ctx, owner, settings.ID, models.UpdateStudioSettingsRequest{
		EmailID: models.Set("taken@example.com"),
	})
	s.requireKind(err, ErrConflict)
	s.Equal("Email already in use", err.Error())

	unchanged, err := s.studio.GetSettings(s.ctx, owner, settings.ID)
	s.Require().NoError(err)
	s.Equal("owner-studio@example.com", *unchanged.EmailID)

	// keeping the same address is not a conflict with itself
	_, err = s.studio.UpdateSettings(s.ctx, owner, settings.ID, models.UpdateStudioSettingsRequest{
		EmailID: models.Set("owner-studio@example.com"),
	})
	s.NoError(err)

	cleared, err := s.studio.UpdateSettings(s.ctx, owner, settings.ID, models.UpdateStudioSettingsRequest{
		EmailID:  models.Set(""),
		FullName: models.Null[string](),
	})
	s.Require().NoError(err)
	s.Nil(cleared.EmailID)
	s.Nil(cleared.FullName)
}

func (s *ServiceTestSuite) TestSuperAdminSettingsLifecycle() {
	_, err := s.superAdmin.GetSettings(s.ctx)
	s.requireKind(err, ErrNotFound)
	s.Equal("Super admin settings not found. Please create settings first.", err.Error())

	_, err = s.superAdmin.UpdateSettings(s.ctx, models.UpdateSuperAdminSettingsRequest{MaintenanceMode: models.Set(true)})
	s.requireKind(err, ErrNotFound)

	created, err := s.superAdmin.CreateSettings(s.ctx, models.SuperAdminSettingsRequest{
		SystemDomain: "photos.example.com",
		SupportEmail: "help@example.com",
	})
	s.Require().NoError(err)
	s.Equal("SnapVault", created.PlatformName)

	_, err = s.superAdmin.CreateSettings(s.ctx, models.SuperAdminSettingsRequest{
		SystemDomain: "again.example.com",
		SupportEmail: "help@example.com",
	})
	s.requireKind(err, ErrConflict)
	s.Equal("Super admin settings already exist. Use PUT to update.", err.Error())

	updated, err := s.superAdmin.UpdateSettings(s.ctx, models.UpdateSuperAdminSettingsRequest{
		MaintenanceMode: models.Set(true),
		TaxRate:         models.Set(20.0),
	})
	s.Require().NoError(err)
	s.True(updated.MaintenanceMode)
	s.Equal(20.0, updated.TaxRate)
	s.Equal("photos.example.com", updated.SystemDomain)

	_, err = s.superAdmin.UpdateSettings(s.ctx, models.UpdateSuperAdminSettingsRequest{SupportEmail: models.Null[string]()})
	s.requireKind(err, ErrValidation)

	deleted, err := s.superAdmin.DeleteSettings(s.ctx)
	s.Require().NoError(err)
	s.Equal(created.ID, deleted.ID)

	_, err = s.superAdmin.DeleteSettings(s.ctx)
	s.requireKind(err, ErrNotFound)
}

func (s *ServiceTestSuite) TestSuperAdminInitializeIsIdempotent() {
	first, err := s.superAdmin.InitializeSettings(s.ctx)
	s.Require().NoError(err)
	s.Equal("app.snapvault.com", first.SystemDomain)
	s.Equal(12.4, first.TotalStorageTB)
	s.True(first.Forced2FA)
	s.False(first.WhatsappAPIConnected)

	second, err := s.superAdmin.InitializeSettings(s.ctx)
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID)

	var count int64
	s.Require().NoError(s.db.Model(&models.SuperAdminSettings{}).Count(&count).Error)
	s.EqualValues(1, count)
}

func ptr[T any](v T) *T {
	return &v
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
