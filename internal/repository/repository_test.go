package repository

import (
	"context"
	"testing"

	"github.com/sefazor/snapvault-backend/internal/models"
	"github.com/sefazor/snapvault-backend/internal/testutil"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type RepositoryTestSuite struct {
	suite.Suite
	ctx         context.Context
	db          *gorm.DB
	users       *UserRepository
	events      *EventRepository
	collections *CollectionRepository
	photos      *PhotoRepository
	studio      *StudioSettingsRepository
	superAdmin  *SuperAdminSettingsRepository
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutil.NewDB(s.T())
	s.users = NewUserRepository(s.db)
	s.events = NewEventRepository(s.db)
	s.collections = NewCollectionRepository(s.db)
	s.photos = NewPhotoRepository(s.db)
	s.studio = NewStudioSettingsRepository(s.db)
	s.superAdmin = NewSuperAdminSettingsRepository(s.db)
}

func (s *RepositoryTestSuite) createEvent(name string) *models.Event {
	event, err := s.events.Create(s.ctx, &models.Event{Name: name, Status: models.EventStatusUnpublished})
	s.Require().NoError(err)
	return event
}

func (s *RepositoryTestSuite) createPhoto(eventID uint, collectionID *uint, key *string) *models.Photo {
	photo, err := s.photos.Create(s.ctx, &models.Photo{
		Title:        "shot",
		URL:          "https://cdn.example.com/shot.jpg",
		EventID:      eventID,
		CollectionID: collectionID,
		StorageKey:   key,
	})
	s.Require().NoError(err)
	return photo
}

func (s *RepositoryTestSuite) TestUserLookups() {
	_, err := s.users.Create(s.ctx, &models.User{
		Email:          "ada@example.com",
		HashedPassword: "hash",
		IsActive:       true,
		Role:           models.RoleStudio,
	})
	s.Require().NoError(err)

	user, err := s.users.GetByEmail(s.ctx, "ada@example.com")
	s.Require().NoError(err)
	s.Equal(models.RoleStudio, user.Role)

	exists, err := s.users.EmailExists(s.ctx, "ada@example.com")
	s.Require().NoError(err)
	s.True(exists)

	_, err = s.users.GetByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, ErrNotFound)

	_, err = s.users.Create(s.ctx, &models.User{Email: "ada@example.com", HashedPassword: "x", Role: models.RoleStudio})
	s.ErrorIs(err, ErrDuplicate)
}

func (s *RepositoryTestSuite) TestEventListIsPagedInIDOrder() {
	for _, name := range []string{"a", "b", "c", "d"} {
		s.createEvent(name)
	}

	events, err := s.events.List(s.ctx, models.Page{Skip: 1, Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal("b", events[0].Name)
	s.Equal("c", events[1].Name)
	s.Less(events[0].ID, events[1].ID)
}

func (s *RepositoryTestSuite) TestEventUpdateTouchesOnlyGivenColumns() {
	location := "Lisbon"
	event, err := s.events.Create(s.ctx, &models.Event{
		Name:     "Wedding",
		Location: &location,
		Status:   models.EventStatusDraft,
	})
	s.Require().NoError(err)

	updated, err := s.events.Update(s.ctx, event.ID, models.Changes{"name": "Reception", "description": nil})
	s.Require().NoError(err)
	s.Equal("Reception", updated.Name)
	s.Require().NotNil(updated.Location)
	s.Equal("Lisbon", *updated.Location)
	s.Nil(updated.Description)
	s.Equal(models.EventStatusDraft, updated.Status)

	same, err := s.events.Update(s.ctx, event.ID, models.Changes{})
	s.Require().NoError(err)
	s.Equal("Reception", same.Name)

	_, err = s.events.Update(s.ctx, 999, models.Changes{"name": "x"})
	s.ErrorIs(err, ErrNotFound)
}

func (s *RepositoryTestSuite) TestEventDeleteCascades() {
	event := s.createEvent("Gala")
	other := s.createEvent("Other")

	collection, err := s.collections.Create(s.ctx, &models.Collection{Name: "Ceremony", EventID: event.ID})
	s.Require().NoError(err)
	key := "events/1/a.jpg"
	s.createPhoto(event.ID, &collection.ID, &key)
	s.createPhoto(event.ID, nil, nil)
	kept := s.createPhoto(other.ID, nil, nil)

	deleted, keys, err := s.events.Delete(s.ctx, event.ID)
	s.Require().NoError(err)
	s.Equal("Gala", deleted.Name)
	s.Equal([]string{key}, keys)

	photos, err := s.photos.List(s.ctx, models.PhotoFilter{}, models.DefaultPage())
	s.Require().NoError(err)
	s.Require().Len(photos, 1)
	s.Equal(kept.ID, photos[0].ID)

	collections, err := s.collections.List(s.ctx, nil, models.DefaultPage())
	s.Require().NoError(err)
	s.Empty(collections)

	_, _, err = s.events.Delete(s.ctx, event.ID)
	s.ErrorIs(err, ErrNotFound)
}

func (s *RepositoryTestSuite) TestCollectionDeleteDetachesPhotos() {
	event := s.createEvent("Gala")
	collection, err := s.collections.Create(s.ctx, &models.Collection{Name: "Portraits", EventID: event.ID})
	s.Require().NoError(err)
	photo := s.createPhoto(event.ID, &collection.ID, nil)

	_, err = s.collections.Delete(s.ctx, collection.ID)
	s.Require().NoError(err)

	reloaded, err := s.photos.GetByID(s.ctx, photo.ID)
	s.Require().NoError(err)
	s.Nil(reloaded.CollectionID)
	s.Equal(event.ID, reloaded.EventID)
}

func (s *RepositoryTestSuite) TestListFilters() {
	first := s.createEvent("first")
	second := s.createEvent("second")
	c1, err := s.collections.Create(s.ctx, &models.Collection{Name: "c1", EventID: first.ID})
	s.Require().NoError(err)
	_, err = s.collections.Create(s.ctx, &models.Collection{Name: "c2", EventID: second.ID})
	s.Require().NoError(err)

	s.createPhoto(first.ID, &c1.ID, nil)
	s.createPhoto(first.ID, nil, nil)
	s.createPhoto(second.ID, nil, nil)

	byEvent, err := s.photos.List(s.ctx, models.PhotoFilter{EventID: &first.ID}, models.DefaultPage())
	s.Require().NoError(err)
	s.Len(byEvent, 2)

	byCollection, err := s.photos.List(s.ctx, models.PhotoFilter{CollectionID: &c1.ID}, models.DefaultPage())
	s.Require().NoError(err)
	s.Len(byCollection, 1)

	collections, err := s.collections.List(s.ctx, &second.ID, models.DefaultPage())
	s.Require().NoError(err)
	s.Require().Len(collections, 1)
	s.Equal("c2", collections[0].Name)
}

func (s *RepositoryTestSuite) TestStudioSettingsEmailTaken() {
	email := "studio@example.com"
	userID := uint(1)
	created, err := s.studio.Create(s.ctx, &models.StudioSettings{UserID: &userID, EmailID: &email})
	s.Require().NoError(err)

	taken, err := s.studio.EmailTaken(s.ctx, email, 0)
	s.Require().NoError(err)
	s.True(taken)

	taken, err = s.studio.EmailTaken(s.ctx, email, created.ID)
	s.Require().NoError(err)
	s.False(taken)

	byUser, err := s.studio.GetByUserID(s.ctx, userID)
	s.Require().NoError(err)
	s.Equal(created.ID, byUser.ID)

	otherUser := uint(2)
	_, err = s.studio.Create(s.ctx, &models.StudioSettings{UserID: &otherUser, EmailID: &email})
	s.ErrorIs(err, ErrDuplicate)
}

func (s *RepositoryTestSuite) TestSuperAdminSettingsSingleton() {
	_, err := s.superAdmin.Get(s.ctx)
	s.ErrorIs(err, ErrNotFound)

	first, err := s.superAdmin.Create(s.ctx, models.DefaultSuperAdminSettings())
	s.Require().NoError(err)

	_, err = s.superAdmin.Create(s.ctx, models.DefaultSuperAdminSettings())
	s.ErrorIs(err, ErrDuplicate)

	updated, err := s.superAdmin.Update(s.ctx, models.Changes{"maintenance_mode": true, "tax_rate": 5.5})
	s.Require().NoError(err)
	s.Equal(first.ID, updated.ID)
	s.True(updated.MaintenanceMode)
	s.InDelta(5.5, updated.TaxRate, 0.001)
	s.Equal("SnapVault", updated.PlatformName)

	deleted, err := s.superAdmin.Delete(s.ctx)
	s.Require().NoError(err)
	s.Equal(first.ID, deleted.ID)

	_, err = s.superAdmin.Get(s.ctx)
	s.ErrorIs(err, ErrNotFound)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
