package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/samba/internal/common"
	"github.com/dmitrijs2005/samba/internal/dbx"
	"github.com/dmitrijs2005/samba/internal/models"
	messagesrepo "github.com/dmitrijs2005/samba/internal/repositories/messages"
	usersrepo "github.com/dmitrijs2005/samba/internal/repositories/users"
)

// fakeUsersRepo is an in-memory users.Repository for service tests.
type fakeUsersRepo struct {
	byUsername map[string]*models.User
	byID       map[int64]*models.User
	nextID     int64

	saveErr   error
	deleteErr error

	saveCalls   int
	lookupCalls int
}

func newFakeUsersRepo(existing ...*models.User) *fakeUsersRepo {
	f := &fakeUsersRepo{
		byUsername: make(map[string]*models.User),
		byID:       make(map[int64]*models.User),
		nextID:     1,
	}
	for _, u := range existing {
		if u.ID >= f.nextID {
			f.nextID = u.ID + 1
		}
		f.byUsername[u.Username] = u
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	f.lookupCalls++
	if u, ok := f.byUsername[username]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	f.lookupCalls++
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetAll(ctx context.Context) ([]*models.User, error) {
	var result []*models.User
	for _, u := range f.byID {
		cp := *u
		result = append(result, &cp)
	}
	return result, nil
}

func (f *fakeUsersRepo) Save(ctx context.Context, user *models.User) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	if !user.Saved() {
		if _, ok := f.byUsername[user.Username]; ok {
			return common.ErrorAlreadyExists
		}
		user.ID = f.nextID
		f.nextID++
	}
	cp := *user
	f.byUsername[user.Username] = &cp
	f.byID[user.ID] = &cp
	return nil
}

func (f *fakeUsersRepo) Delete(ctx context.Context, user *models.User) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if !user.Saved() {
		return nil
	}
	delete(f.byUsername, user.Username)
	delete(f.byID, user.ID)
	user.ID = models.UnsavedID
	return nil
}

// fakeMessagesRepo is an in-memory messages.Repository for service tests.
type fakeMessagesRepo struct {
	stored []*models.Message
	nextID int64

	saveErr error
}

func newFakeMessagesRepo(existing ...*models.Message) *fakeMessagesRepo {
	f := &fakeMessagesRepo{nextID: 1}
	for _, m := range existing {
		if m.ID >= f.nextID {
			f.nextID = m.ID + 1
		}
		f.stored = append(f.stored, m)
	}
	return f
}

func (f *fakeMessagesRepo) GetAll(ctx context.Context) ([]*models.Message, error) {
	result := make([]*models.Message, 0, len(f.stored))
	for _, m := range f.stored {
		cp := *m
		result = append(result, &cp)
	}
	return result, nil
}

func (f *fakeMessagesRepo) Save(ctx context.Context, msg *models.Message) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if !msg.Saved() {
		msg.ID = f.nextID
		f.nextID++
		cp := *msg
		f.stored = append(f.stored, &cp)
		return nil
	}
	for i, m := range f.stored {
		if m.ID == msg.ID {
			cp := *m
			cp.Text = msg.Text
			f.stored[i] = &cp
		}
	}
	return nil
}

// fakeRepoManager vends the fakes regardless of the DBTX it receives.
type fakeRepoManager struct {
	u *fakeUsersRepo
	m *fakeMessagesRepo
}

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return f.u }
func (f *fakeRepoManager) Messages(db dbx.DBTX) messagesrepo.Repository { return f.m }
