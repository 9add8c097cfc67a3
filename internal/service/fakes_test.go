package service

import (
	"context"
	"errors"

	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/transfer"
)

type updateCall struct {
	id int64
	pu transfer.PostUpdate
}

type fakeGateway struct {
	posts     []models.Post
	listErr   error
	createErr error
	updateErr error

	listCalls int
	created   []transfer.PostCreation
	updates   []updateCall
}

func (f *fakeGateway) ListScheduledPosts(ctx context.Context) ([]models.Post, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.posts, nil
}

func (f *fakeGateway) CreatePost(ctx context.Context, pc *transfer.PostCreation) (*models.Post, error) {
	f.created = append(f.created, *pc)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Post{ID: 100, Content: pc.Content, ScheduledTime: pc.ScheduledTime, Status: models.PostStatusScheduled}, nil
}

func (f *fakeGateway) UpdatePost(ctx context.Context, postID int64, pu *transfer.PostUpdate) (*models.Post, error) {
	f.updates = append(f.updates, updateCall{id: postID, pu: *pu})
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.Post{ID: postID, Content: pu.Content, ScheduledTime: pu.ScheduledTime}, nil
}

func (f *fakeGateway) VerifySession(ctx context.Context) (*transfer.VerifyResponse, error) {
	return &transfer.VerifyResponse{Authenticated: true}, nil
}

func (f *fakeGateway) Logout(ctx context.Context) error { return nil }

var errBoom = errors.New("boom")
