package service

import (
	"context"
	"testing"
	"time"

	"lark/internal/mocks"
	"lark/internal/model"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicGate_AuthorizePublicView(t *testing.T) {
	ctx := context.Background()

	newGate := func(ctrl *gomock.Controller) (*PublicGate, *mocks.MockSQLRepositoryInterface) {
		mockSQL := mocks.NewMockSQLRepositoryInterface(ctrl)
		return NewPublicGate(mockSQL, NewStatsService(mockSQL, 0)), mockSQL
	}

	t.Run("public link is viewable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gate, mockSQL := newGate(ctrl)
		mockSQL.EXPECT().GetLinkByID(gomock.Any(), "id-1").
			Return(&model.Link{ID: "id-1", IsActive: true, IsPublicStats: true}, nil)

		link, err := gate.AuthorizePublicView(ctx, "id-1")
		require.NoError(t, err)
		assert.Equal(t, "id-1", link.ID)
	})

	t.Run("private link says private", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gate, mockSQL := newGate(ctrl)
		mockSQL.EXPECT().GetLinkByID(gomock.Any(), "id-1").
			Return(&model.Link{ID: "id-1", IsActive: true, IsPublicStats: false}, nil)

		link, err := gate.AuthorizePublicView(ctx, "id-1")
		assert.Nil(t, link)
		assert.Equal(t, ErrStatsPrivate, err)
	})

	t.Run("missing link is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gate, mockSQL := newGate(ctrl)
		mockSQL.EXPECT().GetLinkByID(gomock.Any(), "missing").Return(nil, assert.AnError)

		link, err := gate.AuthorizePublicView(ctx, "missing")
		assert.Nil(t, link)
		assert.Equal(t, ErrLinkNotFound, err)
	})

	t.Run("admin-disabled link hides as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// Even with public stats enabled, lifecycle must not leak
		gate, mockSQL := newGate(ctrl)
		mockSQL.EXPECT().GetLinkByID(gomock.Any(), "id-1").
			Return(&model.Link{ID: "id-1", IsPublicStats: true, IsDisabledByAdmin: true}, nil)

		link, err := gate.AuthorizePublicView(ctx, "id-1")
		assert.Nil(t, link)
		assert.Equal(t, ErrLinkNotFound, err)
	})

	t.Run("expired link hides as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		past := time.Now().Add(-time.Hour)
		gate, mockSQL := newGate(ctrl)
		mockSQL.EXPECT().GetLinkByID(gomock.Any(), "id-1").
			Return(&model.Link{
				ID: "id-1", IsPublicStats: true,
				IsTemporary: true, ExpiresAt: &past,
			}, nil)

		link, err := gate.AuthorizePublicView(ctx, "id-1")
		assert.Nil(t, link)
		assert.Equal(t, ErrLinkNotFound, err)
	})
}

func TestPublicGate_PublicStats(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates a single authorized link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSQL := mocks.NewMockSQLRepositoryInterface(ctrl)
		mockSQL.EXPECT().GetLinkByID(gomock.Any(), "id-1").
			Return(&model.Link{ID: "id-1", IsActive: true, IsPublicStats: true}, nil)
		mockSQL.EXPECT().GetClickEvents(gomock.Any(), []string{"id-1"}, nil, nil).
			Return([]model.ClickEvent{
				{LinkID: "id-1", IPHash: "h1", Timestamp: time.Now().UTC(), Country: "US"},
			}, nil)

		gate := NewPublicGate(mockSQL, NewStatsService(mockSQL, 0))

		stats, err := gate.PublicStats(ctx, "id-1", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.TotalClicks)
	})

	t.Run("denied link never touches the aggregator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSQL := mocks.NewMockSQLRepositoryInterface(ctrl)
		mockSQL.EXPECT().GetLinkByID(gomock.Any(), "id-1").
			Return(&model.Link{ID: "id-1", IsActive: true, IsPublicStats: false}, nil)

		gate := NewPublicGate(mockSQL, NewStatsService(mockSQL, 0))

		stats, err := gate.PublicStats(ctx, "id-1", nil, nil)
		assert.Nil(t, stats)
		assert.Equal(t, ErrStatsPrivate, err)
	})
}
