package post_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/atulub35/outsider-client-go/internal/post"
	postmock "github.com/atulub35/outsider-client-go/internal/post/mock"
)

func TestFeed_ToggleLike(t *testing.T) {
	initial := post.Post{ID: "1", Title: "SomeTitle", IsLiked: false, LikesCount: 5}

	tests := []struct {
		name       string
		gatewayErr error
		expect     func(t *testing.T, p post.Post, err error)
	}{
		{
			name: "optimistic_flip_kept_on_success",
			expect: func(t *testing.T, p post.Post, err error) {
				require.NoError(t, err)
				assert.True(t, p.IsLiked)
				assert.Equal(t, 6, p.LikesCount)
			},
		},
		{
			name:       "rolled_back_to_pre_toggle_state_on_failure",
			gatewayErr: errors.New("unexpected"),
			expect: func(t *testing.T, p post.Post, err error) {
				require.Error(t, err)
				assert.False(t, p.IsLiked)
				assert.Equal(t, 5, p.LikesCount)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gateway := postmock.NewGateway(ctrl)
			gateway.EXPECT().List(gomock.Any(), "").Return([]post.Post{initial}, nil)
			gateway.EXPECT().ToggleLike(gomock.Any(), "1").Return(tc.gatewayErr)

			feed := post.NewFeed(gateway)
			require.NoError(t, feed.Refresh(context.Background(), ""))

			err := feed.ToggleLike(context.Background(), "1")
			posts := feed.Posts()
			require.Len(t, posts, 1)
			tc.expect(t, posts[0], err)
		})
	}
}

func TestFeed_ToggleLike_AppliedBeforeCallResolves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	observed := make(chan post.Post, 1)

	gateway := postmock.NewGateway(ctrl)
	gateway.EXPECT().List(gomock.Any(), "").Return([]post.Post{{ID: "1", LikesCount: 5}}, nil)

	feed := post.NewFeed(gateway)
	require.NoError(t, feed.Refresh(context.Background(), ""))

	gateway.EXPECT().ToggleLike(gomock.Any(), "1").DoAndReturn(func(context.Context, string) error {
		observed <- feed.Posts()[0]
		return nil
	})

	require.NoError(t, feed.ToggleLike(context.Background(), "1"))

	duringCall := <-observed
	assert.True(t, duringCall.IsLiked)
	assert.Equal(t, 6, duringCall.LikesCount)
}

func TestFeed_ToggleLike_UnknownPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := post.NewFeed(postmock.NewGateway(ctrl))

	err := feed.ToggleLike(context.Background(), "missing")
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestFeed_Create_SucceedsWhenRefreshFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := post.Post{ID: "1", Title: "SomeTitle"}
	created := post.Post{ID: "2", Title: "NewTitle"}

	gateway := postmock.NewGateway(ctrl)
	gateway.EXPECT().List(gomock.Any(), "").Return([]post.Post{existing}, nil)
	gateway.EXPECT().Create(gomock.Any(), post.Draft{Title: "NewTitle", Content: "Body"}).Return(created, nil)
	gateway.EXPECT().List(gomock.Any(), "").Return(nil, errors.New("unexpected"))

	feed := post.NewFeed(gateway)
	require.NoError(t, feed.Refresh(context.Background(), ""))

	got, err := feed.Create(context.Background(), post.Draft{Title: "NewTitle", Content: "Body"})
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// the created post is not lost while the collection could not be
	// reloaded
	posts := feed.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, "2", posts[1].ID)
}

func TestFeed_Delete_RemovesLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := postmock.NewGateway(ctrl)
	gateway.EXPECT().List(gomock.Any(), "").Return([]post.Post{{ID: "1"}, {ID: "2"}}, nil)
	gateway.EXPECT().Delete(gomock.Any(), "1").Return(nil)

	feed := post.NewFeed(gateway)
	require.NoError(t, feed.Refresh(context.Background(), ""))
	require.NoError(t, feed.Delete(context.Background(), "1"))

	posts := feed.Posts()
	require.Len(t, posts, 1)
	assert.Equal(t, "2", posts[0].ID)
}
