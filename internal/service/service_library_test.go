package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiecchuot/player-server/internal/content"
	"github.com/xiecchuot/player-server/internal/logger"
	"github.com/xiecchuot/player-server/internal/mock"
	"github.com/xiecchuot/player-server/internal/store"
	"github.com/xiecchuot/player-server/models"
	"go.uber.org/mock/gomock"
)

func newTestLibrarySvc(t *testing.T, ctrl *gomock.Controller) (LibraryService, *mock.MockTrackRepository, *mock.MockStore) {
	t.Helper()
	mockRepo := mock.NewMockTrackRepository(ctrl)
	mockContent := mock.NewMockStore(ctrl)
	return NewLibraryService(mockRepo, mockContent, logger.Nop()), mockRepo, mockContent
}

func TestLibraryService_UploadTrack_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockContent := newTestLibrarySvc(t, ctrl)
	ctx := context.Background()

	track := models.Track{
		UserID:    uuid.New(),
		Name:      "song",
		FileName:  "song.mp3",
		MimeType:  "audio/mpeg",
		SizeBytes: 18,
	}
	audio := bytes.NewReader([]byte("ID3 fake mp3 bytes"))

	gomock.InOrder(
		mockContent.EXPECT().Upload(ctx, gomock.Any(), audio, track.SizeBytes, "audio/mpeg").Return(nil),
		mockRepo.EXPECT().CreateTrack(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, tr models.Track) (models.Track, error) {
				assert.NotEqual(t, uuid.Nil, tr.ID)
				return tr, nil
			},
		),
	)

	created, err := svc.UploadTrack(ctx, track, audio)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestLibraryService_UploadTrack_CleansUpOnMetadataFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockContent := newTestLibrarySvc(t, ctrl)
	ctx := context.Background()

	track := models.Track{UserID: uuid.New(), Name: "song", MimeType: "audio/mpeg"}
	audio := bytes.NewReader(nil)

	var uploadedKey string
	gomock.InOrder(
		mockContent.EXPECT().Upload(ctx, gomock.Any(), audio, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, key string, _ io.Reader, _ int64, _ string) error {
				uploadedKey = key
				return nil
			},
		),
		mockRepo.EXPECT().CreateTrack(ctx, gomock.Any()).Return(models.Track{}, errors.New("insert failed")),
		mockContent.EXPECT().Delete(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, key string) error {
				assert.Equal(t, uploadedKey, key, "cleanup must target the uploaded object")
				return nil
			},
		),
	)

	_, err := svc.UploadTrack(ctx, track, audio)
	assert.Error(t, err)
}

func TestLibraryService_UploadTrack_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestLibrarySvc(t, ctrl)

	_, err := svc.UploadTrack(context.Background(), models.Track{UserID: uuid.New()}, bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestLibraryService_GetTrackContent_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockContent := newTestLibrarySvc(t, ctrl)
	ctx := context.Background()

	userID, trackID := uuid.New(), uuid.New()
	track := models.Track{ID: trackID, UserID: userID, Name: "song", MimeType: "audio/mpeg"}
	audio := []byte("audio bytes")

	mockRepo.EXPECT().GetTrack(ctx, userID, trackID).Return(track, nil)
	mockContent.EXPECT().Download(ctx, trackID.String()).Return(io.NopCloser(bytes.NewReader(audio)), nil)

	got, err := svc.GetTrackContent(ctx, userID, trackID)
	require.NoError(t, err)
	defer got.Content.Close()

	data, err := io.ReadAll(got.Content)
	require.NoError(t, err)
	assert.Equal(t, audio, data)
	assert.Equal(t, track.MimeType, got.Track.MimeType)
}

func TestLibraryService_GetTrackContent_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestLibrarySvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetTrack(ctx, gomock.Any(), gomock.Any()).Return(models.Track{}, store.ErrTrackNotFound)

	_, err := svc.GetTrackContent(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, store.ErrTrackNotFound)
}

func TestLibraryService_GetTrackContent_MissingObject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockContent := newTestLibrarySvc(t, ctrl)
	ctx := context.Background()

	userID, trackID := uuid.New(), uuid.New()
	track := models.Track{ID: trackID, UserID: userID, Name: "song"}

	mockRepo.EXPECT().GetTrack(ctx, userID, trackID).Return(track, nil)
	mockContent.EXPECT().Download(ctx, trackID.String()).Return(nil, content.ErrObjectNotFound)

	_, err := svc.GetTrackContent(ctx, userID, trackID)
	assert.ErrorIs(t, err, store.ErrTrackNotFound,
		"a metadata row without stored bytes must read as a missing track")
}

func TestLibraryService_DeleteTrack_RemovesContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockContent := newTestLibrarySvc(t, ctrl)
	ctx := context.Background()

	userID, trackID := uuid.New(), uuid.New()

	gomock.InOrder(
		mockRepo.EXPECT().DeleteTrack(ctx, userID, trackID).Return(nil),
		mockContent.EXPECT().Delete(ctx, trackID.String()).Return(nil),
	)

	require.NoError(t, svc.DeleteTrack(ctx, userID, trackID))
}

func TestLibraryService_DeleteTrack_ContentDeleteFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockContent := newTestLibrarySvc(t, ctrl)
	ctx := context.Background()

	userID, trackID := uuid.New(), uuid.New()

	mockRepo.EXPECT().DeleteTrack(ctx, userID, trackID).Return(nil)
	mockContent.EXPECT().Delete(ctx, trackID.String()).Return(errors.New("object store down"))

	assert.NoError(t, svc.DeleteTrack(ctx, userID, trackID))
}

func TestLibraryService_ToggleLike(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestLibrarySvc(t, ctrl)
	ctx := context.Background()

	userID, trackID := uuid.New(), uuid.New()
	mockRepo.EXPECT().ToggleLike(ctx, userID, trackID).Return(true, nil)

	liked, err := svc.ToggleLike(ctx, userID, trackID)
	require.NoError(t, err)
	assert.True(t, liked)
}
