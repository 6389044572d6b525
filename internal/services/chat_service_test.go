package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripvisito/pkg/utils"
)

func TestSaveMessageAndHistory(t *testing.T) {
	repo := &fakeChatRepo{}
	service := NewChatService(repo)
	sender := uuid.NewString()

	saved, err := service.SaveMessage(context.Background(), "room-1", sender, "hello")
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "room-1", saved.Room)
	assert.Equal(t, sender, saved.SenderID)
	assert.NotZero(t, saved.TimeStamp)

	_, err = service.SaveMessage(context.Background(), "room-2", sender, "elsewhere")
	require.NoError(t, err)

	history, err := service.History(context.Background(), "room-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "hello", history[0].Message)
}

func TestSaveMessageValidation(t *testing.T) {
	service := NewChatService(&fakeChatRepo{})

	_, err := service.SaveMessage(context.Background(), "", uuid.NewString(), "hello")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = service.SaveMessage(context.Background(), "room-1", uuid.NewString(), "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = service.SaveMessage(context.Background(), "room-1", "not-a-uuid", "hello")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestSaveMessageRepoFailure(t *testing.T) {
	repo := &fakeChatRepo{failNext: true}
	service := NewChatService(repo)

	_, err := service.SaveMessage(context.Background(), "room-1", uuid.NewString(), "hello")
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.Empty(t, repo.messages)
}
