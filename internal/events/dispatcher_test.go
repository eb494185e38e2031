package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishFansOutByType(t *testing.T) {
	d := NewInMemoryDispatcher()

	var registered, authenticated int
	d.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		registered++
		return nil
	})
	d.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		registered++
		return nil
	})
	d.Subscribe(EventUserAuthenticated, func(context.Context, Event) error {
		authenticated++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), NewEvent(EventUserRegistered, 1, nil)))
	assert.Equal(t, 2, registered)
	assert.Zero(t, authenticated)
}

func TestDispatcher_HandlerErrorsAreJoined(t *testing.T) {
	d := NewInMemoryDispatcher()
	first := errors.New("first")

	var secondRan bool
	d.Subscribe(EventUserAuthenticated, func(context.Context, Event) error { return first })
	d.Subscribe(EventUserAuthenticated, func(context.Context, Event) error {
		secondRan = true
		return nil
	})

	err := d.Publish(context.Background(), NewEvent(EventUserAuthenticated, 2, nil))
	assert.ErrorIs(t, err, first)
	assert.True(t, secondRan)
}

func TestDispatcher_NoListeners(t *testing.T) {
	assert.NoError(t, NewInMemoryDispatcher().Publish(context.Background(), NewEvent(EventUserRegistered, 3, nil)))
}

func TestNewEvent(t *testing.T) {
	a := NewEvent(EventUserRegistered, 5, UserRegisteredPayload{Email: "a@b.co", Role: "USER"})
	b := NewEvent(EventUserRegistered, 5, nil)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, int64(5), a.UserID)
	assert.False(t, a.Timestamp.IsZero())
}
