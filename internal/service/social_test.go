package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareActivity(t *testing.T) {
	s := newServices(t)
	alice := s.signUp(t, "alice")
	run, err := s.activities.LogActivity(alice, "running", 30, 5, nil)
	require.NoError(t, err)

	postID, err := s.social.ShareActivity(alice, run.ID, "morning run")
	require.NoError(t, err)
	assert.NotZero(t, postID)

	feed, err := s.social.Feed()
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, postID, feed[0].PostID)
	assert.Equal(t, "alice", feed[0].Username)
	assert.Equal(t, "running", feed[0].ActivityType)
	assert.Equal(t, 30, feed[0].DurationMinutes)
	assert.Equal(t, 5.0, feed[0].DistanceKm)
	assert.Equal(t, "morning run", feed[0].Caption)
	assert.WithinDuration(t, time.Now(), feed[0].Timestamp, time.Minute)
}

func TestShareActivityNotOwner(t *testing.T) {
	s := newServices(t)
	alice := s.signUp(t, "alice")
	bob := s.signUp(t, "bob")
	bobsRun, err := s.activities.LogActivity(bob, "running", 30, 5, nil)
	require.NoError(t, err)

	_, err = s.social.ShareActivity(alice, bobsRun.ID, "cheat")
	assert.ErrorIs(t, err, ErrNotOwner)

	var count int
	require.NoError(t, s.db.Get(&count, `SELECT COUNT(*) FROM posts WHERE activity_id = $1`, bobsRun.ID))
	assert.Zero(t, count)
}

func TestShareActivityNotFound(t *testing.T) {
	s := newServices(t)
	alice := s.signUp(t, "alice")

	_, err := s.social.ShareActivity(alice, 12345, "ghost")
	assert.ErrorIs(t, err, ErrActivityNotFound)

	feed, err := s.social.Feed()
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestFeedNewestFirstAcrossUsers(t *testing.T) {
	s := newServices(t)
	alice := s.signUp(t, "alice")
	bob := s.signUp(t, "bob")
	run, err := s.activities.LogActivity(alice, "running", 30, 5, nil)
	require.NoError(t, err)
	swim, err := s.activities.LogActivity(bob, "swimming", 40, 1.2, nil)
	require.NoError(t, err)

	clock := time.Date(2026, 10, 14, 7, 0, 0, 0, time.UTC)
	s.social.now = func() time.Time {
		clock = clock.Add(250 * time.Millisecond)
		return clock
	}

	shares := []struct {
		userID     int64
		activityID int64
		caption    string
	}{
		{alice, run.ID, "first"},
		{bob, swim.ID, "second"},
		{alice, run.ID, "third"},
		{bob, swim.ID, "fourth"},
	}
	for _, share := range shares {
		_, err := s.social.ShareActivity(share.userID, share.activityID, share.caption)
		require.NoError(t, err)
	}

	feed, err := s.social.Feed()
	require.NoError(t, err)
	require.Len(t, feed, 4)

	var captions []string
	for i, entry := range feed {
		captions = append(captions, entry.Caption)
		if i > 0 {
			assert.True(t, entry.Timestamp.Before(feed[i-1].Timestamp))
		}
	}
	assert.Equal(t, []string{"fourth", "third", "second", "first"}, captions)
	assert.Equal(t, "bob", feed[0].Username)
	assert.Equal(t, "alice", feed[1].Username)
}
