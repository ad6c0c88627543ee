package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/francis-villapando/pulsepoint/internal/database"
	"github.com/francis-villapando/pulsepoint/internal/models"
)

func createTestPoll(t *testing.T, expires time.Time) models.Poll {
	t.Helper()
	poll := models.Poll{
		Question:  "Priority for next year's budget?",
		ExpiresAt: expires,
		IsActive:  true,
		Options: []models.PollOption{
			{Text: "Road repairs"},
			{Text: "Park improvements"},
		},
	}
	if err := database.DB.Create(&poll).Error; err != nil {
		t.Fatalf("failed to create test poll: %v", err)
	}
	return poll
}

func TestCreatePoll_WithOptions(t *testing.T) {
	SetupTestDB()

	c, w := testContext(t, "POST", "/api/admin/polls", PollCreate{
		Question:  "Preferred time for community meetings?",
		ExpiresAt: "2026-02-01",
		Options:   []string{"Weekday evenings", "Saturday mornings", "Sunday afternoons"},
	})
	Polls.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Poll
	json.Unmarshal(w.Body.Bytes(), &created)
	assert.NotZero(t, created.ID)
	assert.Len(t, created.Options, 3)
	assert.True(t, created.IsActive)
	assert.Zero(t, created.TotalVotes)
}

func TestCreatePoll_RequiresTwoOptions(t *testing.T) {
	SetupTestDB()

	c, w := testContext(t, "POST", "/api/admin/polls", PollCreate{
		Question:  "Only one choice?",
		ExpiresAt: "2026-02-01",
		Options:   []string{"The only option"},
	})
	Polls.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVotePoll_IncrementsCounters(t *testing.T) {
	SetupTestDB()

	poll := createTestPoll(t, time.Now().Add(24*time.Hour))
	id := fmt.Sprintf("%d", poll.ID)

	c, w := testContext(t, "POST", "/api/polls/"+id+"/vote", map[string]interface{}{
		"optionId": poll.Options[0].ID,
	})
	VotePoll(withID(c, id))

	assert.Equal(t, http.StatusOK, w.Code)

	var voted models.Poll
	json.Unmarshal(w.Body.Bytes(), &voted)
	assert.Equal(t, 1, voted.TotalVotes)
	if assert.Len(t, voted.Options, 2) {
		assert.Equal(t, 1, voted.Options[0].Votes)
		assert.Equal(t, 0, voted.Options[1].Votes)
	}
}

func TestVotePoll_DuplicateRejected(t *testing.T) {
	SetupTestDB()

	poll := createTestPoll(t, time.Now().Add(24*time.Hour))
	id := fmt.Sprintf("%d", poll.ID)

	c, w := testContext(t, "POST", "/api/polls/"+id+"/vote", map[string]interface{}{
		"optionId": poll.Options[0].ID,
	})
	VotePoll(withID(c, id))
	assert.Equal(t, http.StatusOK, w.Code)

	// Same client voting again
	c, w = testContext(t, "POST", "/api/polls/"+id+"/vote", map[string]interface{}{
		"optionId": poll.Options[1].ID,
	})
	VotePoll(withID(c, id))
	assert.Equal(t, http.StatusConflict, w.Code)

	var after models.Poll
	database.DB.First(&after, poll.ID)
	assert.Equal(t, 1, after.TotalVotes)
}

func TestVotePoll_ExpiredRejected(t *testing.T) {
	SetupTestDB()

	poll := createTestPoll(t, time.Now().Add(-time.Hour))
	id := fmt.Sprintf("%d", poll.ID)

	c, w := testContext(t, "POST", "/api/polls/"+id+"/vote", map[string]interface{}{
		"optionId": poll.Options[0].ID,
	})
	VotePoll(withID(c, id))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVotePoll_ArchivedRejected(t *testing.T) {
	SetupTestDB()

	poll := createTestPoll(t, time.Now().Add(24*time.Hour))
	database.DB.Model(&poll).Update("is_archived", true)
	id := fmt.Sprintf("%d", poll.ID)

	c, w := testContext(t, "POST", "/api/polls/"+id+"/vote", map[string]interface{}{
		"optionId": poll.Options[0].ID,
	})
	VotePoll(withID(c, id))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListActivePolls_ExcludesArchived(t *testing.T) {
	SetupTestDB()

	visible := createTestPoll(t, time.Now().Add(24*time.Hour))
	hidden := createTestPoll(t, time.Now().Add(24*time.Hour))
	database.DB.Model(&hidden).Update("is_archived", true)

	c, w := testContext(t, "GET", "/api/polls", nil)
	Polls.ListActive(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var listed []models.Poll
	json.Unmarshal(w.Body.Bytes(), &listed)
	if assert.Len(t, listed, 1) {
		assert.Equal(t, visible.ID, listed[0].ID)
		assert.Len(t, listed[0].Options, 2)
	}
}
