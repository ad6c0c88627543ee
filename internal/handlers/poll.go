package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/francis-villapando/pulsepoint/internal/content"
	"github.com/francis-villapando/pulsepoint/internal/database"
	"github.com/francis-villapando/pulsepoint/internal/models"
)

type PollCreate struct {
	Question  string   `json:"question" binding:"required"`
	ExpiresAt string   `json:"expiresAt" binding:"required"`
	Options   []string `json:"options" binding:"required,min=2,dive,required"`
}

type PollUpdate struct {
	Question  *string `json:"question" binding:"omitnil,min=1"`
	ExpiresAt *string `json:"expiresAt" binding:"omitnil,min=1"`
	IsActive  *bool   `json:"isActive"`
}

// Polls is the fourth instantiation of the archive-aware contract. Option
// rows ride along on every read; votes go through VotePoll, never Update.
var Polls = content.NewResource(content.Definition[models.Poll, PollCreate, PollUpdate]{
	Name:        "poll",
	Plural:      "polls",
	CachePrefix: "polls",
	ActiveOrder: "created_at DESC",
	Preloads:    []string{"Options"},
	Build: func(in PollCreate) (models.Poll, error) {
		expires, err := parseDate(in.ExpiresAt)
		if err != nil {
			return models.Poll{}, err
		}

		options := make([]models.PollOption, 0, len(in.Options))
		for _, text := range in.Options {
			options = append(options, models.PollOption{Text: text})
		}

		return models.Poll{
			Question:  in.Question,
			ExpiresAt: expires,
			IsActive:  true,
			Options:   options,
		}, nil
	},
	Apply: func(row *models.Poll, in PollUpdate) error {
		if in.Question != nil {
			row.Question = *in.Question
		}
		if in.ExpiresAt != nil {
			expires, err := parseDate(*in.ExpiresAt)
			if err != nil {
				return err
			}
			row.ExpiresAt = expires
		}
		if in.IsActive != nil {
			row.IsActive = *in.IsActive
		}
		return nil
	},
})

// VotePoll records one vote per client per poll, keyed by client IP. The
// option and poll counters move together inside a transaction.
func VotePoll(c *gin.Context) {
	pollID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var req struct {
		OptionID uint `json:"optionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	voterKey := c.ClientIP()

	var poll models.Poll
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Options").First(&poll, "id = ?", pollID).Error; err != nil {
			return err
		}

		if poll.IsArchived || !poll.IsActive {
			return errPollClosed
		}
		if time.Now().After(poll.ExpiresAt) {
			return errPollExpired
		}

		var option models.PollOption
		if err := tx.First(&option, "id = ? AND poll_id = ?", req.OptionID, pollID).Error; err != nil {
			return err
		}

		var existing models.PollVote
		if err := tx.First(&existing, "poll_id = ? AND voter_key = ?", pollID, voterKey).Error; err == nil {
			return errAlreadyVoted
		} else if err != gorm.ErrRecordNotFound {
			return err
		}

		vote := models.PollVote{PollID: poll.ID, OptionID: option.ID, VoterKey: voterKey}
		if err := tx.Create(&vote).Error; err != nil {
			return err
		}

		if err := tx.Model(&option).Update("votes", gorm.Expr("votes + 1")).Error; err != nil {
			return err
		}
		return tx.Model(&poll).Update("total_votes", gorm.Expr("total_votes + 1")).Error
	})

	switch txErr {
	case nil:
		// Re-read so the response carries the new counters
		database.DB.Preload("Options").First(&poll, "id = ?", pollID)
		database.CacheInvalidate("polls*")
		c.JSON(http.StatusOK, poll)
	case gorm.ErrRecordNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Poll or option not found"})
	case errAlreadyVoted:
		c.JSON(http.StatusConflict, gin.H{"error": "You have already voted on this poll"})
	case errPollClosed, errPollExpired:
		c.JSON(http.StatusBadRequest, gin.H{"error": txErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record vote"})
	}
}

var (
	errAlreadyVoted = sentinelError("already voted")
	errPollClosed   = sentinelError("Poll is closed")
	errPollExpired  = sentinelError("Poll has expired")
)

type sentinelError string

func (e sentinelError) Error() string { return string(e) }
