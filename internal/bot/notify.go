package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"clubspot/internal/club"
)

// NotificationOutcome records one direct-message attempt from a queue
// drain, so callers can see who was actually reachable.
type NotificationOutcome struct {
	UserID    string
	Delivered bool
}

// notifyVacancies DMs every drained waiter once, best effort. Board state
// is already committed by the time this runs, so delivery failures are
// logged and skipped, never retried or re-queued.
func (b *Bot) notifyVacancies(s *discordgo.Session, clubName string, vacancies []club.Vacancy) []NotificationOutcome {
	var outcomes []NotificationOutcome
	for _, vacancy := range vacancies {
		text := fmt.Sprintf("The **%s** spot (seat %d) in **%s** just opened up. First come, first served!",
			vacancy.Label, vacancy.SeatIndex+1, clubName)
		for _, userID := range vacancy.Waiters {
			outcomes = append(outcomes, NotificationOutcome{
				UserID:    userID,
				Delivered: b.directMessage(s, userID, text) == nil,
			})
		}
	}
	for _, outcome := range outcomes {
		if !outcome.Delivered {
			log.Warn().Str("user", outcome.UserID).Msg("could not deliver seat notification")
		}
	}
	return outcomes
}

func (b *Bot) directMessage(s *discordgo.Session, userID, text string) error {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		return err
	}
	_, err = s.ChannelMessageSend(channel.ID, text)
	return err
}
