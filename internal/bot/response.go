package bot

import (
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"clubspot/internal/access"
	"clubspot/internal/club"
)

// The rejections we show verbatim; anything else is an internal error and
// gets a generic reply.
var knownErrors = []error{
	club.ErrNoFreeClubSlots,
	club.ErrLastClubProtected,
	club.ErrClubHasOccupiedSeats,
	club.ErrEmptyName,
	club.ErrSeatTaken,
	club.ErrNotOccupant,
	club.ErrUnknownFormation,
	club.ErrUnknownClub,
	club.ErrUnknownSeat,
	access.ErrNotManager,
	access.ErrBlocked,
	errNotSeated,
}

func respondText(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Warn().Err(err).Msg("could not respond to interaction")
	}
}

// acknowledge closes a component interaction without posting anything; the
// panel itself is refreshed separately.
func acknowledge(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		log.Warn().Err(err).Msg("could not acknowledge interaction")
	}
}

func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, opErr error) {
	for _, known := range knownErrors {
		if errors.Is(opErr, known) {
			respondText(s, i, "❌ "+opErr.Error())
			return
		}
	}
	log.Error().Err(opErr).Str("guild", i.GuildID).Msg("internal error handling interaction")
	respondText(s, i, "❌ Something went wrong, please try again.")
}
