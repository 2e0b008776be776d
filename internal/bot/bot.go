package bot

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"clubspot/internal/access"
	"clubspot/internal/club"
	"clubspot/internal/common"
	"clubspot/internal/prefs"
)

// globalPanelKey is the panel-registry key of the board posted via /board.
// Real voice-channel panels are keyed by their channel id.
const globalPanelKey = "global"

type Bot struct {
	token   string
	repo    *club.Repository
	prefs   *prefs.Store
	pending *pendingMoves
	sweeper common.TimedExecutor
}

func New(token string, repo *club.Repository, prefsStore *prefs.Store, moveTTL time.Duration) *Bot {
	bot := &Bot{
		token:   token,
		repo:    repo,
		prefs:   prefsStore,
		pending: newPendingMoves(moveTTL),
	}
	bot.sweeper = common.NewTimedExecutor(moveTTL, bot.pending.Sweep)
	return bot
}

// Run opens the gateway session and blocks until SIGINT/SIGTERM.
func (b *Bot) Run() error {
	discord, err := discordgo.New("Bot " + b.token)
	if err != nil {
		return fmt.Errorf("could not create discord session: %w", err)
	}

	discord.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildVoiceStates
	discord.AddHandler(b.onReady)
	discord.AddHandler(b.onInteraction)

	if err := discord.Open(); err != nil {
		return fmt.Errorf("could not open discord session: %w", err)
	}
	defer discord.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutting down")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	if _, err := s.ApplicationCommandBulkOverwrite(r.User.ID, "", slashCommands()); err != nil {
		log.Error().Err(err).Msg("could not register slash commands")
		return
	}
	log.Info().Str("user", r.User.Username).Msg("clubspot is ready")
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.sweeper.Execute()

	if i.GuildID == "" || i.Member == nil {
		respondText(s, i, "Club boards only live inside a server.")
		return
	}

	var cmd Command
	var err error
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		cmd, err = parseSlash(i.ApplicationCommandData())
	case discordgo.InteractionMessageComponent:
		data := i.MessageComponentData()
		cmd, err = parseComponent(data.CustomID, data.Values)
	default:
		return
	}
	if err != nil {
		log.Warn().Err(err).Str("guild", i.GuildID).Msg("unparseable interaction")
		respondText(s, i, "❌ I did not understand that interaction.")
		return
	}

	b.dispatch(s, i, cmd)
}

// actor builds the access snapshot for whoever triggered the interaction.
// Directory lookups are best effort: a missing state cache degrades to an
// actor with no roles, which can only fail closed.
func (b *Bot) actor(s *discordgo.Session, i *discordgo.InteractionCreate) access.Actor {
	member := i.Member
	actor := access.Actor{
		ID:          member.User.ID,
		Permissions: member.Permissions,
	}
	guild, err := s.State.Guild(i.GuildID)
	if err != nil {
		log.Warn().Err(err).Str("guild", i.GuildID).Msg("guild not in state cache")
		return actor
	}
	roleNames := make(map[string]string, len(guild.Roles))
	for _, role := range guild.Roles {
		roleNames[role.ID] = role.Name
	}
	for _, roleID := range member.Roles {
		if name, ok := roleNames[roleID]; ok {
			actor.RoleNames = append(actor.RoleNames, name)
		}
	}
	for _, voice := range guild.VoiceStates {
		if voice.UserID == actor.ID && voice.ChannelID != "" {
			actor.InVoice = true
			break
		}
	}
	return actor
}

// voiceMembers lists the non-bot users currently in a voice channel.
func (b *Bot) voiceMembers(s *discordgo.Session, guildID, channelID string) []string {
	guild, err := s.State.Guild(guildID)
	if err != nil {
		log.Warn().Err(err).Str("guild", guildID).Msg("guild not in state cache")
		return nil
	}
	var members []string
	for _, voice := range guild.VoiceStates {
		if voice.ChannelID != channelID {
			continue
		}
		if member, err := s.State.Member(guildID, voice.UserID); err == nil && member.User != nil && member.User.Bot {
			continue
		}
		members = append(members, voice.UserID)
	}
	return members
}

type panelEdit struct {
	registryKey string
	channelID   string
	messageID   string
	embed       *discordgo.MessageEmbed
	components  []discordgo.MessageComponent
}

// refreshPanels re-renders every live board message of the guild. Renders
// are built under the community lock; the Discord edits happen after. A
// failed edit means the message is gone, so the panel is forgotten.
func (b *Bot) refreshPanels(s *discordgo.Session, guildID string) {
	var edits []panelEdit
	b.repo.Mutate(guildID, func(c *club.Community) error {
		for registryKey, panel := range c.VCPanels {
			key := panel.ClubKey
			if registryKey == globalPanelKey {
				key = c.CurrentClubKey
			}
			edits = append(edits, panelEdit{
				registryKey: registryKey,
				channelID:   panel.ChannelID,
				messageID:   panel.MessageID,
				embed:       boardEmbed(c, key),
				components:  boardComponents(c, key),
			})
		}
		return nil
	})

	for _, edit := range edits {
		_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
			Channel:    edit.channelID,
			ID:         edit.messageID,
			Embeds:     &[]*discordgo.MessageEmbed{edit.embed},
			Components: &edit.components,
		})
		if err == nil {
			continue
		}
		log.Warn().Err(err).Str("guild", guildID).Str("panel", edit.registryKey).Msg("dropping unreachable panel")
		registryKey := edit.registryKey
		b.repo.Mutate(guildID, func(c *club.Community) error {
			c.RemovePanel(registryKey)
			return nil
		})
	}
}
