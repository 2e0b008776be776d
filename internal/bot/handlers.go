package bot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"clubspot/internal/access"
	"clubspot/internal/catalog"
	"clubspot/internal/club"
)

var errNotSeated = errors.New("you don't hold a spot in this club")

// resolveKey maps the "current club" marker (0) to the club the global
// panel shows.
func resolveKey(c *club.Community, key int) int {
	if key == 0 {
		return c.CurrentClubKey
	}
	return key
}

func (b *Bot) dispatch(s *discordgo.Session, i *discordgo.InteractionCreate, cmd Command) {
	switch cmd := cmd.(type) {
	case ShowBoard:
		if i.Type == discordgo.InteractionMessageComponent {
			// Club tab on the panel: switch, don't post a new board.
			b.handleSelectClub(s, i, SelectClub{ClubKey: cmd.ClubKey})
			return
		}
		b.handlePostBoard(s, i, cmd)
	case SelectClub:
		b.handleSelectClub(s, i, cmd)
	case ClaimSeat:
		b.handleClaimSeat(s, i, cmd)
	case LeaveSeat:
		b.handleLeaveSeat(s, i, cmd)
	case JoinWaitlist:
		b.handleJoinWaitlist(s, i, cmd)
	case MarkMove:
		b.handleMarkMove(s, i, cmd)
	case CompleteMove:
		b.handleCompleteMove(s, i, cmd)
	case AssignSeat:
		b.handleAssignSeat(s, i, cmd)
	case ResetClub:
		b.handleResetClub(s, i, cmd)
	case EnableClub:
		b.handleEnableClub(s, i)
	case DisableClub:
		b.handleDisableClub(s, i, cmd)
	case RenameClub:
		b.handleRenameClub(s, i, cmd)
	case ChangeFormation:
		b.handleChangeFormation(s, i, cmd)
	case SetVoiceLink:
		b.handleSetVoiceLink(s, i, cmd)
	case SetBlocked:
		b.handleSetBlocked(s, i, cmd)
	case SetPrefs:
		b.handleSetPrefs(s, i, cmd)
	case ShowPrefs:
		b.handleShowPrefs(s, i)
	case SmartAssign:
		b.handleSmartAssign(s, i, cmd)
	case ReadyCheck:
		b.handleReadyCheck(s, i, cmd)
	default:
		log.Error().Type("command", cmd).Msg("command variant without a handler")
		respondText(s, i, "❌ Something went wrong, please try again.")
	}
}

func (b *Bot) handlePostBoard(s *discordgo.Session, i *discordgo.InteractionCreate, cmd ShowBoard) {
	var embed *discordgo.MessageEmbed
	var components []discordgo.MessageComponent
	err := b.repo.Mutate(i.GuildID, func(c *club.Community) error {
		if cmd.ClubKey != 0 {
			if err := c.SelectClub(cmd.ClubKey); err != nil {
				return err
			}
		}
		embed = boardEmbed(c, c.CurrentClubKey)
		components = boardComponents(c, c.CurrentClubKey)
		return nil
	})
	if err != nil {
		respondError(s, i, err)
		return
	}

	message, err := s.ChannelMessageSendComplex(i.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
	if err != nil {
		log.Warn().Err(err).Str("channel", i.ChannelID).Msg("could not post board")
		respondText(s, i, "❌ I could not post the board in this channel.")
		return
	}
	b.repo.Mutate(i.GuildID, func(c *club.Community) error {
		c.SetPanel(globalPanelKey, club.Panel{
			ClubKey:   c.CurrentClubKey,
			ChannelID: i.ChannelID,
			MessageID: message.ID,
		})
		return nil
	})
	respondText(s, i, "Board posted.")
}

func (b *Bot) handleSelectClub(s *discordgo.Session, i *discordgo.InteractionCreate, cmd SelectClub) {
	var clubName string
	err := b.repo.Mutate(i.GuildID, func(c *club.Community) error {
		if err := c.SelectClub(cmd.ClubKey); err != nil {
			return err
		}
		record, _ := c.Club(cmd.ClubKey)
		clubName = record.Name
		return nil
	})
	if err != nil {
		respondError(s, i, err)
		return
	}
	if i.Type == discordgo.InteractionMessageComponent {
		acknowledge(s, i)
	} else {
		respondText(s, i, fmt.Sprintf("The board now shows **%s**.", clubName))
	}
	b.refreshPanels(s, i.GuildID)
}

func (b *Bot) handleClaimSeat(s *discordgo.Session, i *discordgo.InteractionCreate, cmd ClaimSeat) {
	actor := b.actor(s, i)
	var clubName string
	var vacancies []club.Vacancy
	err := b.repo.Mutate(i.GuildID, func(c *club.Community) error {
		key := resolveKey(c, cmd.ClubKey)
		record, err := c.Club(key)
		if err != nil {
			return err
		}
		clubName = record.Name
		vacancies, err = c.ClaimSeat(key, cmd.SeatIndex, actor.ID)
		return err
	})
	if err != nil {
		respondError(s, i, err)
		return
	}
	acknowledge(s, i)
	b.notifyVacancies(s, clubName, vacancies)
	b.refreshPanels(s, i.GuildID)
}

func (b *Bot) handleLeaveSeat(s *discordgo.Session, i *discordgo.InteractionCreate, cmd LeaveSeat) {
	actor := b.actor(s, i)
	var clubName string
	var vacancies []club.Vacancy
	err := b.repo.Mutate(i.GuildID, func(c *club.Community) error {
		key := resolveKey(c, cmd.ClubKey)
		record, err := c.Club(key)
		if err != nil {
			return err
		}
		clubName = record.Name
		board, err := c.Board(key)
		if err != nil {
			return err
		}
		for index, seat := range board.Seats {
			if seat.Occupant == club.Occupant(actor.ID) {
				vacancies, err = c.VacateSeat(key, index, actor.ID)
				return err
			}
		}
		return errNotSeated
	})
	if err != nil {
		respondError(s, i, err)
		return
	}
	acknowledge(s, i)
	b.notifyVacancies(s, clubName, vacancies)
	b.refreshPanels(s, i.GuildID)
}

func (b *Bot) handleJoinWaitlist(s *discordgo.Session, i *discordgo.InteractionCreate, cmd JoinWaitlist) {
	actor := b.actor(s, i)
	var label string
	err := b.repo.Mutate(i.GuildID, func(c *club.Community) error {
		key := resolveKey(c, cmd.ClubKey)
		board, err := c.Board(key)
		if err != nil {
			return err
		}
		if err := c.Enqueue(key, cmd.SeatIndex, actor.ID); err != nil {
			return err
		}
		label = board.Seats[cmd.SeatIndex].Label
		return nil
	})
	if err != nil {
		respondError(s, i, err)
		return
	}
	respondText(s, i, fmt.Sprintf("You'll get a DM when the **%s** spot (seat %d) frees up.", label, cmd.SeatIndex+1))
}

func (b *Bot) handleMarkMove(s *discordgo.Session, i *discordgo.InteractionCreate, cmd MarkMove) {
	actor := b.actor(s, i)
	err := b.repo.Mutate(i.GuildID, func(c *club.Community) error {
		if err := access.CheckMoveOthers(actor, c.IsBlocked); err != nil {
			return err
		}
		board, err := c.Board(cmd.ClubKey)
		if err != nil {
			return err
		}
		if cmd.SeatIndex < 0 || cmd.SeatIndex >= len(board.Seats) {
			return club.ErrUnknownSeat
		}
		return nil
	})
	if err != nil {
		respondError(s, i, err)
		return
	}
	b.pending.Mark(i.GuildID, actor.ID, cmd.ClubKey, cmd.SeatIndex)
	respondText(s, i, "Got it — now pick the destination seat.")
}

func (b *Bot) handleCompleteMove(s *discordgo.Session, i *discordgo.InteractionCreate, cmd CompleteMove) {
	actor := b.actor(s, i)
	move, ok := b.pending.Take(i.GuildID, actor.ID, cmd.ClubKey)
	if !ok {
		respondText(s, i, "Pick who to move first.")
		return
	}
	var clubName string
	var vacancies []club.Vacancy
	err := b.repo.Mutate(i.GuildID, func(c *club.Community) error {
		// Re-validate: the gate may have changed while the move was pending.
		if err := access.CheckMoveOthers(actor, c.IsBlocked); err != nil {
			return err
		}
		record, err := c.Club(cmd.ClubKey)
		if err != nil {
			return err
		}
		clubName = record.Name
		vacancies, err = c.SwapSeats(cmd.ClubKey, move.fromIndex, cmd.SeatIndex)
		return err
	})
	if err != nil {
		respondError(s, i, err)
		return
	}
	acknowledge(s, i)
	b.notifyVacancies(s, clubName, vacancies)
	b.refreshPanels(s, i.GuildID)
}

func (b *Bot) handleAssignSeat(s *discordgo.Session, i *discordgo.InteractionCreate, cmd AssignSeat) {
	actor := b.actor(s, i)
	occupant := club.Empty
	switch {
	case cmd.Placeholder:
		occupant = club.Placeholder
	case cmd.UserID != "":
		occupant = club.Occupant(cmd.UserID)
	}

	var clubName, label string
	var vacancies []club.Vacancy
	err := b.repo.Mutate(i.GuildID, func(c *club.Community) error {
		if err := access.CheckManage(actor, c.IsBlocked); err != nil {
			return err
		}
		key := resolveKey(c, cmd.ClubKey)
		record, err := c.Club(key)
		if err != nil {
			return err
		}
		clubName = record.Name
		vacancies, err = c.AssignSeat(key, cmd.SeatIndex, occupant)
		if err != nil {
			return err
		}
		label = c.Boards[key].Seats[cmd.SeatIndex].Label
		return nil
	})
	if err != nil {
		respondError(s, i, err)
		return
	}

	var reply string
	switch {
	case occupant == club.Empty:
		reply = fmt.Sprintf("Cleared the **%s** spot (seat %d).", label, cmd.SeatIndex+1)
	case occupant == club.Placeholder:
		reply = fmt.Sprintf("Reserved the **%s** spot (seat %d).", label, cmd.SeatIndex+1)
	default:
		reply = fmt.Sprintf("<@%s> is now on the **%s** spot (seat %d).", cmd.UserID, label, cmd.SeatIndex+1)
	}
	respondText(s, i, reply)
	b.notifyVacancies(s, clubName, vacancies)
	b.refreshPanels(s, i.GuildID)
}

func (b *Bot) handleResetClub(s *discordgo.Session, i *discordgo.InteractionCreate, cmd ResetClub) {
	actor := b.actor(s, i)
	var clubName string
	var vacancies []club.Vacancy
	err := b.repo.Mutate(i.GuildID, func(c *club.Community) error {
		if err := access.CheckManage(actor, c.IsBlocked); err != nil {
			return err
		}
		key := resolveKey(c, cmd.ClubKey)
		record, err := c.Club(key)
		if err != nil {
			return err
		}
		clubName = record.Name
		vacancies, err = c.ResetClub(key)
		return err
	})
	if err != nil {
		respondError(s, i, err)
		return
	}
	respondText(s, i, fmt.Sprintf("**%s** has been reset.", clubName))
	b.notifyVacancies(s, clubName, vacancies)
	b.refreshPanels(s, i.GuildID)
}

func (b *Bot) handleEnableClub(s *discordgo.Session, i *discordgo.InteractionCreate) {
	actor := b.actor(s, i)
	if !access.CanManage(actor) {
		respondError(s, i, access.ErrNotManager)
		return
	}
	var clubName string
	err := b.repo.Mutate(i.GuildID, func(c *club.Community) error {
		key, err := c.EnableClub()
		if err != nil {
			return err
		}
		record, _ := c.Club(key)
		clubName = record.Name
		return nil
	})
	if err != nil {
		respondError(s, i, err)
		return
	}
	respondText(s, i, fmt.Sprintf("**%s** is now enabled.", clubName))
	b.refreshPanels(s, i.GuildID)
}

func (b *Bot) handleDisableClub(s *discordgo.Session, i *discordgo.InteractionCreate, cmd DisableClub) {
	actor := b.actor(s, i)
	if !access.CanManage(actor) {
		respondError(s, i, access.ErrNotManager)
		return
	}
	err := b.repo.Mutate(i.GuildID, func(c *club.Community) error {
		return c.DisableClub(cmd.ClubKey)
	})
	if err != nil {
		respondError(s, i, err)
		return
	}
	respondText(s, i, fmt.Sprintf("Club %d is now disabled.", cmd.ClubKey))
	b.refreshPanels(s, i.GuildID)
}

func (b *Bot) handleRenameClub(s *discordgo.Session, i *discordgo.InteractionCreate, cmd RenameClub) {
	actor := b.actor(s, i)
	if !access.CanManage(actor) {
		respondError(s, i, access.ErrNotManager)
		return
	}
	err := b.repo.Mutate(i.GuildID, func(c *club.Community) error {
		return c.RenameClub(cmd.ClubKey, cmd.Name)
	})
	if err != nil {
		respondError(s, i, err)
		return
	}
	respondText(s, i, fmt.Sprintf("Club %d is now called **%s**.", cmd.ClubKey, strings.TrimSpace(cmd.Name)))
	b.refreshPanels(s, i.GuildID)
}

func (b *Bot) handleChangeFormation(s *discordgo.Session, i *discordgo.InteractionCreate, cmd ChangeFormation) {
	actor := b.actor(s, i)
	var clubName string
	var result *club.ChangeResult
	err := b.repo.Mutate(i.GuildID, func(c *club.Community) error {
		if err := access.CheckManage(actor, c.IsBlocked); err != nil {
			return err
		}
		key := resolveKey(c, cmd.ClubKey)
		record, err := c.Club(key)
		if err != nil {
			return err
		}
		clubName = record.Name
		result, err = c.ChangeFormation(key, cmd.FormationID)
		return err
	})
	if err != nil {
		respondError(s, i, err)
		return
	}
	reply := fmt.Sprintf("**%s** now plays **%s**.", clubName, cmd.FormationID)
	if summary := droppedSummary(result); summary != "" {
		reply += "\n" + summary
	}
	respondText(s, i, reply)
	b.refreshPanels(s, i.GuildID)
}

func (b *Bot) handleSetVoiceLink(s *discordgo.Session, i *discordgo.InteractionCreate, cmd SetVoiceLink) {
	actor := b.actor(s, i)
	if !access.CanManage(actor) {
		respondError(s, i, access.ErrNotManager)
		return
	}

	var embed *discordgo.MessageEmbed
	var components []discordgo.MessageComponent
	err := b.repo.Mutate(i.GuildID, func(c *club.Community) error {
		if previous, ok := c.VoiceLink(cmd.ClubKey); ok {
			c.RemovePanel(previous)
		}
		if err := c.SetVoiceLink(cmd.ClubKey, cmd.ChannelID); err != nil {
			return err
		}
		if cmd.ChannelID != "" {
			embed = boardEmbed(c, cmd.ClubKey)
			components = boardComponents(c, cmd.ClubKey)
		}
		return nil
	})
	if err != nil {
		respondError(s, i, err)
		return
	}

	if cmd.ChannelID == "" {
		respondText(s, i, fmt.Sprintf("Club %d is no longer linked to a voice channel.", cmd.ClubKey))
		return
	}

	message, err := s.ChannelMessageSendComplex(cmd.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
	if err != nil {
		// The link itself is already committed; only the panel is missing.
		log.Warn().Err(err).Str("channel", cmd.ChannelID).Msg("could not post voice panel")
		respondText(s, i, fmt.Sprintf("Club %d linked to <#%s>, but I could not post a board there.", cmd.ClubKey, cmd.ChannelID))
		return
	}
	b.repo.Mutate(i.GuildID, func(c *club.Community) error {
		c.SetPanel(cmd.ChannelID, club.Panel{
			ClubKey:   cmd.ClubKey,
			ChannelID: cmd.ChannelID,
			MessageID: message.ID,
		})
		return nil
	})
	respondText(s, i, fmt.Sprintf("Club %d linked to <#%s>.", cmd.ClubKey, cmd.ChannelID))
}

func (b *Bot) handleSetBlocked(s *discordgo.Session, i *discordgo.InteractionCreate, cmd SetBlocked) {
	actor := b.actor(s, i)
	if !access.CanManage(actor) {
		respondError(s, i, access.ErrNotManager)
		return
	}
	b.repo.Mutate(i.GuildID, func(c *club.Community) error {
		c.SetBlocked(cmd.UserID, cmd.Blocked)
		return nil
	})
	if cmd.Blocked {
		respondText(s, i, fmt.Sprintf("<@%s> can no longer move other players.", cmd.UserID))
	} else {
		respondText(s, i, fmt.Sprintf("<@%s> can move other players again.", cmd.UserID))
	}
}

func (b *Bot) handleSetPrefs(s *discordgo.Session, i *discordgo.InteractionCreate, cmd SetPrefs) {
	actor := b.actor(s, i)
	if len(cmd.Labels) == 0 {
		respondText(s, i, "❌ Give me at least one position, e.g. `ST, LW, CAM`.")
		return
	}
	if err := b.prefs.Set(i.GuildID, actor.ID, cmd.Labels); err != nil {
		log.Error().Err(err).Str("user", actor.ID).Msg("could not store preferences")
		respondText(s, i, "❌ Something went wrong, please try again.")
		return
	}
	respondText(s, i, fmt.Sprintf("Your preferred positions are now: **%s**.", strings.Join(cmd.Labels, " > ")))
}

func (b *Bot) handleShowPrefs(s *discordgo.Session, i *discordgo.InteractionCreate) {
	actor := b.actor(s, i)
	labels, err := b.prefs.Get(i.GuildID, actor.ID)
	if err != nil {
		log.Error().Err(err).Str("user", actor.ID).Msg("could not load preferences")
		respondText(s, i, "❌ Something went wrong, please try again.")
		return
	}
	if len(labels) == 0 {
		respondText(s, i, "You have no preferred positions yet. Set them with `/prefs set`.")
		return
	}
	respondText(s, i, fmt.Sprintf("Your preferred positions: **%s**.", strings.Join(labels, " > ")))
}

func (b *Bot) handleSmartAssign(s *discordgo.Session, i *discordgo.InteractionCreate, cmd SmartAssign) {
	actor := b.actor(s, i)
	var key int
	var clubName, channelID string
	err := b.repo.Mutate(i.GuildID, func(c *club.Community) error {
		if err := access.CheckManage(actor, c.IsBlocked); err != nil {
			return err
		}
		key = resolveKey(c, cmd.ClubKey)
		record, err := c.Club(key)
		if err != nil {
			return err
		}
		clubName = record.Name
		channelID, _ = c.VoiceLink(key)
		return nil
	})
	if err != nil {
		respondError(s, i, err)
		return
	}
	if channelID == "" {
		respondText(s, i, fmt.Sprintf("**%s** has no linked voice channel. Link one with `/vclink` first.", clubName))
		return
	}

	members := b.voiceMembers(s, i.GuildID, channelID)
	if len(members) == 0 {
		respondText(s, i, fmt.Sprintf("Nobody is in <#%s> right now.", channelID))
		return
	}
	preferences := make(map[string][]string, len(members))
	for _, userID := range members {
		labels, err := b.prefs.Get(i.GuildID, userID)
		if err != nil {
			log.Warn().Err(err).Str("user", userID).Msg("could not load preferences")
			continue
		}
		preferences[userID] = labels
	}

	var seated int
	var vacancies []club.Vacancy
	err = b.repo.Mutate(i.GuildID, func(c *club.Community) error {
		board, err := c.Board(key)
		if err != nil {
			return err
		}
		for _, userID := range members {
			if holdsSeat(board, userID) {
				continue
			}
			index := pickSeat(board, preferences[userID])
			if index == -1 {
				break
			}
			drained, err := c.AssignSeat(key, index, club.Occupant(userID))
			if err != nil {
				return err
			}
			vacancies = append(vacancies, drained...)
			seated++
		}
		return nil
	})
	if err != nil {
		respondError(s, i, err)
		return
	}
	respondText(s, i, fmt.Sprintf("Seated %d player(s) from <#%s> on **%s**.", seated, channelID, clubName))
	b.notifyVacancies(s, clubName, vacancies)
	b.refreshPanels(s, i.GuildID)
}

func (b *Bot) handleReadyCheck(s *discordgo.Session, i *discordgo.InteractionCreate, cmd ReadyCheck) {
	actor := b.actor(s, i)
	var clubName string
	var seated []string
	err := b.repo.Mutate(i.GuildID, func(c *club.Community) error {
		if err := access.CheckManage(actor, c.IsBlocked); err != nil {
			return err
		}
		key := resolveKey(c, cmd.ClubKey)
		record, err := c.Club(key)
		if err != nil {
			return err
		}
		clubName = record.Name
		board, err := c.Board(key)
		if err != nil {
			return err
		}
		for _, seat := range board.Seats {
			if seat.Occupant.IsUser() {
				seated = append(seated, string(seat.Occupant))
			}
		}
		return nil
	})
	if err != nil {
		respondError(s, i, err)
		return
	}
	if len(seated) == 0 {
		respondText(s, i, fmt.Sprintf("Nobody is seated on **%s**.", clubName))
		return
	}

	text := fmt.Sprintf("Ready check for **%s**! Head to your seat's voice channel if you're playing.", clubName)
	delivered := 0
	for _, userID := range seated {
		if err := b.directMessage(s, userID, text); err != nil {
			log.Warn().Err(err).Str("user", userID).Msg("could not deliver ready check")
			continue
		}
		delivered++
	}
	respondText(s, i, fmt.Sprintf("Ready check sent to %d of %d seated player(s).", delivered, len(seated)))
}

// holdsSeat reports whether userID already occupies a seat on the board.
func holdsSeat(board *club.Board, userID string) bool {
	for _, seat := range board.Seats {
		if seat.Occupant == club.Occupant(userID) {
			return true
		}
	}
	return false
}

// pickSeat chooses the open seat that best matches a user's preference
// list: the first preferred label with an exact open seat, then the first
// with an open seat in the same role group, then any open seat. Returns -1
// when the board is full.
func pickSeat(board *club.Board, preferred []string) int {
	for _, label := range preferred {
		for index, seat := range board.Seats {
			if seat.Open() && seat.Label == label {
				return index
			}
		}
	}
	for _, label := range preferred {
		group := catalog.Classify(label)
		for index, seat := range board.Seats {
			if seat.Open() && catalog.Classify(seat.Label) == group {
				return index
			}
		}
	}
	for index, seat := range board.Seats {
		if seat.Open() {
			return index
		}
	}
	return -1
}
