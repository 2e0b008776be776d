package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"clubspot/internal/catalog"
	"clubspot/internal/club"
)

// Use "pitch green" for the bot
const color int = 0x1f8b4c

func seatLine(index int, seat club.Seat, waiting int) string {
	var who string
	switch {
	case seat.Open():
		who = "*open*"
	case seat.Occupant == club.Placeholder:
		who = "reserved"
	default:
		who = fmt.Sprintf("<@%s>", seat.Occupant)
	}
	line := fmt.Sprintf("`%2d` **%s** — %s", index+1, seat.Label, who)
	if waiting > 0 {
		line += fmt.Sprintf(" (%d waiting)", waiting)
	}
	return line
}

func boardEmbed(c *club.Community, key int) *discordgo.MessageEmbed {
	record, err := c.Club(key)
	if err != nil {
		return &discordgo.MessageEmbed{Title: "Unknown club", Color: color}
	}
	board := c.Boards[key]
	embed := discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s — %s", record.Name, board.FormationID),
		Color: color,
	}
	if formation, ok := catalog.Get(board.FormationID); ok {
		embed.Description = formation.Notes
	}

	lines := make([]string, len(board.Seats))
	for i, seat := range board.Seats {
		lines[i] = seatLine(i, seat, len(c.Waiters(key, i)))
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Lineup",
		Value:  strings.Join(lines, "\n"),
		Inline: false,
	})

	if vc, ok := c.VoiceLink(key); ok {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Voice channel",
			Value:  fmt.Sprintf("<#%s>", vc),
			Inline: false,
		})
	}
	return &embed
}

func seatOptions(board *club.Board, includeSeat func(club.Seat) bool) []discordgo.SelectMenuOption {
	var options []discordgo.SelectMenuOption
	for i, seat := range board.Seats {
		if !includeSeat(seat) {
			continue
		}
		label := fmt.Sprintf("%d · %s", i+1, seat.Label)
		if !seat.Open() {
			label += " (taken)"
		}
		options = append(options, discordgo.SelectMenuOption{Label: label, Value: strconv.Itoa(i)})
	}
	return options
}

func boardComponents(c *club.Community, key int) []discordgo.MessageComponent {
	board := c.Boards[key]
	var rows []discordgo.MessageComponent

	open := seatOptions(board, func(s club.Seat) bool { return s.Open() })
	if len(open) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    componentID("claim", key),
				Placeholder: "Claim a spot",
				Options:     open,
			},
		}})
	}

	taken := seatOptions(board, func(s club.Seat) bool { return !s.Open() })
	if len(taken) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    componentID("wait", key),
				Placeholder: "Join a waitlist",
				Options:     taken,
			},
		}})
		rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    componentID("movesrc", key),
				Placeholder: "Move: pick who",
				Options:     taken,
			},
		}})
		rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    componentID("movedst", key),
				Placeholder: "Move: pick where",
				Options:     seatOptions(board, func(club.Seat) bool { return true }),
			},
		}})
	}

	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			CustomID: componentID("leave", key),
			Label:    "Leave my spot",
			Style:    discordgo.DangerButton,
		},
	}
	for _, other := range c.EnabledClubs() {
		if other.Key == key {
			continue
		}
		buttons = append(buttons, discordgo.Button{
			CustomID: componentID("show", other.Key),
			Label:    other.Name,
			Style:    discordgo.SecondaryButton,
		})
	}
	rows = append(rows, discordgo.ActionsRow{Components: buttons})

	return rows
}

func droppedSummary(result *club.ChangeResult) string {
	if len(result.Dropped) == 0 {
		return ""
	}
	var lines []string
	for _, dropped := range result.Dropped {
		if !dropped.Occupant.IsUser() {
			lines = append(lines, fmt.Sprintf("a reserved %s spot was dropped", dropped.OldLabel))
			continue
		}
		seat := result.Board.Seats[dropped.SeatIndex]
		lines = append(lines, fmt.Sprintf("<@%s> (%s) lost their spot and joined the waitlist for seat %d (%s)",
			dropped.Occupant, dropped.OldLabel, dropped.SeatIndex+1, seat.Label))
	}
	return "The new formation has fewer matching spots:\n" + strings.Join(lines, "\n")
}
