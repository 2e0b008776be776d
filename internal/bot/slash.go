package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"clubspot/internal/catalog"
	"clubspot/internal/club"
)

func formationChoices() []*discordgo.ApplicationCommandOptionChoice {
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, id := range catalog.IDs() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: id, Value: id})
	}
	return choices
}

func clubOption(required bool) *discordgo.ApplicationCommandOption {
	var min float64 = 1
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "club",
		Description: "Club slot (1-5), defaults to the one currently shown",
		Required:    required,
		MinValue:    &min,
		MaxValue:    club.MaxClubs,
	}
}

func slashCommands() []*discordgo.ApplicationCommand {
	var seatMin float64 = 1
	return []*discordgo.ApplicationCommand{
		{
			Name:        "board",
			Description: "Post the live club board in this channel",
			Options:     []*discordgo.ApplicationCommandOption{clubOption(false)},
		},
		{
			Name:        "club",
			Description: "Manage club slots",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "enable",
					Description: "Enable the next free club slot",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "disable",
					Description: "Disable a club (its seats must be empty)",
					Options:     []*discordgo.ApplicationCommandOption{clubOption(true)},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "rename",
					Description: "Rename a club",
					Options: []*discordgo.ApplicationCommandOption{
						clubOption(true),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "New club name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "select",
					Description: "Switch which club the board shows",
					Options:     []*discordgo.ApplicationCommandOption{clubOption(true)},
				},
			},
		},
		{
			Name:        "formation",
			Description: "Change a club's formation, keeping players in place where possible",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "formation",
					Description: "New formation",
					Required:    true,
					Choices:     formationChoices(),
				},
				clubOption(false),
			},
		},
		{
			Name:        "assign",
			Description: "Force-set a seat (manager only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "seat",
					Description: "Seat number as shown on the board",
					Required:    true,
					MinValue:    &seatMin,
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Who to seat; leave empty to clear the seat",
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "placeholder",
					Description: "Reserve the seat for an untracked player",
				},
				clubOption(false),
			},
		},
		{
			Name:        "reset",
			Description: "Empty every seat of a club (manager only)",
			Options:     []*discordgo.ApplicationCommandOption{clubOption(false)},
		},
		{
			Name:        "vclink",
			Description: "Link a club to a voice channel and post its board there",
			Options: []*discordgo.ApplicationCommandOption{
				clubOption(true),
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "Voice channel; leave empty to clear the link",
					ChannelTypes: []discordgo.ChannelType{
						discordgo.ChannelTypeGuildVoice,
					},
				},
			},
		},
		{
			Name:        "block",
			Description: "Block or unblock a user from moving other players",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Who to block or unblock",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "blocked",
					Description: "true to block, false to unblock",
					Required:    true,
				},
			},
		},
		{
			Name:        "prefs",
			Description: "Your preferred positions",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set",
					Description: "Set your preferred positions, most preferred first",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "positions",
							Description: "Comma-separated labels, e.g. ST, LW, CAM",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show your preferred positions",
				},
			},
		},
		{
			Name:        "smartassign",
			Description: "Fill open seats from the voice channel using stored preferences (manager only)",
			Options:     []*discordgo.ApplicationCommandOption{clubOption(false)},
		},
		{
			Name:        "readycheck",
			Description: "DM every seated player asking them to confirm (manager only)",
			Options:     []*discordgo.ApplicationCommandOption{clubOption(false)},
		},
	}
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	byName := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, option := range options {
		byName[option.Name] = option
	}
	return byName
}

func clubKeyOf(options map[string]*discordgo.ApplicationCommandInteractionDataOption) int {
	if option, ok := options["club"]; ok {
		return int(option.IntValue())
	}
	return 0
}

// parseSlash turns a slash command interaction into a Command.
func parseSlash(data discordgo.ApplicationCommandInteractionData) (Command, error) {
	options := optionMap(data.Options)

	switch data.Name {
	case "board":
		return ShowBoard{ClubKey: clubKeyOf(options)}, nil
	case "club":
		if len(data.Options) != 1 {
			return nil, fmt.Errorf("club command without subcommand")
		}
		sub := data.Options[0]
		subOptions := optionMap(sub.Options)
		switch sub.Name {
		case "enable":
			return EnableClub{}, nil
		case "disable":
			return DisableClub{ClubKey: clubKeyOf(subOptions)}, nil
		case "rename":
			return RenameClub{ClubKey: clubKeyOf(subOptions), Name: subOptions["name"].StringValue()}, nil
		case "select":
			return SelectClub{ClubKey: clubKeyOf(subOptions)}, nil
		default:
			return nil, fmt.Errorf("unknown club subcommand %q", sub.Name)
		}
	case "formation":
		return ChangeFormation{
			ClubKey:     clubKeyOf(options),
			FormationID: options["formation"].StringValue(),
		}, nil
	case "assign":
		cmd := AssignSeat{
			ClubKey:   clubKeyOf(options),
			SeatIndex: int(options["seat"].IntValue()) - 1,
		}
		if option, ok := options["user"]; ok {
			cmd.UserID = option.UserValue(nil).ID
		}
		if option, ok := options["placeholder"]; ok {
			cmd.Placeholder = option.BoolValue()
		}
		return cmd, nil
	case "reset":
		return ResetClub{ClubKey: clubKeyOf(options)}, nil
	case "vclink":
		cmd := SetVoiceLink{ClubKey: clubKeyOf(options)}
		if option, ok := options["channel"]; ok {
			cmd.ChannelID = option.ChannelValue(nil).ID
		}
		return cmd, nil
	case "block":
		return SetBlocked{
			UserID:  options["user"].UserValue(nil).ID,
			Blocked: options["blocked"].BoolValue(),
		}, nil
	case "prefs":
		if len(data.Options) != 1 {
			return nil, fmt.Errorf("prefs command without subcommand")
		}
		sub := data.Options[0]
		switch sub.Name {
		case "set":
			subOptions := optionMap(sub.Options)
			return SetPrefs{Labels: parseLabels(subOptions["positions"].StringValue())}, nil
		case "show":
			return ShowPrefs{}, nil
		default:
			return nil, fmt.Errorf("unknown prefs subcommand %q", sub.Name)
		}
	case "smartassign":
		return SmartAssign{ClubKey: clubKeyOf(options)}, nil
	case "readycheck":
		return ReadyCheck{ClubKey: clubKeyOf(options)}, nil
	default:
		return nil, fmt.Errorf("unknown command %q", data.Name)
	}
}

// parseLabels normalises a comma-separated position list ("st, lw cam")
// into upper-case labels.
func parseLabels(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	var labels []string
	for _, field := range fields {
		labels = append(labels, strings.ToUpper(strings.TrimSpace(field)))
	}
	return labels
}
