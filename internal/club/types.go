package club

import (
	"fmt"

	"clubspot/internal/catalog"
)

// MaxClubs is the number of club slots every community has.
const MaxClubs = 5

// Occupant is whoever fills a seat: empty, a Discord user id, or the
// placeholder sentinel standing in for a real but untracked player.
type Occupant string

const (
	Empty       Occupant = ""
	Placeholder Occupant = "*"
)

// IsUser reports whether the occupant is an actual user id.
func (o Occupant) IsUser() bool {
	return o != Empty && o != Placeholder
}

// Seat is one labelled position slot on a board. Open is derived from
// the occupant, never stored separately.
type Seat struct {
	Label    string
	Occupant Occupant
}

func (s Seat) Open() bool {
	return s.Occupant == Empty
}

// Board is the seat layout of one club. The seat list is fully determined
// by the formation; changing formation replaces the board wholesale.
type Board struct {
	FormationID string
	Seats       []Seat
}

func newBoard(f catalog.Formation) *Board {
	seats := make([]Seat, len(f.Labels))
	for i, label := range f.Labels {
		seats[i] = Seat{Label: label}
	}
	return &Board{FormationID: f.ID, Seats: seats}
}

// Club is one of the up-to-five rosters of a community.
type Club struct {
	Key     int
	Name    string
	Enabled bool
}

// Panel points at a live board message in a voice channel's text chat.
type Panel struct {
	ClubKey   int
	ChannelID string
	MessageID string
}

// Community is the full in-memory state of one guild. It is created
// lazily on first reference and lives for the process lifetime.
type Community struct {
	ID             string
	Clubs          []*Club
	Boards         map[int]*Board
	CurrentClubKey int
	VCLinks        map[int]string
	VCPanels       map[string]Panel
	Blocked        map[string]struct{}
	queues         map[int]map[int][]string
}

func newCommunity(id string) *Community {
	c := &Community{
		ID:             id,
		Boards:         make(map[int]*Board),
		CurrentClubKey: 1,
		VCLinks:        make(map[int]string),
		VCPanels:       make(map[string]Panel),
		Blocked:        make(map[string]struct{}),
		queues:         make(map[int]map[int][]string),
	}
	def, _ := catalog.Get(catalog.Default)
	for key := 1; key <= MaxClubs; key++ {
		c.Clubs = append(c.Clubs, &Club{
			Key:     key,
			Name:    fmt.Sprintf("Club %d", key),
			Enabled: key == 1,
		})
		c.Boards[key] = newBoard(def)
	}
	return c
}

// Club returns the club record for the given key.
func (c *Community) Club(key int) (*Club, error) {
	if key < 1 || key > len(c.Clubs) {
		return nil, ErrUnknownClub
	}
	return c.Clubs[key-1], nil
}

// EnabledClubs returns the enabled clubs in slot order.
func (c *Community) EnabledClubs() []*Club {
	var enabled []*Club
	for _, club := range c.Clubs {
		if club.Enabled {
			enabled = append(enabled, club)
		}
	}
	return enabled
}

// Board returns the board of an enabled club.
func (c *Community) Board(key int) (*Board, error) {
	club, err := c.Club(key)
	if err != nil {
		return nil, err
	}
	if !club.Enabled {
		return nil, ErrUnknownClub
	}
	return c.Boards[key], nil
}

// SelectClub switches which club the global panel shows.
func (c *Community) SelectClub(key int) error {
	if _, err := c.Board(key); err != nil {
		return err
	}
	c.CurrentClubKey = key
	return nil
}

// SetBlocked adds or removes a user from the community block list.
func (c *Community) SetBlocked(userID string, blocked bool) {
	if blocked {
		c.Blocked[userID] = struct{}{}
	} else {
		delete(c.Blocked, userID)
	}
}

// IsBlocked reports whether a user is barred from mutating others' seats.
func (c *Community) IsBlocked(userID string) bool {
	_, ok := c.Blocked[userID]
	return ok
}

// SetVoiceLink links a club to a voice channel, or clears the link when
// channelID is empty. The model does not enforce that a voice channel is
// claimed by a single club.
func (c *Community) SetVoiceLink(key int, channelID string) error {
	if _, err := c.Club(key); err != nil {
		return err
	}
	if channelID == "" {
		delete(c.VCLinks, key)
		return nil
	}
	c.VCLinks[key] = channelID
	return nil
}

// VoiceLink returns the voice channel linked to a club, if any.
func (c *Community) VoiceLink(key int) (string, bool) {
	id, ok := c.VCLinks[key]
	return id, ok
}

// ClubForVoice returns the club linked to a voice channel, if any.
// With multiple claimants the lowest club key wins.
func (c *Community) ClubForVoice(channelID string) (int, bool) {
	for key := 1; key <= len(c.Clubs); key++ {
		if c.VCLinks[key] == channelID {
			return key, true
		}
	}
	return 0, false
}

// SetPanel registers a live board message for a voice channel.
func (c *Community) SetPanel(voiceChannelID string, p Panel) {
	c.VCPanels[voiceChannelID] = p
}

// RemovePanel forgets a board message, typically after an edit failed
// because the message no longer exists.
func (c *Community) RemovePanel(voiceChannelID string) {
	delete(c.VCPanels, voiceChannelID)
}
