package catalog

// A formation defines the shape of a club board: an ordered list of
// position labels, goalkeeper first, plus free-text notes shown on the panel.
type Formation struct {
	ID     string
	Labels []string
	Notes  string
}

// Default is the formation a club board starts with.
const Default = "4-3-3"

var order = []string{
	"4-3-3",
	"4-4-2",
	"4-2-3-1",
	"4-1-4-1",
	"4-3-2-1",
	"3-5-2",
	"3-4-3",
	"5-3-2",
	"5-4-1",
	"7-a-side",
	"5-a-side",
}

var formations = map[string]Formation{
	"4-3-3": {
		ID:     "4-3-3",
		Labels: []string{"GK", "LB", "CB", "CB", "RB", "CM", "CM", "CM", "LW", "ST", "RW"},
		Notes:  "Balanced front three, midfield triangle",
	},
	"4-4-2": {
		ID:     "4-4-2",
		Labels: []string{"GK", "LB", "CB", "CB", "RB", "LM", "CM", "CM", "RM", "ST", "ST"},
		Notes:  "Classic two banks of four, strike partnership",
	},
	"4-2-3-1": {
		ID:     "4-2-3-1",
		Labels: []string{"GK", "LB", "CB", "CB", "RB", "CDM", "CDM", "LW", "CAM", "RW", "ST"},
		Notes:  "Double pivot behind an attacking midfielder",
	},
	"4-1-4-1": {
		ID:     "4-1-4-1",
		Labels: []string{"GK", "LB", "CB", "CB", "RB", "CDM", "LM", "CM", "CM", "RM", "ST"},
		Notes:  "Lone anchor, compact midfield line",
	},
	"4-3-2-1": {
		ID:     "4-3-2-1",
		Labels: []string{"GK", "LB", "CB", "CB", "RB", "CM", "CDM", "CM", "CAM", "CAM", "ST"},
		Notes:  "Christmas tree, narrow and central",
	},
	"3-5-2": {
		ID:     "3-5-2",
		Labels: []string{"GK", "CB", "CB", "CB", "LWB", "CM", "CDM", "CM", "RWB", "ST", "ST"},
		Notes:  "Wingbacks provide all the width",
	},
	"3-4-3": {
		ID:     "3-4-3",
		Labels: []string{"GK", "CB", "CB", "CB", "LM", "CM", "CM", "RM", "LW", "ST", "RW"},
		Notes:  "Front-foot pressing shape",
	},
	"5-3-2": {
		ID:     "5-3-2",
		Labels: []string{"GK", "LWB", "CB", "CB", "CB", "RWB", "CM", "CM", "CM", "ST", "ST"},
		Notes:  "Back five, counter on the break",
	},
	"5-4-1": {
		ID:     "5-4-1",
		Labels: []string{"GK", "LWB", "CB", "CB", "CB", "RWB", "LM", "CM", "CM", "RM", "ST"},
		Notes:  "Low block, lone striker outlet",
	},
	"7-a-side": {
		ID:     "7-a-side",
		Labels: []string{"GK", "LB", "CB", "RB", "CM", "CM", "ST"},
		Notes:  "Small-sided, everyone defends",
	},
	"5-a-side": {
		ID:     "5-a-side",
		Labels: []string{"GK", "CB", "CM", "CM", "ST"},
		Notes:  "Futsal rules, quick rotations",
	},
}

// Get returns the formation for the given id.
func Get(id string) (Formation, bool) {
	f, ok := formations[id]
	return f, ok
}

// IDs returns all formation ids in their fixed display order.
func IDs() []string {
	ids := make([]string, len(order))
	copy(ids, order)
	return ids
}
