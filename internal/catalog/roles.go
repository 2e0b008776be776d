package catalog

import "strings"

// RoleGroup is the coarse classification of a position label.
// The declaration order doubles as the priority order used when
// remapping occupants onto a new formation: the most position-specific
// roles are matched first so generic ones do not exhaust their seats.
type RoleGroup int

const (
	Goalkeeper RoleGroup = iota
	CentreBack
	FullBack
	HoldingMid
	CentreMid
	AttackingMid
	WideMid
	Winger
	Striker
	Other
)

var roleNames = map[RoleGroup]string{
	Goalkeeper:   "goalkeeper",
	CentreBack:   "centre back",
	FullBack:     "full back",
	HoldingMid:   "holding midfielder",
	CentreMid:    "central midfielder",
	AttackingMid: "attacking midfielder",
	WideMid:      "wide midfielder",
	Winger:       "winger",
	Striker:      "striker",
	Other:        "other",
}

func (g RoleGroup) String() string {
	if name, ok := roleNames[g]; ok {
		return name
	}
	return "other"
}

// Classify maps a position label to its role group.
// Unknown labels fall into Other.
func Classify(label string) RoleGroup {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "GK":
		return Goalkeeper
	case "CB":
		return CentreBack
	case "LB", "RB", "LWB", "RWB":
		return FullBack
	case "CDM", "DM":
		return HoldingMid
	case "CM":
		return CentreMid
	case "CAM", "AM":
		return AttackingMid
	case "LM", "RM":
		return WideMid
	case "LW", "RW":
		return Winger
	case "ST", "CF":
		return Striker
	default:
		return Other
	}
}
