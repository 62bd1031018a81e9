package seq

import (
	"fmt"
	"strings"
)

// Mode selects the script the sequencer plays.
type Mode uint8

const (
	// Linear plays UL, LL, LR, UR once, gated by DOWN, RIGHT, UP, then halts.
	Linear Mode = iota
	// Looping branches on the first press after UL and returns to UL forever.
	Looping
)

func (m Mode) String() string {
	switch m {
	case Linear:
		return "linear"
	case Looping:
		return "looping"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode accepts the names printed by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return Linear, nil
	case "looping", "loop":
		return Looping, nil
	default:
		return 0, fmt.Errorf("seq: unknown mode %q", s)
	}
}

// State is the sequencer position.
type State uint8

const (
	StateUpperLeft State = iota
	StateLowerLeft
	StateLowerRight
	StateFinal
	StateBranchDown
	StateBranchRight
)

var stateNames = [...]string{
	StateUpperLeft:   "upper-left",
	StateLowerLeft:   "lower-left",
	StateLowerRight:  "lower-right",
	StateFinal:       "final",
	StateBranchDown:  "branch-down",
	StateBranchRight: "branch-right",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Edge is one branch outcome of a wait, used for coverage.
type Edge uint8

const (
	EdgeLinearDown Edge = iota
	EdgeLinearRight
	EdgeLinearUp
	EdgeLoopDown
	EdgeLoopRight
	EdgeLoopOther
	EdgeBranchDownDone
	EdgeBranchRightDone

	edgeCount
)

var edgeNames = [...]string{
	EdgeLinearDown:      "linear: down",
	EdgeLinearRight:     "linear: right",
	EdgeLinearUp:        "linear: up",
	EdgeLoopDown:        "looping: any=down",
	EdgeLoopRight:       "looping: any=right",
	EdgeLoopOther:       "looping: any=other",
	EdgeBranchDownDone:  "looping: down branch right",
	EdgeBranchRightDone: "looping: right branch down",
}

func (e Edge) String() string {
	if e < edgeCount {
		return edgeNames[e]
	}
	return fmt.Sprintf("edge(%d)", uint8(e))
}

// Edges lists the edges reachable in mode m.
func Edges(m Mode) []Edge {
	switch m {
	case Linear:
		return []Edge{EdgeLinearDown, EdgeLinearRight, EdgeLinearUp}
	case Looping:
		return []Edge{EdgeLoopDown, EdgeLoopRight, EdgeLoopOther, EdgeBranchDownDone, EdgeBranchRightDone}
	default:
		return nil
	}
}
