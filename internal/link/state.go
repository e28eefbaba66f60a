package link

import "fmt"

// State classifies a target path relative to its declared source.
type State int

const (
	// Absent means nothing exists at the target path.
	Absent State = iota
	// LinkedCorrectly means the target is a symlink whose destination exists
	// and has the same size as the source.
	LinkedCorrectly
	// LinkedMismatched means the target is a symlink whose destination
	// differs in size from the source, or the source is gone.
	LinkedMismatched
	// BrokenLink means the target is a symlink whose destination does not exist.
	BrokenLink
	// OccupiedByOther means a regular file or directory sits at the target.
	OccupiedByOther
)

var stateNames = map[State]string{
	Absent:           "absent",
	LinkedCorrectly:  "linked",
	LinkedMismatched: "mismatched",
	BrokenLink:       "broken",
	OccupiedByOther:  "occupied",
}

// String returns the short lowercase name used in output.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// MarshalText renders the state by name in JSON and YAML output.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Healthy reports whether the state needs no attention.
func (s State) Healthy() bool {
	return s == LinkedCorrectly
}

// Occupant describes what occupies a target that is not a symlink.
type Occupant int

const (
	// OccupantNone is used when the target is not occupied.
	OccupantNone Occupant = iota
	// OccupantFile is a regular file.
	OccupantFile
	// OccupantDirectory is a directory.
	OccupantDirectory
	// OccupantOther is a device, socket, FIFO or other special file.
	OccupantOther
)

// String returns the occupant kind as used in messages.
func (o Occupant) String() string {
	switch o {
	case OccupantFile:
		return "file"
	case OccupantDirectory:
		return "directory"
	case OccupantOther:
		return "special file"
	default:
		return ""
	}
}

// MarshalText renders the occupant by name in JSON and YAML output.
func (o Occupant) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Inspection is the result of inspecting one entry.
type Inspection struct {
	Entry Entry `json:"entry" yaml:"entry"`
	State State `json:"state" yaml:"state"`

	// Source and Target are the resolved paths.
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`

	// Destination is the raw value stored in the symlink, set for
	// LinkedCorrectly, LinkedMismatched and BrokenLink.
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty"`

	// Occupant is set for OccupiedByOther.
	Occupant Occupant `json:"occupant,omitempty" yaml:"occupant,omitempty"`
}

// Finding returns the status finding for an unhealthy inspection as an
// *Error, or nil when the state is LinkedCorrectly or Absent.
func (i Inspection) Finding() error {
	switch i.State {
	case BrokenLink:
		return &Error{Kind: KindBrokenLink, Entry: i.Entry.Name, Path: i.Target, Destination: i.Destination}
	case LinkedMismatched:
		return &Error{Kind: KindLinkMismatch, Entry: i.Entry.Name, Path: i.Target, Destination: i.Destination}
	case OccupiedByOther:
		return &Error{Kind: KindTargetOccupied, Entry: i.Entry.Name, Path: i.Target, Occupant: i.Occupant}
	default:
		return nil
	}
}
