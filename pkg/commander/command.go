package commander

// Command is a symbolic action produced by the input layer.
// The coordinator never sees raw key codes.
type Command int

const (
	MoveUp Command = iota + 1
	MoveDown
	Activate
	GoUp
	Reload
	SetActiveLeft
	SetActiveRight
	ToggleActive
	View
	Edit
)

var commandNames = map[Command]string{
	MoveUp:         "move-up",
	MoveDown:       "move-down",
	Activate:       "activate",
	GoUp:           "go-up",
	Reload:         "reload",
	SetActiveLeft:  "set-active-left",
	SetActiveRight: "set-active-right",
	ToggleActive:   "toggle-active",
	View:           "view",
	Edit:           "edit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}
