package editor

import "unicode"

// Modifiers qualify a pointer press.
type Modifiers uint8

const (
	// ModToggle adds or removes the pressed entity from the selection.
	ModToggle Modifiers = 1 << iota
	// ModCreate places a new ship when the press misses every entity.
	ModCreate
	// ModKeep keeps the current selection when a rubber band starts.
	ModKeep
)

// Has reports whether every bit of m2 is set in m.
func (m Modifiers) Has(m2 Modifiers) bool { return m&m2 == m2 }

// Command is a keyboard action understood by the controller.
type Command int

const (
	CommandNone Command = iota
	CommandCopy
	CommandCut
	CommandPaste
	CommandGroup
	CommandUngroup
)

func (c Command) String() string {
	switch c {
	case CommandCopy:
		return "copy"
	case CommandCut:
		return "cut"
	case CommandPaste:
		return "paste"
	case CommandGroup:
		return "group"
	case CommandUngroup:
		return "ungroup"
	default:
		return "none"
	}
}

// Chord is a key with or without the command (control) modifier.
type Chord struct {
	Key  rune
	Ctrl bool
}

// Keymap resolves key chords to commands.
type Keymap map[Chord]Command

// DefaultKeymap: ctrl+c, ctrl+x, ctrl+v for the clipboard; g and u to group and ungroup.
var DefaultKeymap = Keymap{
	{Key: 'c', Ctrl: true}: CommandCopy,
	{Key: 'x', Ctrl: true}: CommandCut,
	{Key: 'v', Ctrl: true}: CommandPaste,
	{Key: 'g'}:             CommandGroup,
	{Key: 'u'}:             CommandUngroup,
}

// Lookup returns the command bound to key, ignoring letter case.
func (k Keymap) Lookup(key rune, ctrl bool) Command {
	return k[Chord{Key: unicode.ToLower(key), Ctrl: ctrl}]
}
