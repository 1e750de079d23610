package core

// Color is a logical foreground color for a screen cell. The shell maps it
// to real terminal colors; simulation code only ever picks a role.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBody
	ColorHead
	ColorTarget
	ColorFrame
	ColorHUD
	ColorOverlay
	ColorMuted
)
