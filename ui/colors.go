package ui

import "image/color"

var backgroundColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var blackColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
var greyColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
var redColor = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
var blueColor = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
var greenColor = color.NRGBA{R: 0, G: 128, B: 0, A: 255}
var yellowColor = color.NRGBA{R: 255, G: 255, B: 0, A: 255}

// Colors used per layer.
var (
	BackgroundColor = backgroundColor
	GridColor       = blackColor
	LabelColor      = blackColor
	BlockedColor    = greyColor
	BlockedBorder   = redColor
	JumpColor       = blueColor
	DiagonalColor   = greenColor
	MeetingColor    = yellowColor
)

const (
	gridStrokeWidth    = 1
	blockedStrokeWidth = 2
)
