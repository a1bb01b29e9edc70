package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"spoon-defense/internal/config"
	"spoon-defense/pkg/render"
)

type message struct {
	text  string
	color color.RGBA
	ttl   float64
}

// MessageLog shows short-lived notices stacked at the top of the board.
type MessageLog struct {
	X, Y     int
	messages []message
}

func NewMessageLog(x, y int) *MessageLog {
	return &MessageLog{X: x, Y: y}
}

func (l *MessageLog) Push(text string, clr color.RGBA) {
	l.messages = append(l.messages, message{text: text, color: clr, ttl: config.MessageDuration})
	if len(l.messages) > 4 {
		l.messages = l.messages[1:]
	}
}

// Update ages messages by real seconds.
func (l *MessageLog) Update(dt float64) {
	kept := l.messages[:0]
	for _, m := range l.messages {
		m.ttl -= dt
		if m.ttl > 0 {
			kept = append(kept, m)
		}
	}
	l.messages = kept
}

func (l *MessageLog) Draw(dst *ebiten.Image) {
	for i, m := range l.messages {
		alpha := m.ttl / config.MessageDuration
		if alpha > 1 {
			alpha = 1
		}
		DrawOutlined(dst, m.text, l.X, l.Y+i*18, render.WithAlpha(m.color, alpha), render.WithAlpha(config.TextDarkColor, alpha))
	}
}
