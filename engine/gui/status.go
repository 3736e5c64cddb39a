package gui

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hollowforge/inputbridge/engine/util"
)

// StatusDisplay is the one line of status text the render loop overwrites
// every frame.
type StatusDisplay interface {
	Set(text string)
}

// TitleStatus shows the status line in the window title bar. SetTitle is
// not free, so the title is only touched when the text changes.
type TitleStatus struct {
	win  *glfw.Window
	last string
}

func NewTitleStatus(win *glfw.Window) *TitleStatus {
	return &TitleStatus{win: win}
}

func (t *TitleStatus) Set(text string) {
	if text == t.last {
		return
	}
	t.last = text
	t.win.SetTitle(text)
}

// LogStatus reports status changes through the logger, for headless runs.
type LogStatus struct {
	last string
	set  bool
}

func NewLogStatus() *LogStatus {
	return &LogStatus{}
}

func (l *LogStatus) Set(text string) {
	if l.set && text == l.last {
		return
	}
	l.last = text
	l.set = true
	util.LogShellInfo("status: " + text)
}

// Last returns the most recently set status line.
func (l *LogStatus) Last() string {
	return l.last
}
