package echoes

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vovakirdan/echoes/internal/core"
	"github.com/vovakirdan/echoes/internal/games/echoes/world"
)

// Smallest terminal the game can be played in.
const (
	MinWidth  = 60
	MinHeight = 20
)

var titleCaser = cases.Title(language.English)

// choiceOptions are the lines of the choice overlay, keyed 1 to 4.
var choiceOptions = []string{
	"Help the elder (give 2, keep 1, child dies)",
	"Help the child (give 2, keep 1, elder dies)",
	"Help both (share equally, 1.5 each, you get 0)",
	"Help neither (keep all %d resources, both die)",
}

// pulseGlyphs animate the enlightenment trigger.
var pulseGlyphs = []rune{'·', '+', '*', '✦', '*', '+'}

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < MinWidth || h < MinHeight {
		g.renderTooSmall(dst)
		return
	}

	switch g.state.Zone {
	case world.ZoneIntro:
		g.renderIntro(dst)
		return
	case world.ZoneVictory:
		g.renderVictory(dst)
		return
	}

	vp := playfield(w, h)
	dst.Blit(g.layers.Layer(g.state.Zone, w, h))

	g.renderGems(dst, vp)
	g.renderNPCs(dst, vp)
	g.renderEnlightenment(dst, vp)
	g.renderPlayer(dst, vp)
	g.renderHUD(dst)
	g.renderMessage(dst)

	if g.state.ChoiceActive {
		g.renderChoice(dst)
	}
}

// renderTooSmall asks for a bigger terminal.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Terminal too small", core.ColorBrightRed)
	dst.DrawTextCentered(y, fmt.Sprintf("Need at least %dx%d", MinWidth, MinHeight), core.ColorGray)
}

// renderIntro draws the title card.
func (g *Game) renderIntro(dst *core.Screen) {
	y := dst.Height()/2 - 2
	dst.DrawTextCentered(y, "ECHOES OF HUMANITY", core.ColorBrightYellow)
	dst.DrawTextCentered(y+2, "Collect gems. Help those in need. Find enlightenment.", core.ColorWhite)
	dst.DrawTextCentered(y+4, "Press Space to begin", core.ColorGray)
}

// renderVictory draws the closing screen.
func (g *Game) renderVictory(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	dst.DrawBox(core.Rect{X: 1, Y: 0, W: w - 2, H: h}, core.ColorWhite)

	dst.DrawTextCentered(h/6, "ENLIGHTENMENT ACHIEVED", core.ColorBrightYellow)
	dst.DrawTextCentered(h/3, "You can afford more goodness than you think!", core.ColorBrightWhite)
	dst.DrawTextCentered(h/3+2, "Goodness is the best investment for a better world.", core.ColorBrightWhite)
	dst.DrawTextCentered(h-3, "Press ESC to exit or R to restart", core.ColorGray)
}

// renderHUD draws the zone name and gem count on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, g.state.Zone.Title(), core.ColorBrightWhite)

	gems := fmt.Sprintf("Gems: %d", g.state.Player.Gems)
	dst.DrawTextColor(dst.Width()-len(gems)-1, 0, gems, core.ColorBrightGreen)
}

// renderMessage shows the head of the message queue in the bottom bar.
func (g *Game) renderMessage(dst *core.Screen) {
	msg, ok := g.state.Messages.Current()
	if !ok {
		return
	}

	w, h := dst.Width(), dst.Height()
	lines := strings.Split(wordwrap.String(msg.Text, w-2), "\n")
	for i, line := range lines {
		if i >= messageRows {
			break
		}
		dst.DrawTextColor(1, h-messageRows+i, line, core.ColorBrightWhite)
	}
}

// renderGems draws uncollected gems.
func (g *Game) renderGems(dst *core.Screen, vp viewport) {
	for _, gem := range g.state.Gems {
		if gem.Collected {
			continue
		}
		dst.DrawRect(vp.clip(vp.cellRect(gem.Rect())), '◆', core.ColorBrightGreen)
	}
}

// renderNPCs draws NPCs that are on screen, with a status label above each
// living one.
func (g *Game) renderNPCs(dst *core.Screen, vp viewport) {
	for _, n := range g.state.NPCs {
		if n.X < 0 || n.Y < 0 {
			continue
		}
		r := vp.clip(vp.cellRect(n.Rect()))
		if n.Dead {
			dst.DrawRect(r, 'x', core.ColorGray)
			continue
		}

		dst.DrawRect(r, '▓', npcColor(n))
		dst.DrawTextColor(r.X-1, r.Y-1, npcLabel(n), core.ColorWhite)
	}
}

// npcLabel returns the text shown above a living NPC.
func npcLabel(n world.NPC) string {
	name := titleCaser.String(n.Kind.String())
	switch {
	case n.Helped:
		return name + " (Complete!)"
	case n.NeedsHelp:
		return fmt.Sprintf("%s (%d/%d)", name, n.GemsGiven, n.GemsRequired)
	default:
		return name
	}
}

// npcColor fades from red to green as an NPC receives gems.
func npcColor(n world.NPC) core.Color {
	switch {
	case n.Helped:
		return core.ProgressColor(1, 1)
	case n.NeedsHelp:
		return core.ProgressColor(n.GemsGiven, n.GemsRequired)
	default:
		return core.ColorWhite
	}
}

// renderEnlightenment draws the pulsing victory trigger once it has appeared.
func (g *Game) renderEnlightenment(dst *core.Screen, vp viewport) {
	if !g.state.HasEnlightenment() {
		return
	}
	phase := int(g.state.Tick/8) % len(pulseGlyphs)
	color := core.ColorYellow
	if phase%2 == 1 {
		color = core.ColorBrightYellow
	}
	dst.DrawRect(vp.clip(vp.cellRect(g.state.Enlightenment)), pulseGlyphs[phase], color)
}

// renderPlayer draws the player on top of the world.
func (g *Game) renderPlayer(dst *core.Screen, vp viewport) {
	dst.DrawRect(vp.clip(vp.cellRect(g.state.Player.Rect())), '@', core.ColorBrightCyan)
}

// renderChoice draws the zone 1 decision box over everything else.
func (g *Game) renderChoice(dst *core.Screen) {
	lines := make([]string, len(choiceOptions))
	for i, opt := range choiceOptions {
		if strings.Contains(opt, "%d") {
			opt = fmt.Sprintf(opt, g.state.Player.Gems)
		}
		lines[i] = opt
	}
	footer := "Press 1-4 to make your choice..."

	maxLen := utf8.RuneCountInString(footer)
	for _, line := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line)+2)
	}

	boxW := maxLen + 4
	boxH := len(lines) + 6
	box := core.Rect{
		X: (dst.Width() - boxW) / 2,
		Y: (dst.Height() - boxH) / 2,
		W: boxW,
		H: boxH,
	}

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, "A Difficult Choice", core.ColorBrightYellow)

	for i, line := range lines {
		y := box.Y + 3 + i
		dst.DrawTextColor(box.X+2, y, fmt.Sprint(i+1), core.ColorYellow)
		dst.DrawTextColor(box.X+4, y, line, core.ColorWhite)
	}

	dst.DrawTextCentered(box.Bottom()-2, footer, core.ColorGray)
}
