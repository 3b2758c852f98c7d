package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rankreel/animation"
	"rankreel/timeline"
	"rankreel/types"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	sceneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	paramStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// View implements tea.Model.
func (m Model) View() string {
	tl := m.result.Timeline
	scene, local, ok := tl.SceneAt(m.frame)
	if !ok {
		return "frame out of range"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("rankreel preview: %s", m.result.Spec.Intro.Title)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("job %s · %d frames · %.1fs @ %d fps",
		m.result.JobID, tl.TotalFrames, tl.Seconds(), tl.FPS)))
	b.WriteString("\n\n")

	for _, s := range tl.Scenes {
		line := fmt.Sprintf("%-12s %5d – %5d  (%d frames)", sceneLabel(s), s.Start, s.End, s.Frames())
		if s.Start == scene.Start {
			b.WriteString(currentStyle.Render("▶ " + line))
		} else {
			b.WriteString(sceneStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(currentStyle.Render(fmt.Sprintf("frame %d / %d  ·  %s local frame %d",
		m.frame, tl.TotalFrames-1, sceneLabel(scene), local)))
	b.WriteString("\n\n")
	b.WriteString(m.renderParams(scene, local))

	b.WriteString(helpStyle.Render("←/→ scrub · shift+←/→ jump 1s · tab next scene · g/G start/end · q quit"))

	return b.String()
}

func sceneLabel(s timeline.Scene) string {
	if s.Kind == timeline.SceneProduct {
		return fmt.Sprintf("product #%d", s.Rank)
	}
	return string(s.Kind)
}

// renderParams shows the animation contract's output for the current
// frame, proving the same frame always yields the same values.
func (m Model) renderParams(scene timeline.Scene, local int) string {
	fps := m.result.Timeline.FPS

	switch scene.Kind {
	case timeline.SceneIntro:
		p := animation.IntroFrame(local, scene.Frames(), fps)
		return paramStyle.Render(fmt.Sprintf(
			"backdrop %.3f · title %.3f (y %+.1f) · hook %.3f · scale %.4f\n",
			p.BackdropOpacity, p.TitleOpacity, p.TitleOffsetY, p.HookOpacity, p.Scale))

	case timeline.SceneOutro:
		p := animation.OutroFrame(local, scene.Frames(), fps)
		return paramStyle.Render(fmt.Sprintf(
			"backdrop %.3f · cta %.3f (scale %.4f) · scale %.4f\n",
			p.BackdropOpacity, p.CTAOpacity, p.CTAScale, p.Scale))

	default:
		product, ok := m.productForRank(scene.Rank)
		if !ok {
			return ""
		}
		p := animation.ProductFrame(local, scene.Frames(), fps, product)
		return paramStyle.Render(fmt.Sprintf(
			"%s\nimage %.3f · card %.3f (scale %.4f) · title y %+.1f · price x %+.1f\n"+
				"rating fill %.3f · badge %.3f · ken burns %.4f (%+.3f, %+.3f)\n",
			product.Name,
			p.ImageOpacity, p.CardOpacity, p.CardScale, p.TitleOffsetY, p.PriceOffsetX,
			p.RatingFill, p.BadgeScale, p.KenBurnsScale, p.KenBurnsX, p.KenBurnsY))
	}
}

func (m Model) productForRank(rank int) (types.Product, bool) {
	for _, p := range m.result.Spec.Products {
		if p.Rank == rank {
			return p, true
		}
	}
	return types.Product{}, false
}
