package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/foxtrot/common"
	"github.com/milk9111/foxtrot/ecs/component"
	"github.com/milk9111/foxtrot/ecs/system"
	"golang.org/x/image/font/basicfont"
)

var (
	textColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	mutedColor = color.NRGBA{R: 0xc8, G: 0xc8, B: 0xb4, A: 0xff}
)

// HUD is the ebitenui overlay: the interaction prompt, the dialogue panel and
// the pause menu. The consume-stage systems drive it through SetPrompt,
// ShowLine and HideDialogue.
type HUD struct {
	ui       *ebitenui.UI
	prompt   *widget.Text
	dialogue *widget.Container
	speaker  *widget.Text
	line     *widget.Text
	pause    *widget.Container
	quit     bool
}

// NewHUD builds the overlay. resume runs when the pause menu's Resume button
// is clicked.
func NewHUD(resume func()) *HUD {
	h := &HUD{}

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// prompt above the dialogue panel, both along the bottom edge
	bottom := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Bottom: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
		})),
	)
	root.AddChild(bottom)
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	h.prompt = widget.NewText(
		widget.TextOpts.Text("", &face, textColor),
		widget.TextOpts.WidgetOpts(center),
	)
	h.prompt.GetWidget().Visibility = widget.Visibility_Hide
	bottom.AddChild(h.prompt)

	h.dialogue = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 210})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 24, Right: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth*2/3, 110),
			center,
		),
	)
	h.speaker = widget.NewText(widget.TextOpts.Text("", &face, mutedColor))
	h.line = widget.NewText(widget.TextOpts.Text("", &face, textColor))
	h.dialogue.AddChild(h.speaker)
	h.dialogue.AddChild(h.line)
	h.dialogue.GetWidget().Visibility = widget.Visibility_Hide
	bottom.AddChild(h.dialogue)

	h.pause = newPauseMenu(&face, resume, func() { h.quit = true })
	h.pause.GetWidget().Visibility = widget.Visibility_Hide
	root.AddChild(h.pause)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

// newPauseMenu builds a centered panel with Resume and Quit buttons.
func newPauseMenu(face *ebtext.Face, resume, quit func()) *widget.Container {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 255})
	btnTextColor := &widget.ButtonTextColor{Idle: textColor}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Paused", face, textColor),
		widget.TextOpts.WidgetOpts(center),
	))
	panel.AddChild(button("Resume", resume))
	panel.AddChild(button("Quit", quit))
	return panel
}

func (h *HUD) SetPrompt(view component.PromptView) {
	h.prompt.Label = view.Text
	setVisible(h.prompt.GetWidget(), view.Visible)
}

func (h *HUD) ShowLine(line system.DialogueLine) {
	h.speaker.Label = line.Speaker
	h.line.Label = line.Line
	if line.Total > 1 {
		h.line.Label = fmt.Sprintf("%s   (%d/%d)", line.Line, line.Index+1, line.Total)
	}
	setVisible(h.dialogue.GetWidget(), true)
	h.ui.Container.RequestRelayout()
}

func (h *HUD) HideDialogue() {
	setVisible(h.dialogue.GetWidget(), false)
	h.ui.Container.RequestRelayout()
}

func (h *HUD) SetPaused(paused bool) {
	setVisible(h.pause.GetWidget(), paused)
}

// QuitRequested reports whether the pause menu's Quit button was clicked.
func (h *HUD) QuitRequested() bool {
	return h.quit
}

func (h *HUD) Update() {
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}

func setVisible(w *widget.Widget, visible bool) {
	if visible {
		w.Visibility = widget.Visibility_Show
	} else {
		w.Visibility = widget.Visibility_Hide
	}
}
