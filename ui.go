package main

import (
	"image/color"

	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var (
	uiFace      ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	uiTextColor             = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	panelImg                = imageui.NewNineSliceColor(color.NRGBA{A: 200})
	buttonImg               = imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	buttonHover             = imageui.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x44, B: 0x66, A: 0xff})
)

func centered() widget.RowLayoutData {
	return widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}
}

func newLabel(s string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, &uiFace, uiTextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(centered())),
	)
}

func newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: buttonImg, Hover: buttonHover, Pressed: buttonImg}),
		widget.ButtonOpts.Text(label, &uiFace, &widget.ButtonTextColor{Idle: uiTextColor}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func setButtonLabel(b *widget.Button, label string) {
	if text := b.Text(); text != nil {
		text.Label = label
	}
}

// newPanel returns a centered vertical panel inside a full-screen anchor
// container.
func newPanel(minW, minH int) (root, panel *widget.Container) {
	panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minW, minH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	root = widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return root, panel
}
