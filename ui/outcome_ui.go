package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/castlecrush/components"
	"github.com/automoto/castlecrush/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// OutcomeUI is the end-of-round panel: a title and a button that starts the
// next round. It slides in with the round's banner offset.
type OutcomeUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnContinue func()

	title  *widget.Label
	button *widget.Button
	layer  *ebiten.Image

	outcome components.Outcome
	offset  float32

	titleFace  text.Face
	buttonFace text.Face
}

// NewOutcomeUI builds the panel. onContinue runs when the button is clicked.
func NewOutcomeUI(onContinue func()) *OutcomeUI {
	o := &OutcomeUI{OnContinue: onContinue}
	o.loadFonts()
	o.buildUI()
	return o
}

func (o *OutcomeUI) loadFonts() {
	if fonts.Loaded(fonts.Banner) {
		o.titleFace = text.NewGoXFace(fonts.Banner.Get())
	} else {
		fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if err != nil {
			panic(err)
		}
		o.titleFace = &text.GoTextFace{Source: fontSource, Size: 28}
	}

	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}
	o.buttonFace = &text.GoTextFace{Source: fontSource, Size: 14}
}

func (o *OutcomeUI) buildUI() {
	// Transparent root so the castle stays visible behind the panel
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 180})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	o.title = widget.NewLabel(
		widget.LabelOpts.Text("", &o.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(o.title)

	o.button = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 32)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("", &o.buttonFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{230, 230, 230, 255},
			Hover:    color.RGBA{255, 255, 255, 255},
			Pressed:  color.RGBA{180, 180, 180, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if o.OnContinue != nil {
				o.OnContinue()
			}
		}),
	)
	panel.AddChild(o.button)

	rootContainer.AddChild(panel)

	o.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{120, 70, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{150, 90, 50, 255})
	pressed := image.NewNineSliceColor(color.RGBA{90, 50, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// outcomeText is the panel title and button label for an outcome.
func outcomeText(outcome components.Outcome) (title, action string) {
	switch outcome {
	case components.OutcomeWin:
		return "YOU WON", "NEXT LEVEL"
	case components.OutcomeLose:
		return "YOU LOST", "TRY AGAIN"
	default:
		return "", ""
	}
}

// Sync copies the round's outcome and banner offset into the widgets. The
// button stays disabled while the panel is still sliding in.
func (o *OutcomeUI) Sync(outcome components.Outcome, bannerOffset float32) {
	o.outcome, o.offset = outcome, bannerOffset
	title, action := outcomeText(outcome)
	o.title.Label = title
	if textWidget := o.button.Text(); textWidget != nil {
		textWidget.Label = action
	}
	o.button.GetWidget().Disabled = bannerOffset < 0
}

// Visible reports whether a decided round is being shown.
func (o *OutcomeUI) Visible() bool {
	return o.outcome != components.OutcomePending
}

func (o *OutcomeUI) Update() {
	if o.Visible() {
		o.UI.Update()
	}
}

// Draw renders the panel shifted by the banner offset, which is in world
// units and so multiplied by the viewport scale.
func (o *OutcomeUI) Draw(screen *ebiten.Image, scale float64) {
	if !o.Visible() {
		return
	}
	b := screen.Bounds()
	if o.layer == nil || o.layer.Bounds().Dx() != b.Dx() || o.layer.Bounds().Dy() != b.Dy() {
		if o.layer != nil {
			o.layer.Deallocate()
		}
		o.layer = ebiten.NewImage(b.Dx(), b.Dy())
	}
	o.layer.Clear()
	o.UI.Draw(o.layer)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(o.offset)*scale)
	screen.DrawImage(o.layer, op)
}
