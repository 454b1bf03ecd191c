package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"

	"shaderclouds/clouds"
	"shaderclouds/stage"
)

const (
	NavHeight  = 64
	NavMargin  = 32
	TabSpacing = 16
	LabelSize  = 14

	HoverCaptionOpacity = 0.6
	FooterOpacity       = 0.6
	SubtitleOpacity     = 0.5

	// brightness of the clouds when fully faded out
	CloudDim = 0.4

	HoverCaption = "IN THE CLOUDS"

	FooterLeft  = "Neuroscience of Imaginations, 25 SP"
	FooterRight = "©George Kim, 2025"
)

type AppConfig struct {
	Variants     []clouds.Variant
	VariantsPath string
	Initial      string

	// Speed overrides every variant's own speed when not negative.
	Speed float64

	Backend   string
	SoftScale int
	Radius    float64

	Background color.Color

	HotReload bool
}

type App struct {
	cfg AppConfig

	variants []clouds.Variant
	page     *stage.Page

	flicker *stage.Flicker

	cloudFader   stage.Fader
	captionFader stage.Fader
	hoverFader   stage.Fader

	frames   *clouds.FrameQueue
	canvas   *Canvas
	renderer *clouds.Renderer
	speed    float64

	// set once the user changes the speed, which then sticks across tabs
	speedAdjusted bool

	jukebox *Jukebox

	tabs   []*TabButton
	dreams BaseButton

	screenW, screenH int

	ShowDebugConsole bool
	screenshotQueued bool

	frameTimes FrameHistory
	lastDraw   time.Time
}

func TabsFromVariants(variants []clouds.Variant) []stage.Tab {
	tabs := make([]stage.Tab, len(variants))
	for i, v := range variants {
		tabs[i] = stage.Tab{
			Name:     strings.ToUpper(v.Name),
			Subtitle: v.Subtitle,
			Ambience: v.Ambience,
		}
	}
	return tabs
}

func NewApp(cfg AppConfig, jukebox *Jukebox) (*App, error) {
	if len(cfg.Variants) == 0 {
		return nil, errors.New("no variants to show")
	}

	canvas, err := NewCanvas(cfg.Backend)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:     cfg,
		frames:  clouds.NewFrameQueue(),
		canvas:  canvas,
		jukebox: jukebox,
		flicker: stage.NewFlicker(uint64(time.Now().UnixNano())),

		cloudFader:   stage.Fader{Value: 1, Target: 1, Duration: stage.TransitionStep},
		captionFader: stage.Fader{Duration: stage.TransitionStep},
		hoverFader:   stage.Fader{Duration: stage.TransitionStep},

		frameTimes: NewFrameHistory(120),
	}

	a.setVariants(cfg.Variants)

	if cfg.Initial != "" {
		v, ok := clouds.Lookup(a.variants, cfg.Initial)
		if !ok {
			return nil, fmt.Errorf("unknown variant %q", cfg.Initial)
		}
		for i := range a.variants {
			if a.variants[i].Name == v.Name {
				a.page.Jump(i)
			}
		}
	}

	DebugPutsPersist("backend", cfg.Backend)
	DebugPutsPersist("background", ColorToString(cfg.Background))

	return a, nil
}

func (a *App) setVariants(variants []clouds.Variant) {
	active := 0
	if a.page != nil {
		active = min(a.page.Active(), len(variants)-1)
	}

	a.variants = variants
	a.page = stage.NewPage(TabsFromVariants(variants))
	a.page.Jump(active)

	a.tabs = a.tabs[:0]
	for _, tab := range a.page.Tabs() {
		a.tabs = append(a.tabs, NewTabButton(tab.Name))
	}
	for i, b := range a.tabs {
		b.OnPress = func() {
			a.selectTab(i)
		}
	}
}

// Open plays the first ambience and mounts the active tab.
func (a *App) Open() {
	a.handle(a.page.Open())
	a.mount(a.page.Active())
}

func (a *App) Close() {
	if a.renderer != nil {
		a.renderer.Unmount()
		a.renderer = nil
	}
	a.canvas.Dispose()
	if a.jukebox != nil {
		a.jukebox.Close()
	}
}

func (a *App) rendererSize() (int, int) {
	if a.cfg.Backend == BackendSoft && a.cfg.SoftScale > 1 {
		s := a.cfg.SoftScale
		return (a.screenW + s - 1) / s, (a.screenH + s - 1) / s
	}
	return a.screenW, a.screenH
}

func (a *App) speedFor(v clouds.Variant) float64 {
	if a.speedAdjusted {
		return a.speed
	}
	if a.cfg.Speed >= 0 {
		return a.cfg.Speed
	}
	return v.Speed
}

// mount swaps the renderer for tab i. The old one is fully unmounted first.
func (a *App) mount(i int) {
	if a.renderer != nil {
		a.renderer.Unmount()
	}

	v := a.variants[i]
	a.speed = a.speedFor(v)

	a.renderer = clouds.NewRenderer()
	w, h := a.rendererSize()
	// errors are logged by the renderer and leave the surface blank
	_ = a.renderer.Mount(a.canvas, w, h, v, a.speed)
	a.renderer.Start(a.frames)

	for j, b := range a.tabs {
		b.Active = j == i
	}
}

func (a *App) selectTab(i int) {
	a.handle(a.page.Select(i))
}

func (a *App) handle(events []stage.Event) {
	if a.jukebox != nil {
		a.jukebox.Handle(events)
	}
	for _, e := range events {
		if e.Kind == stage.EventActivate {
			a.mount(e.Tab)
		}
	}
}

func (a *App) setSpeed(speed float64) {
	a.speed = math.Round(max(speed, 0)*100) / 100
	a.speedAdjusted = true
	if a.renderer != nil {
		a.renderer.SetSpeed(a.speed)
	}
}

func (a *App) reloadVariants() {
	if a.cfg.VariantsPath == "" {
		WarnLogger.Print("no variants file to reload")
		return
	}

	file, err := os.Open(a.cfg.VariantsPath)
	if err != nil {
		ErrLogger.Printf("reloading variants: %v", err)
		return
	}
	defer file.Close()

	variants, err := clouds.LoadVariants(file)
	if err != nil {
		ErrLogger.Printf("reloading variants: %v", err)
		return
	}

	InfoLogger.Printf("reloaded %d variants from %s", len(variants), a.cfg.VariantsPath)
	a.setVariants(variants)
	a.mount(a.page.Active())
}

func (a *App) copyVariant() {
	v := a.variants[a.page.Active()]

	data, err := clouds.MarshalVariant(v)
	if err != nil {
		ErrLogger.Printf("encoding %s: %v", v.Name, err)
		return
	}

	if ClipboardWriteText(string(data)) {
		InfoLogger.Printf("copied %s to clipboard", v.Name)
	}
}

func (a *App) layoutNav() {
	w := f64(a.screenW)

	x := w - NavMargin
	for i := len(a.tabs) - 1; i >= 0; i-- {
		b := a.tabs[i]
		labelW, _ := MeasureLabel(b.Text, LabelSize)
		rect := FRect(x-labelW-TabSpacing, 0, x, NavHeight)
		b.Rect = rect.Inset(4)
		x = rect.Min.X
	}

	dreamsW, _ := MeasureLabel("DREAMS", LabelSize)
	a.dreams.Rect = FRect(NavMargin, NavHeight*0.25, NavMargin+dreamsW, NavHeight*0.75)
}

func (a *App) Update() error {
	ClearDebugMsgs()

	UpdateGlobalTimer()
	dt := UpdateDelta()

	// ==========================
	// hotkeys
	// ==========================
	if IsKeyJustPressed(QuitKey) {
		return eb.Termination
	}

	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}

	for i, key := range TabKeys {
		if IsKeyJustPressed(key) {
			a.selectTab(i)
		}
	}

	const firstRate, repeatRate = 300 * time.Millisecond, 80 * time.Millisecond
	if HandleKeyRepeat(firstRate, repeatRate, SpeedUpKey) {
		a.setSpeed(a.speed + SpeedStep)
	}
	if HandleKeyRepeat(firstRate, repeatRate, SpeedDownKey) {
		a.setSpeed(a.speed - SpeedStep)
	}

	if IsKeyJustPressed(CopyVariantKey) {
		a.copyVariant()
	}

	if IsKeyJustPressed(ReloadVariantsKey) && a.cfg.HotReload {
		a.reloadVariants()
	}

	if IsKeyJustPressed(ScreenshotKey) {
		a.screenshotQueued = true
	}

	// ==========================
	// nav
	// ==========================
	a.layoutNav()
	for _, b := range a.tabs {
		b.Update()
	}
	a.dreams.Update()

	// ==========================
	// page
	// ==========================
	a.handle(a.page.Update(dt))
	a.flicker.Update(dt)

	if a.page.Transitioning() || a.flicker.On() {
		a.cloudFader.Target = 0
	} else {
		a.cloudFader.Target = 1
	}
	a.cloudFader.Update(dt)

	if a.page.Transitioning() {
		a.captionFader.Target = 1
	} else {
		a.captionFader.Target = 0
	}
	a.captionFader.Update(dt)

	if a.dreams.Hovered() {
		a.hoverFader.Target = HoverCaptionOpacity
	} else {
		a.hoverFader.Target = 0
	}
	a.hoverFader.Update(dt)

	if a.jukebox != nil {
		a.jukebox.Update()
	}

	// ==========================
	// DebugPrint
	// ==========================
	DebugPrintf("FPS", "%.2f", eb.ActualFPS())
	DebugPrintf("TPS", "%.2f", eb.ActualTPS())
	if a.renderer != nil {
		w, h := a.renderer.Size()
		DebugPrint("variant", a.renderer.Variant().Name)
		DebugPrint("state", a.renderer.State())
		if err := a.renderer.Err(); err != nil {
			DebugPrint("error", err)
		}
		DebugPrintf("size", "%dx%d", w, h)
		DebugPrint("frames", a.renderer.Frames())
	}
	DebugPrintf("speed", "%.2f", a.speed)
	DebugPrintf("frame time", "avg %v max %v", a.frameTimes.Average(), a.frameTimes.Max())

	return nil
}

func (a *App) Draw(dst *eb.Image) {
	now := time.Now()
	if !a.lastDraw.IsZero() {
		a.frameTimes.Push(now.Sub(a.lastDraw))
	}
	a.lastDraw = now

	dst.Fill(a.cfg.Background)

	// runs the renderer's pending frame, once per display refresh
	a.frames.Flush(now)

	if img := a.canvas.Image(); img != nil && a.cloudFader.Value > 0 {
		op := &DrawImageOptions{}
		op.ColorScale = CloudColorScale(a.cloudFader.Value)
		DrawImageRounded(dst, img, FRectWH(f64(a.screenW), f64(a.screenH)), a.cfg.Radius, op)
	}

	a.drawNav(dst)
	a.drawCaption(dst)
	a.drawFooter(dst)

	if a.screenshotQueued {
		a.screenshotQueued = false
		if path, err := TakeScreenshot(dst, "."); err != nil {
			ErrLogger.Printf("screenshot failed: %v", err)
		} else {
			InfoLogger.Printf("saved %s", path)
		}
	}

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

// CloudColorScale dims and fades the clouds together. fade 1 is fully shown.
func CloudColorScale(fade float64) eb.ColorScale {
	fade = Clamp(fade, 0, 1)
	b := f32(Lerp(CloudDim, 1, fade))

	var cs eb.ColorScale
	cs.Scale(b, b, b, 1)
	cs.ScaleAlpha(f32(fade))
	return cs
}

func drawLabel(dst *eb.Image, text string, face *ebt.GoTextFace, x, y, size float64, clr color.Color, align ebt.Align) {
	op := &DrawTextOptions{}
	op.LayoutOptions.PrimaryAlign = align
	op.LayoutOptions.SecondaryAlign = ebt.AlignCenter
	op.GeoM.Scale(size/FontSize(face), size/FontSize(face))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	DrawText(dst, text, face, op)
}

func (a *App) drawNav(dst *eb.Image) {
	white := color.NRGBA{255, 255, 255, 255}

	center := FRectangleCenter(a.dreams.Rect)
	drawLabel(dst, "DREAMS", ClearFace, a.dreams.Rect.Min.X, center.Y, LabelSize, white, ebt.AlignStart)

	if a.hoverFader.Value > 0 {
		drawLabel(
			dst, strings.ToLower(HoverCaption), ClearFace,
			a.dreams.Rect.Min.X, a.dreams.Rect.Max.Y+LabelSize*0.5+4, LabelSize,
			ColorFade(white, a.hoverFader.Value), ebt.AlignStart,
		)
	}

	for _, b := range a.tabs {
		b.Draw(dst, LabelSize)
	}
}

func (a *App) drawCaption(dst *eb.Image) {
	if a.captionFader.Value <= 0 {
		return
	}

	title, subtitle := a.page.Caption()
	if title == "" {
		return
	}

	white := color.NRGBA{255, 255, 255, 255}
	cx, cy := f64(a.screenW)*0.5, f64(a.screenH)*0.5

	const size = 16
	drawLabel(dst, strings.ToUpper(title), BoldFace, cx, cy-size*0.75, size,
		ColorFade(white, a.captionFader.Value), ebt.AlignCenter)
	drawLabel(dst, strings.ToLower(subtitle), ClearFace, cx, cy+size*0.75, size,
		ColorFade(white, a.captionFader.Value*SubtitleOpacity), ebt.AlignCenter)
}

func (a *App) drawFooter(dst *eb.Image) {
	clr := ColorFade(color.NRGBA{255, 255, 255, 255}, FooterOpacity)
	y := f64(a.screenH) - NavHeight*0.5

	drawLabel(dst, strings.ToUpper(FooterLeft), ClearFace, NavMargin, y, LabelSize, clr, ebt.AlignStart)
	drawLabel(dst, strings.ToUpper(FooterRight), ClearFace, f64(a.screenW)-NavMargin, y, LabelSize, clr, ebt.AlignEnd)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.screenW || outsideHeight != a.screenH {
		a.screenW, a.screenH = outsideWidth, outsideHeight
		if a.renderer != nil {
			a.renderer.Resize(a.rendererSize())
		}
	}

	return outsideWidth, outsideHeight
}
