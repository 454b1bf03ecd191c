package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	eb "github.com/hajimehoshi/ebiten/v2"

	"shaderclouds/clouds"
	"shaderclouds/misc"
	"shaderclouds/sound"
)

var (
	ErrLogger  = misc.ErrLogger
	WarnLogger = misc.WarnLogger
	InfoLogger = misc.InfoLogger
)

var (
	FlagVariant      string
	FlagVariantsPath string
	FlagSpeed        float64
	FlagWidth        int
	FlagHeight       int
	FlagBackend      string
	FlagSoftScale    int
	FlagRadius       float64
	FlagBackground   string
	FlagAudioDir     string
	FlagHotReload    bool

	FlagExport     string
	FlagExportTime float64
	FlagExportSize string
)

func init() {
	flag.StringVar(&FlagVariant, "variant", "", "variant to show first (JFK, SFO, LAX or one from -variants)")
	flag.StringVar(&FlagVariantsPath, "variants", "", "JSON file with the list of variants, replaces the built in ones")
	flag.Float64Var(&FlagSpeed, "speed", 0.2, "flow speed for every variant, negative uses each variant's own")
	flag.IntVar(&FlagWidth, "width", 1280, "window width")
	flag.IntVar(&FlagHeight, "height", 720, "window height")
	flag.StringVar(&FlagBackend, "backend", BackendKage, "renderer backend: kage or soft")
	flag.IntVar(&FlagSoftScale, "soft-scale", 4, "pixel size of the soft backend")
	flag.Float64Var(&FlagRadius, "radius", 0, "corner radius of the cloud view")
	flag.StringVar(&FlagBackground, "bg", "black", "page background, any CSS color")
	flag.StringVar(&FlagAudioDir, "audio", "audio", "directory with seatbelt-ding and cabin-ambience-N audio files")
	flag.BoolVar(&FlagHotReload, "hot", false, "reload the -variants file with F5")

	flag.StringVar(&FlagExport, "export", "", "render one frame to this PNG file and exit")
	flag.Float64Var(&FlagExportTime, "export-time", 0, "elapsed seconds of the exported frame")
	flag.StringVar(&FlagExportSize, "export-size", "", "size of the exported frame as WxH, defaults to -width and -height")
}

// ParseSize parses "WxH".
func ParseSize(str string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(str), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q is not WxH", str)
	}

	w, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", str, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", str, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q must be positive", str)
	}

	return w, h, nil
}

func loadVariants() ([]clouds.Variant, error) {
	if FlagVariantsPath == "" {
		return clouds.Presets(), nil
	}

	file, err := os.Open(FlagVariantsPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return clouds.LoadVariants(file)
}

func export(variants []clouds.Variant) error {
	defer NewProfTimer("export").Report()

	name := FlagVariant
	if name == "" {
		name = variants[0].Name
	}
	v, ok := clouds.Lookup(variants, name)
	if !ok {
		return fmt.Errorf("unknown variant %q", name)
	}

	w, h := FlagWidth, FlagHeight
	if FlagExportSize != "" {
		var err error
		if w, h, err = ParseSize(FlagExportSize); err != nil {
			return err
		}
	}

	speed := FlagSpeed
	if speed < 0 {
		speed = v.Speed
	}

	file, err := os.Create(FlagExport)
	if err != nil {
		return err
	}

	if err = clouds.ExportPNG(file, v, w, h, speed, FlagExportTime); err != nil {
		file.Close()
		return err
	}
	if err = file.Close(); err != nil {
		return err
	}

	InfoLogger.Printf("wrote %s (%s %dx%d at %.2fs)", FlagExport, v.Name, w, h, FlagExportTime)
	return nil
}

func main() {
	flag.Parse()

	variants, err := loadVariants()
	if err != nil {
		ErrLogger.Fatalf("failed to load variants : %v", err)
	}

	if FlagExport != "" {
		if err := export(variants); err != nil {
			ErrLogger.Fatalf("export failed : %v", err)
		}
		return
	}

	var background color.Color
	if background, err = ParseColorString(FlagBackground); err != nil {
		ErrLogger.Fatalf("bad -bg : %v", err)
	}

	if err := LoadAssets(); err != nil {
		ErrLogger.Fatalf("%v", err)
	}

	InitClipboardManager()

	soundCtx := sound.NewContext(SampleRate)
	jukebox := NewJukebox(soundCtx)
	jukebox.Load(FlagAudioDir)

	app, err := NewApp(AppConfig{
		Variants:     variants,
		VariantsPath: FlagVariantsPath,
		Initial:      FlagVariant,
		Speed:        FlagSpeed,
		Backend:      FlagBackend,
		SoftScale:    FlagSoftScale,
		Radius:       FlagRadius,
		Background:   background,
		HotReload:    FlagHotReload,
	}, jukebox)
	if err != nil {
		ErrLogger.Fatalf("%v", err)
	}

	eb.SetWindowTitle("DREAMS in the clouds")
	eb.SetWindowSize(FlagWidth, FlagHeight)
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetVsyncEnabled(true)

	app.Open()
	defer app.Close()

	if err := eb.RunGame(app); err != nil && !errors.Is(err, eb.Termination) {
		ErrLogger.Fatalf("%v", err)
	}
}
