package main

import (
	"flag"
	"os"

	"nova2d/internal/app"
	"nova2d/internal/config"
	"nova2d/internal/convert"
	"nova2d/internal/platform"
	"nova2d/internal/utils"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	headless := flag.Bool("headless", false, "Run without a window using the recording backend")
	frames := flag.Int("frames", -1, "Stop after this many frames (headless default from config)")
	assetsDir := flag.String("assets", "", "Asset directory (overrides config)")
	width := flag.Int("width", 0, "Window width (overrides config)")
	height := flag.Int("height", 0, "Window height (overrides config)")
	silent := flag.Bool("silent", false, "Disable audio")
	debugFlag := flag.Bool("debug", false, "Enable verbose debug logging")
	decodeMode := flag.Bool("decode", false, "Convert a single .tex to .png and exit")
	texToDecode := flag.String("tex", "", "Path to the .tex file to decode (used with -decode)")
	convertDir := flag.String("convert", "", "Convert every .tex under this directory to .png and exit")
	extractPkg := flag.String("extract", "", "Unpack a scene .pkg and exit")
	outDir := flag.String("out", "", "Output directory for -decode, -convert and -extract")
	flag.Parse()

	if *debugFlag {
		utils.DebugMode = true
		utils.CurrentLevel = utils.LevelDebug
	}

	switch {
	case *decodeMode:
		os.Exit(runDecode(*texToDecode, *outDir))
	case *convertDir != "":
		os.Exit(runConvert(*convertDir, *outDir))
	case *extractPkg != "":
		os.Exit(runExtract(*extractPkg, *outDir))
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			utils.Error("%v", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *debugFlag {
		cfg.LogLevel = "debug"
	}
	if *headless {
		cfg.Headless.Enabled = true
	}
	if *frames >= 0 {
		cfg.Headless.Frames = *frames
	}
	if *assetsDir != "" {
		cfg.Assets.Directory = *assetsDir
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if *silent {
		cfg.Audio.Enabled = false
	}

	os.Exit(run(cfg))
}

// run returns the process exit code. Fatal engine errors are recovered
// here so subsystems still get shut down.
func run(cfg config.Config) (code int) {
	var a *app.App
	defer func() {
		if r := recover(); r != nil {
			fatal, ok := utils.AsFatal(r)
			if !ok {
				panic(r)
			}
			utils.Error("Fatal: %v", fatal)
			shutdownAfterFatal(a)
			code = 1
		}
	}()

	var p app.Platform
	if cfg.Headless.Enabled {
		p = app.NewHeadless()
	} else {
		p = platform.NewRaylib(!cfg.Audio.Enabled)
	}

	a, err := app.New(cfg, p)
	if err != nil {
		utils.Error("%v", err)
		return 1
	}
	if cfg.Headless.Enabled {
		a.MaxFrames = cfg.Headless.Frames
	}

	a.Scenes.Add("SandboxScene", newSandboxScene(a))
	a.Scenes.Start("SandboxScene")

	a.Run()
	a.Shutdown()
	return 0
}

func shutdownAfterFatal(a *app.App) {
	if a == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			utils.Error("Shutdown after fatal error failed: %v", r)
		}
	}()
	a.Shutdown()
}

func runDecode(texPath, outDir string) int {
	if texPath == "" {
		utils.Error("-decode needs -tex")
		return 2
	}
	utils.Info("Decoding %s", texPath)
	out, err := convert.TexToPNG(texPath, outDir)
	if err != nil {
		utils.Error("Decode failed: %v", err)
		return 1
	}
	utils.Info("Decode successful! Saved to: %s", out)
	return 0
}

func runConvert(root, outDir string) int {
	utils.Info("Starting bulk texture conversion...")
	n := convert.BulkConvertTextures(root, outDir)
	utils.Info("Bulk conversion finished. Processed %d textures.", n)
	return 0
}

func runExtract(pkgPath, outDir string) int {
	if outDir == "" {
		outDir = "tmp"
	}
	pkg, err := convert.OpenPackage(pkgPath)
	if err != nil {
		utils.Error("Failed to open package: %v", err)
		return 1
	}
	defer pkg.Close()
	if err := pkg.Extract(outDir); err != nil {
		utils.Error("Failed to extract package: %v", err)
		return 1
	}
	utils.Info("Extracted %d files to %s", len(pkg.Entries), outDir)
	return 0
}
