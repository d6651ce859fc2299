package main

import (
	"flag"
	"time"

	"github.com/iburimskiy/gap-rings/internal/config"
)

// Command-line flags. Everything but the output and runtime switches can
// also be changed from the keyboard while running.
var (
	modeFlag         = flag.String("mode", config.DefaultMode, "initial mode: normal, alternate, growth or spawn")
	gravityFlag      = flag.Float64("gravity", config.DefaultGravity, "downward acceleration in px/s²")
	ballRadiusFlag   = flag.Float64("ball-radius", config.DefaultBallRadius, "ball radius in px")
	wallsFlag        = flag.Int("walls", config.DefaultWallCount, "number of rings")
	removeOnPassFlag = flag.Bool("remove-on-pass", config.DefaultRemoveOnPass, "remove a ring once the ball passes its gap")
	fadeFlag         = flag.Float64("fade", config.DefaultFade, "trail fade strength (0-1, 1 hides the trail)")
	sizeFlag         = flag.Int("size", config.MaxCanvasSize, "largest canvas edge in px")
	seedFlag         = flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	maxDTFlag        = flag.Float64("max-dt", 0, "clamp each frame step to this many seconds (0 disables)")

	ballColorFlag = flag.String("ball-color", config.DefaultBallColor, "ball colour as #rrggbb")
	wallColorFlag = flag.String("wall-color", config.DefaultWallColor, "ring colour as #rrggbb")
	altColorFlag  = flag.String("alt-color", config.DefaultAltColor, "second ring colour in alternate mode as #rrggbb")

	soundFlag  = flag.Bool("sound", true, "play synthesised sound effects")
	volumeFlag = flag.Float64("volume", config.DefaultVolume, "sound volume as a base-2 exponent (0 is unity gain)")

	// headlessFlag runs the simulation without a window for -duration.
	headlessFlag = flag.Bool("headless", false, "run without a window and log events")
	durationFlag = flag.Duration("duration", 10*time.Second, "how long -headless runs")

	exportSFXFlag = flag.String("export-sfx", "", "write the sound effects as WAV files into this directory and exit")

	logFlag   = flag.String("log", "", "append logs to this file instead of stderr")
	debugFlag = flag.Bool("debug", false, "log every event and show the debug overlay")
)
