package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-atmosphere/pkg/atmosphere"
	"github.com/df07/go-atmosphere/pkg/core"
	"github.com/df07/go-atmosphere/pkg/realtime"
	"github.com/df07/go-atmosphere/pkg/texture"
	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"
)

func main() {
	// Parse command line flags
	mode := flag.String("mode", "precomputed", "Sky model: 'precomputed' or 'realtime'")
	lutDir := flag.String("luts", "luts", "Directory containing precomputed table dumps")
	width := flag.Int("width", 640, "Output image width")
	height := flag.Int("height", 360, "Output image height")
	sunElevation := flag.Float64("sun", 10, "Sun elevation in degrees above the horizon")
	altitude := flag.Float64("altitude", 500, "Camera altitude in meters")
	exposure := flag.Float64("exposure", 10, "Exposure applied before tone mapping")
	upscale := flag.Int("upscale", 1, "Integer upscale factor for the saved image")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Atmosphere Renderer")
		fmt.Println("Usage: atmosphere [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available modes:")
		fmt.Println("  precomputed - Full model from transmittance/scattering/irradiance tables")
		fmt.Println("  realtime    - Single-exponential model from an inscattering table")
		fmt.Println()
		fmt.Println("Output will be saved to output/<mode>/sky_<timestamp>.png")
		return
	}

	fmt.Println("Starting Atmosphere Renderer...")

	sunAngle := *sunElevation * math.Pi / 180
	sun := core.NewVec3(math.Cos(sunAngle), math.Sin(sunAngle), 0)

	var img image.Image
	var err error

	switch *mode {
	case "precomputed":
		fmt.Println("Using precomputed tables...")
		img, err = renderPrecomputed(*lutDir, *width, *height, *altitude, sun, *exposure)
	case "realtime":
		fmt.Println("Using real-time inscattering table...")
		img, err = renderRealtime(*lutDir, *width, *height, *altitude, sun, *exposure)
	default:
		fmt.Printf("Unknown mode: %s\n", *mode)
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}

	if *upscale > 1 {
		fmt.Printf("Upscaling %dx...\n", *upscale)
		img = upscaleImage(img, *upscale)
	}

	// Create output directory for this mode
	outputDir := filepath.Join("output", *mode)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("sky_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// cameraRays builds the inverse view-projection for a camera at the origin
// looking toward the horizon along +X with +Y up.
func cameraRays(width, height int) realtime.DrawParameters {
	aspect := float32(width) / float32(height)
	view := mgl32.LookAtV(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{1, 0.15, 0},
		mgl32.Vec3{0, 1, 0},
	)
	proj := mgl32.Perspective(mgl32.DegToRad(70), aspect, 0.1, 1000)
	return realtime.DrawParameters{InverseViewProj: proj.Mul4(view).Inv()}
}

func renderPrecomputed(lutDir string, width, height int, altitude float64, sun core.Vec3, exposure float64) (image.Image, error) {
	params := atmosphere.Earth()
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	fmt.Println("Loading tables...")
	transmittanceTex, err := texture.LoadTexture2D(
		filepath.Join(lutDir, "transmittance.raw"),
		params.TransmittanceMuSize, params.TransmittanceRSize)
	if err != nil {
		return nil, fmt.Errorf("loading transmittance table: %w", err)
	}
	scatteringTex, err := texture.LoadTexture3D(
		filepath.Join(lutDir, "scattering.raw"),
		params.ScatteringNuSize*params.ScatteringMuSSize,
		params.ScatteringMuSize, params.ScatteringRSize)
	if err != nil {
		return nil, fmt.Errorf("loading scattering table: %w", err)
	}

	camera := core.NewVec3(0, params.BottomRadius+altitude/1000, 0)
	rays := cameraRays(width, height)

	// Radiance of the solar disc itself, for rays that hit it
	solidAngle := math.Pi * params.SunAngularRadius * params.SunAngularRadius
	sunRadiance := params.SolarIrradiance.Multiply(1 / solidAngle)
	cosSunRadius := math.Cos(params.SunAngularRadius)

	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	totalLuminance := 0.0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ndcX := 2*(float32(x)+0.5)/float32(width) - 1
			ndcY := 1 - 2*(float32(y)+0.5)/float32(height)
			viewRay := rays.RayFromNDC(ndcX, ndcY)

			radiance, transmittance := params.SkyRadiance(
				transmittanceTex, scatteringTex, camera, viewRay, sun)
			if viewRay.Dot(sun) > cosSunRadius {
				radiance = radiance.Add(transmittance.MultiplyVec(sunRadiance))
			}
			totalLuminance += radiance.Luminance()
			img.Set(x, y, toneMap(radiance, exposure))
		}
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))
	fmt.Printf("Average sky luminance: %.4f\n", totalLuminance/float64(width*height))
	return img, nil
}

func renderRealtime(lutDir string, width, height int, altitude float64, sun core.Vec3, exposure float64) (image.Image, error) {
	constants := realtime.EarthConstants()

	fmt.Println("Loading inscattering table...")
	lut, err := texture.LoadTexture3D(filepath.Join(lutDir, "inscattering.raw"), 32, 128, 32)
	if err != nil {
		return nil, fmt.Errorf("loading inscattering table: %w", err)
	}

	const sunIntensity = 20.0
	zenith := core.NewVec3(0, 1, 0)
	rays := cameraRays(width, height)

	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ndcX := 2*(float32(x)+0.5)/float32(width) - 1
			ndcY := 1 - 2*(float32(y)+0.5)/float32(height)
			viewRay := rays.RayFromNDC(ndcX, ndcY)

			radiance := constants.Inscattering(lut, viewRay, zenith, altitude, sun, 0.76)
			// The table stores unitless optical quantities; scale by the sun
			// intensity before tone mapping
			img.Set(x, y, toneMap(radiance.Multiply(sunIntensity), exposure))
		}
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))
	return img, nil
}

// toneMap applies exponential exposure compression followed by gamma correction.
func toneMap(radiance core.Vec3, exposure float64) color.RGBA {
	mapped := core.NewVec3(
		1-math.Exp(-radiance.X*exposure),
		1-math.Exp(-radiance.Y*exposure),
		1-math.Exp(-radiance.Z*exposure),
	).GammaCorrect(2.2)
	return color.RGBA{
		R: uint8(math.Min(mapped.X, 1) * 255),
		G: uint8(math.Min(mapped.Y, 1) * 255),
		B: uint8(math.Min(mapped.Z, 1) * 255),
		A: 255,
	}
}

func upscaleImage(img image.Image, factor int) image.Image {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}
