// GoVeil - Hide data in images.
//
// Usage:
//
//	goveil hide -i <carrier> -s <secret> -o <file> [options]
//	goveil unveil -i <carrier> [-o <dir>] [options]
//	goveil capacity -i <image> [--payload <bytes>]
//	goveil cover -o <file> [--payload <bytes>] [options]
//	goveil serve [--port 8080]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xob0t/GoVeil/clients/server"
	"github.com/xob0t/GoVeil/pkg/codec"
	"github.com/xob0t/GoVeil/pkg/cover"
	"github.com/xob0t/GoVeil/pkg/stego"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "hide":
		if err := runHide(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "unveil":
		if err := runUnveil(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "capacity":
		if err := runCapacity(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "cover":
		if err := runCover(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "serve":
		if err := server.RunServe(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runHide(args []string) error {
	fs := flag.NewFlagSet("hide", flag.ExitOnError)

	var (
		carrierPath string
		secretPath  string
		output      string
		password    string
		resize      bool
		format      string
		name        string
	)

	fs.StringVar(&carrierPath, "i", "", "Carrier image path")
	fs.StringVar(&carrierPath, "image", "", "Carrier image path")
	fs.StringVar(&secretPath, "s", "", "Secret file to hide")
	fs.StringVar(&secretPath, "secret", "", "Secret file to hide")
	fs.StringVar(&output, "o", "", "Output file path")
	fs.StringVar(&output, "output", "", "Output file path")
	fs.StringVar(&password, "password", "", "Encrypt the payload with this password")
	fs.BoolVar(&resize, "resize", false, "Grow the carrier if the payload does not fit")
	fs.StringVar(&format, "format", "png", "Output format: png, webp, avif")
	fs.StringVar(&name, "name", "", "Name to store the secret under (default: secret file name)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if carrierPath == "" {
		return fmt.Errorf("carrier image is required (-i)")
	}
	if secretPath == "" {
		return fmt.Errorf("secret file is required (-s)")
	}
	if output == "" {
		return fmt.Errorf("output file is required (-o)")
	}

	carrier, err := os.ReadFile(carrierPath)
	if err != nil {
		return fmt.Errorf("read carrier: %w", err)
	}
	secret, err := os.ReadFile(secretPath)
	if err != nil {
		return fmt.Errorf("read secret: %w", err)
	}
	if name == "" {
		name = filepath.Base(secretPath)
	}

	fmt.Printf("Hiding %s in %s\n", secretPath, carrierPath)
	out, err := stego.Hide(carrier, name, secret, stego.Options{
		Password:    password,
		AllowResize: resize,
		Format:      format,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, out, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("Done: %s (%d bytes)\n", output, len(out))
	return nil
}

func runUnveil(args []string) error {
	fs := flag.NewFlagSet("unveil", flag.ExitOnError)

	var (
		carrierPath string
		outDir      string
		password    string
	)

	fs.StringVar(&carrierPath, "i", "", "Carrier image path")
	fs.StringVar(&carrierPath, "image", "", "Carrier image path")
	fs.StringVar(&outDir, "o", ".", "Directory to write recovered files to")
	fs.StringVar(&outDir, "output", ".", "Directory to write recovered files to")
	fs.StringVar(&password, "password", "", "Password the payload was encrypted with")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if carrierPath == "" {
		return fmt.Errorf("carrier image is required (-i)")
	}

	carrier, err := os.ReadFile(carrierPath)
	if err != nil {
		return fmt.Errorf("read carrier: %w", err)
	}

	files, err := stego.Unveil(carrier, password)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No files recovered")
		return nil
	}

	for _, f := range files {
		// Base strips any path the stored name may carry.
		path := filepath.Join(outDir, filepath.Base(f.Name))
		if err := os.WriteFile(path, f.Data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("Recovered: %s (%d bytes)\n", path, len(f.Data))
	}
	return nil
}

func runCapacity(args []string) error {
	fs := flag.NewFlagSet("capacity", flag.ExitOnError)

	var (
		imagePath string
		payload   int
		resize    bool
	)

	fs.StringVar(&imagePath, "i", "", "Image path")
	fs.StringVar(&imagePath, "image", "", "Image path")
	fs.IntVar(&payload, "payload", 0, "Payload size in bytes to check against")
	fs.BoolVar(&resize, "resize", false, "Report the resize the payload would need")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if imagePath == "" {
		return fmt.Errorf("image is required (-i)")
	}

	data, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	cfg, formatName, err := codec.DecodeConfig(data)
	if err != nil {
		return err
	}

	fmt.Printf("Image:    %s (%s, %dx%d)\n", imagePath, formatName, cfg.Width, cfg.Height)
	fmt.Printf("Capacity: %d bytes\n", stego.Capacity(cfg.Width, cfg.Height))

	if payload <= 0 {
		return nil
	}

	d := stego.PlanCapacity(cfg.Width, cfg.Height, payload, resize)
	fmt.Printf("Required: %d bytes (payload %d + overhead %d)\n", d.Required, payload, stego.Overhead)
	switch d.Verdict {
	case stego.Sufficient:
		fmt.Println("Verdict:  fits without resize")
	case stego.RequiresResize:
		fmt.Printf("Verdict:  requires resize to %dx%d\n", d.TargetWidth, d.TargetHeight)
	case stego.Infeasible:
		fmt.Println("Verdict:  does not fit (pass --resize to allow growing)")
	}
	return nil
}

func runCover(args []string) error {
	fs := flag.NewFlagSet("cover", flag.ExitOnError)

	var (
		output   string
		payload  int
		width    int
		height   int
		colorStr string
	)

	fs.StringVar(&output, "o", "", "Output file path (.png or .bmp)")
	fs.StringVar(&output, "output", "", "Output file path (.png or .bmp)")
	fs.IntVar(&payload, "payload", 0, "Payload size in bytes the cover must hold")
	fs.IntVar(&width, "w", 0, "Width in pixels")
	fs.IntVar(&width, "width", 0, "Width in pixels")
	fs.IntVar(&height, "h", 0, "Height in pixels")
	fs.IntVar(&height, "height", 0, "Height in pixels")
	fs.StringVar(&colorStr, "color", "noise", "Fill: hex, 'random', or 'noise'")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if output == "" {
		return fmt.Errorf("output file is required (-o)")
	}

	cfg := cover.Config{
		Width:   width,
		Height:  height,
		Color:   colorStr,
		Payload: payload,
	}

	fmt.Printf("Generating cover: %s\n", output)
	if err := cover.Generate(output, cfg); err != nil {
		return err
	}
	fmt.Printf("Done: %s\n", output)
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`GoVeil - Hide Data in Images (Pure Go)

USAGE:
    goveil hide -i <carrier> -s <secret> -o <file> [options]
    goveil unveil -i <carrier> [-o <dir>] [options]
    goveil capacity -i <image> [--payload <bytes>] [--resize]
    goveil cover -o <file> [--payload <bytes>] [options]
    goveil serve [--port 8080]

HIDE:
    -i, --image <path>     Carrier image (png, jpeg, gif, bmp, tiff, webp, avif, jp2)
    -s, --secret <path>    File to hide
    -o, --output <path>    Output image
    --password <pw>        Encrypt the payload
    --resize               Grow the carrier if the payload does not fit
    --format <fmt>         Output format: png, webp, avif (default: png)
    --name <name>          Stored file name (default: secret file name)

UNVEIL:
    -i, --image <path>     Carrier image
    -o, --output <dir>     Directory for recovered files (default: .)
    --password <pw>        Password the payload was encrypted with

CAPACITY:
    -i, --image <path>     Image to inspect
    --payload <bytes>      Payload size to check against
    --resize               Report the resize the payload would need

COVER:
    -o, --output <path>    Output file (.png or .bmp)
    --payload <bytes>      Payload the cover must hold
    -w, --width <px>       Width in pixels
    -h, --height <px>      Height in pixels
    --color <c>            Fill: hex "#rrggbb", 'random', or 'noise' (default: noise)

UI SERVER:
    goveil serve [--port 8080]    Start the web UI

EXAMPLES:
    goveil cover -o cover.png --payload 50000
    goveil hide -i cover.png -s secret.pdf -o postcard.png --password hunter2
    goveil unveil -i postcard.png --password hunter2 -o out/
    goveil capacity -i photo.jpg --payload 50000 --resize
    goveil hide -i photo.jpg -s note.txt -o postcard.webp --format webp --resize
`)
}
