package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"

	"shaderclouds/misc"
)

func ImageImageFromEbImage(img *eb.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	img.ReadPixels(rgba.Pix)
	return rgba
}

// ScreenshotName picks a file name in dir that is not taken yet.
func ScreenshotName(dir string, now time.Time) (string, error) {
	timeStr := now.Format("0102150405")

	filename := fmt.Sprintf("pic-%s.png", timeStr)

	for nameCounter := 2; ; nameCounter++ {
		exists, err := misc.CheckFileExists(filepath.Join(dir, filename))
		if err != nil {
			return "", err
		}
		if !exists {
			return filename, nil
		}
		filename = fmt.Sprintf("pic-%s-(%d).png", timeStr, nameCounter)
	}
}

func TakeScreenshot(img *eb.Image, dir string) (string, error) {
	filename, err := ScreenshotName(dir, time.Now())
	if err != nil {
		return "", err
	}

	buffer := &bytes.Buffer{}
	if err = png.Encode(buffer, ImageImageFromEbImage(img)); err != nil {
		return "", err
	}

	fullPath := filepath.Join(dir, filename)
	if err = os.WriteFile(fullPath, buffer.Bytes(), 0644); err != nil {
		return "", err
	}

	return fullPath, nil
}
