package main

import (
	"bytes"
	"fmt"

	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
)

var (
	ClearFace *ebt.GoTextFace
	BoldFace  *ebt.GoTextFace
)

func newFace(ttf []byte, size float64) (*ebt.GoTextFace, error) {
	faceSource, err := ebt.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, err
	}

	return &ebt.GoTextFace{
		Source: faceSource,
		Size:   size,
	}, nil
}

func LoadAssets() error {
	var err error

	if ClearFace, err = newFace(gomono.TTF, 64); err != nil {
		return fmt.Errorf("failed to load font : %w", err)
	}
	if BoldFace, err = newFace(gomonobold.TTF, 64); err != nil {
		return fmt.Errorf("failed to load font : %w", err)
	}

	return nil
}

func FontSize(face *ebt.GoTextFace) float64 {
	return face.Size
}

func FontLineSpacing(face *ebt.GoTextFace) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
