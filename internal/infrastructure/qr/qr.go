// Package qr genera el código QR del enlace público de aplicación de un
// negocio, listo para imprimir y pegar en el local.
package qr

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

const imageSize = 512

// Generator codifica URLs como PNG cuadrados de 512px.
type Generator struct{}

// NewGenerator construye el generador.
func NewGenerator() *Generator { return &Generator{} }

// EncodePNG devuelve el PNG del QR que apunta a url.
func (g *Generator) EncodePNG(url string) ([]byte, error) {
	code, err := qr.Encode(url, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("codificar QR: %w", err)
	}
	scaled, err := barcode.Scale(code, imageSize, imageSize)
	if err != nil {
		return nil, fmt.Errorf("escalar QR: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("serializar PNG: %w", err)
	}
	return buf.Bytes(), nil
}
