package helper

import (
	"bytes"
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const maxImageWidth = 1600

// ConvertImageToWebP membaca file gambar dari form multipart, membatasi lebar
// maksimum, lalu encode ulang ke WebP. Mengembalikan bytes hasil encode dan
// nama file dengan ekstensi .webp.
func ConvertImageToWebP(fileHeader *multipart.FileHeader) ([]byte, string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("gagal decode gambar: %w", err)
	}

	// Batasi lebar, jaga rasio
	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 80}); err != nil {
		return nil, "", fmt.Errorf("gagal encode webp: %w", err)
	}

	name := fileHeader.Filename
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	return buf.Bytes(), name + ".webp", nil
}
