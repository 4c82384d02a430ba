package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TamanoMaximoImagen is the upload size cap: 5 MiB, rejected before any
// record mutation happens.
const TamanoMaximoImagen = 5 << 20

var (
	ErrImagenInvalida  = errors.New("Solo se permiten imágenes (jpeg, jpg, png, gif)")
	ErrImagenMuyGrande = errors.New("La imagen supera el tamaño máximo de 5 MB")
)

var extensionesPermitidas = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

// AlmacenImagenes writes accepted recipe images into a fixed directory and
// hands back their public path. Files are never deleted here; see the
// worker package for the opt-in orphan sweep.
type AlmacenImagenes struct {
	dir string
}

func NewAlmacenImagenes(dir string) (*AlmacenImagenes, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &AlmacenImagenes{dir: dir}, nil
}

// Guardar validates extension, declared MIME type and size, then stores the
// file under a collision-resistant name (millisecond timestamp + random
// suffix + original extension) and returns the "/uploads/..." path to
// persist on the record.
func (a *AlmacenImagenes) Guardar(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !extensionesPermitidas[ext] {
		return "", ErrImagenInvalida
	}
	if !mimeAceptado(fh.Header.Get("Content-Type")) {
		return "", ErrImagenInvalida
	}
	if fh.Size > TamanoMaximoImagen {
		return "", ErrImagenMuyGrande
	}

	nombre := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(a.dir, nombre))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, io.LimitReader(src, TamanoMaximoImagen)); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return "/uploads/" + nombre, nil
}

func mimeAceptado(ct string) bool {
	for _, t := range []string{"jpeg", "jpg", "png", "gif"} {
		if strings.Contains(ct, t) {
			return true
		}
	}
	return false
}
