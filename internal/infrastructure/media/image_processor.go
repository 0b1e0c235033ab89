// Package media provides image processing utilities
package media

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// ImageProcessor handles gallery image uploads: base64 payloads are decoded
// to disk and resized into WebP variants for serving.
type ImageProcessor struct {
	basePath string // points to ~/shanti-go-server/media
	sizes    []int  // variant widths, e.g. 1920/1080/600
	quality  float32
}

func NewImageProcessor(basePath string, sizes []int, quality int) *ImageProcessor {
	if len(sizes) == 0 {
		sizes = []int{1920, 1080, 600}
	}
	if quality <= 0 || quality > 100 {
		quality = 80
	}
	return &ImageProcessor{
		basePath: basePath,
		sizes:    sizes,
		quality:  float32(quality),
	}
}

var binaryPattern = regexp.MustCompile(`^data:image/\w+;base64,`)

// ProcessGalleryImage saves a base64 upload under gallery/ and generates a
// WebP variant per configured width. It returns the relative URL of the
// original plus the variant URLs.
func (p *ImageProcessor) ProcessGalleryImage(data, imageID string) (string, []string, error) {
	if data == "" {
		return "", nil, fmt.Errorf("empty base64 data")
	}

	ext := extractExtension(data)
	if ext == "" {
		return "", nil, fmt.Errorf("unsupported image format")
	}

	timestamp := time.Now().UnixMilli()
	filename := fmt.Sprintf("%s-%d.%s", imageID, timestamp, ext)

	galleryDir := filepath.Join(p.basePath, "gallery")
	variantsDir := filepath.Join(p.basePath, "gallery", "variants")
	if err := os.MkdirAll(variantsDir, 0755); err != nil {
		return "", nil, fmt.Errorf("failed to create gallery directory: %w", err)
	}

	originalPath, err := writeBinaryImage(data, filename, galleryDir)
	if err != nil {
		return "", nil, err
	}

	variantPaths, err := p.generateWebPVariants(originalPath, imageID, timestamp, variantsDir)
	if err != nil {
		os.Remove(originalPath)
		return "", nil, fmt.Errorf("failed to generate variants: %w", err)
	}

	relativeOriginal := fmt.Sprintf("/media/gallery/%s", filename)
	relativeVariants := make([]string, len(variantPaths))
	for i, variantPath := range variantPaths {
		relativeVariants[i] = fmt.Sprintf("/media/gallery/variants/%s", filepath.Base(variantPath))
	}
	return relativeOriginal, relativeVariants, nil
}

// DeleteGalleryImage removes an uploaded original and all of its variants.
func (p *ImageProcessor) DeleteGalleryImage(imageURL string) error {
	if imageURL == "" {
		return fmt.Errorf("empty image path")
	}

	filename := filepath.Base(imageURL)
	basename := filename
	if dotIndex := strings.LastIndex(filename, "."); dotIndex != -1 {
		basename = filename[:dotIndex]
	}

	originalPath := filepath.Join(p.basePath, strings.TrimPrefix(imageURL, "/media/"))
	if err := os.Remove(originalPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove original image: %w", err)
	}

	variantsDir := filepath.Join(p.basePath, "gallery", "variants")
	for _, width := range p.sizes {
		variantPath := filepath.Join(variantsDir, fmt.Sprintf("%s_%dpx.webp", basename, width))
		// Variant might not exist; only surface real removal failures.
		if err := os.Remove(variantPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove variant: %w", err)
		}
	}
	return nil
}

func (p *ImageProcessor) generateWebPVariants(originalPath, imageID string, timestamp int64, variantsDir string) ([]string, error) {
	originalFile, err := os.Open(originalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open original file: %w", err)
	}
	defer originalFile.Close()

	img, err := imaging.Decode(originalFile)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	basename := fmt.Sprintf("%s-%d", imageID, timestamp)
	variantPaths := make([]string, len(p.sizes))

	for i, width := range p.sizes {
		resized := imaging.Resize(img, width, 0, imaging.Lanczos)
		variantFilename := fmt.Sprintf("%s_%dpx.webp", basename, width)
		variantPath := filepath.Join(variantsDir, variantFilename)

		if err := webp.Save(variantPath, resized, &webp.Options{Quality: p.quality}); err != nil {
			for j := range i {
				os.Remove(variantPaths[j])
			}
			return nil, fmt.Errorf("failed to save WebP variant %s: %w", variantFilename, err)
		}
		variantPaths[i] = variantPath
	}
	return variantPaths, nil
}

// writeBinaryImage decodes a base64 data URI and writes it under targetDir.
func writeBinaryImage(data, filename, targetDir string) (string, error) {
	if !binaryPattern.MatchString(data) {
		return "", fmt.Errorf("invalid binary image base64 format")
	}

	b64Data := binaryPattern.ReplaceAllString(data, "")
	decoded, err := base64.StdEncoding.DecodeString(b64Data)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	fullPath := filepath.Join(targetDir, filename)
	if err := os.WriteFile(fullPath, decoded, 0644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return fullPath, nil
}

// extractExtension auto-detects file extension from MIME type
func extractExtension(data string) string {
	switch {
	case strings.Contains(data, "data:image/png"):
		return "png"
	case strings.Contains(data, "data:image/jpeg"), strings.Contains(data, "data:image/jpg"):
		return "jpg"
	case strings.Contains(data, "data:image/webp"):
		return "webp"
	case strings.Contains(data, "data:image/"):
		return "png"
	}
	return ""
}
