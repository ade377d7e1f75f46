package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	_ "image/jpeg"
	"image/png"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/psisite/internal/db"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
	"gorm.io/gorm"
)

const (
	// FaviconSize is the edge of the square PNG every upload is scaled to.
	FaviconSize = 64
	// MaxFaviconBytes 上传文件大小上限
	MaxFaviconBytes = 2 << 20
)

var (
	// ErrFaviconMissing 表示尚未上传站点图标
	ErrFaviconMissing = errors.New("favicon not configured")
	// ErrFaviconUnsupported 表示上传的文件不是支持的图片格式
	ErrFaviconUnsupported = errors.New("unsupported favicon format")
	// ErrFaviconTooLarge 表示上传文件超过大小限制
	ErrFaviconTooLarge = errors.New("favicon file too large")
)

var faviconTypes = map[string]bool{
	"image/png":    true,
	"image/jpeg":   true,
	"image/gif":    true,
	"image/webp":   true,
	"image/bmp":    true,
	"image/x-icon": true,
}

// FaviconService stores the site icon under the upload directory and keeps
// one site_assets row pointing at it.
type FaviconService struct {
	db        *gorm.DB
	uploadDir string
	urlPath   string
}

// NewFaviconService 构造 FaviconService，urlPath 为上传目录对外暴露的路径前缀
func NewFaviconService(gdb *gorm.DB, uploadDir, urlPath string) *FaviconService {
	if strings.TrimSpace(uploadDir) == "" {
		uploadDir = "uploads"
	}
	if strings.TrimSpace(urlPath) == "" {
		urlPath = "/uploads"
	}
	return &FaviconService{db: gdb, uploadDir: uploadDir, urlPath: urlPath}
}

// Current returns the stored favicon asset.
func (s *FaviconService) Current() (*db.SiteAsset, error) {
	var asset db.SiteAsset
	if err := s.db.Where("kind = ?", db.AssetKindFavicon).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFaviconMissing
		}
		return nil, fmt.Errorf("get favicon: %w", err)
	}
	return &asset, nil
}

// URL returns the public favicon URL or "" when none is configured.
func (s *FaviconService) URL() string {
	asset, err := s.Current()
	if err != nil {
		if !errors.Is(err, ErrFaviconMissing) {
			log.Printf("[favicon] lookup failed: %v", err)
		}
		return ""
	}
	return asset.URL
}

// Save sniffs, normalises and stores an uploaded icon, replacing the previous one.
// ICO files are kept as-is; every other format becomes a 64x64 PNG.
func (s *FaviconService) Save(r io.Reader) (*db.SiteAsset, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFaviconBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read favicon: %w", err)
	}
	if len(data) > MaxFaviconBytes {
		return nil, ErrFaviconTooLarge
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrFaviconUnsupported)
	}

	mimeType := http.DetectContentType(data)
	if !faviconTypes[mimeType] {
		return nil, fmt.Errorf("%w: %s", ErrFaviconUnsupported, mimeType)
	}

	payload, ext := data, ".ico"
	if mimeType != "image/x-icon" {
		if payload, err = normalizeFavicon(data); err != nil {
			return nil, err
		}
		mimeType, ext = "image/png", ".png"
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	fileName := fmt.Sprintf("favicon-%s%s", uuid.New().String(), ext)
	if err := os.WriteFile(filepath.Join(s.uploadDir, fileName), payload, 0o644); err != nil {
		return nil, fmt.Errorf("write favicon: %w", err)
	}

	previous, err := s.Current()
	if err != nil && !errors.Is(err, ErrFaviconMissing) {
		return nil, err
	}

	asset := db.SiteAsset{Kind: db.AssetKindFavicon}
	if previous != nil {
		asset = *previous
	}
	asset.FileName = fileName
	asset.URL = path.Join(s.urlPath, fileName)
	asset.MimeType = mimeType
	asset.Size = int64(len(payload))
	if err := s.db.Save(&asset).Error; err != nil {
		os.Remove(filepath.Join(s.uploadDir, fileName))
		return nil, fmt.Errorf("save favicon asset: %w", err)
	}

	if previous != nil && previous.FileName != fileName {
		s.removeFile(previous.FileName)
	}
	return &asset, nil
}

// Delete removes the favicon row and its file.
func (s *FaviconService) Delete() error {
	asset, err := s.Current()
	if err != nil {
		return err
	}
	if err := s.db.Unscoped().Delete(asset).Error; err != nil {
		return fmt.Errorf("delete favicon asset: %w", err)
	}
	s.removeFile(asset.FileName)
	return nil
}

func (s *FaviconService) removeFile(fileName string) {
	if fileName == "" {
		return
	}
	if err := os.Remove(filepath.Join(s.uploadDir, filepath.Base(fileName))); err != nil && !os.IsNotExist(err) {
		log.Printf("[favicon] failed to remove %s: %v", fileName, err)
	}
}

// normalizeFavicon fits the image into a transparent square canvas.
func normalizeFavicon(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFaviconUnsupported, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrFaviconUnsupported)
	}

	width, height := FaviconSize, FaviconSize
	if bounds.Dx() > bounds.Dy() {
		height = max(1, FaviconSize*bounds.Dy()/bounds.Dx())
	} else if bounds.Dy() > bounds.Dx() {
		width = max(1, FaviconSize*bounds.Dx()/bounds.Dy())
	}
	offsetX := (FaviconSize - width) / 2
	offsetY := (FaviconSize - height) / 2

	canvas := image.NewRGBA(image.Rect(0, 0, FaviconSize, FaviconSize))
	target := image.Rect(offsetX, offsetY, offsetX+width, offsetY+height)
	draw.CatmullRom.Scale(canvas, target, img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode favicon: %w", err)
	}
	return buf.Bytes(), nil
}
