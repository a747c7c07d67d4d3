package vipsprocessor

import (
	"context"
	"errors"
	"math"

	"github.com/cshum/vipsgen/vips"
	"github.com/thebartekbanach/imfilter/pkg/binary"
	"github.com/thebartekbanach/imfilter/pkg/processor"
)

type Config struct {
	DefaultQuality int
	DefaultFormat  string
}

// Processor transforms images in-process with libvips. vips.Startup must be
// called before the first ProcessImage call.
type Processor struct {
	config Config
}

var _ processor.ProcessingService = (*Processor)(nil)

func NewProcessor(config Config) Processor {
	if config.DefaultQuality <= 0 {
		config.DefaultQuality = 85
	}

	if config.DefaultFormat == "" {
		config.DefaultFormat = "jpeg"
	}

	return Processor{config}
}

func (proc *Processor) IsOperationSupported(operation string) bool {
	_, supported := supportedOperations[operation]
	return supported
}

func (proc *Processor) ProcessImage(
	ctx context.Context,
	source binary.Binary,
	operation string,
	params map[string]interface{},
) (binary.Binary, error) {
	apply, supported := supportedOperations[operation]
	if !supported {
		return binary.Binary{}, processor.ErrOperationNotSupported
	}

	if err := ctx.Err(); err != nil {
		return binary.Binary{}, err
	}

	image, err := vips.NewImageFromBuffer(source.Content, nil)
	if err != nil {
		return binary.Binary{}, err
	}
	defer image.Close()

	if err := apply(image, params); err != nil {
		return binary.Binary{}, err
	}

	return proc.export(image, source, params)
}

func (proc *Processor) export(image *vips.Image, source binary.Binary, params map[string]interface{}) (binary.Binary, error) {
	quality, _, err := processor.IntParam(params, "quality")
	if err != nil {
		return binary.Binary{}, err
	}
	if quality <= 0 {
		quality = proc.config.DefaultQuality
	}

	format := processor.StringParam(params, "format")
	if format == "" {
		format = source.Format
	}

	var content []byte
	switch format {
	case "png":
		content, err = image.PngsaveBuffer(vips.DefaultPngsaveBufferOptions())
	case "webp":
		opts := vips.DefaultWebpsaveBufferOptions()
		opts.Q = quality
		content, err = image.WebpsaveBuffer(opts)
	case "jpeg", "jpg":
		format = "jpeg"
		opts := vips.DefaultJpegsaveBufferOptions()
		opts.Q = quality
		content, err = image.JpegsaveBuffer(opts)
	default:
		if format != proc.config.DefaultFormat {
			return proc.export(image, binary.Binary{Format: proc.config.DefaultFormat}, withoutFormat(params))
		}
		return binary.Binary{}, ErrUnsupportedFormat
	}

	if err != nil {
		return binary.Binary{}, err
	}

	return binary.New(content, binary.MimeTypeFromFormat(format)), nil
}

func thumbnail(image *vips.Image, params map[string]interface{}) error {
	width, height, err := boundingBox(params)
	if err != nil {
		return err
	}

	scale := fitScale(width, height, image.Width(), image.Height())
	if scale >= 1 && !processor.BoolParam(params, "upscale") {
		return nil
	}

	opts := vips.DefaultResizeOptions()
	opts.Kernel = vips.KernelLanczos3
	return image.Resize(scale, opts)
}

func resize(image *vips.Image, params map[string]interface{}) error {
	width, height, err := boundingBox(params)
	if err != nil {
		return err
	}

	hscale, vscale := stretchScale(width, height, image.Width(), image.Height())

	opts := vips.DefaultResizeOptions()
	opts.Kernel = vips.KernelLanczos3
	opts.Vscale = vscale
	return image.Resize(hscale, opts)
}

func crop(image *vips.Image, params map[string]interface{}) error {
	width, height, err := boundingBox(params)
	if err != nil {
		return err
	}

	x, _, err := processor.IntParam(params, "x")
	if err != nil {
		return err
	}

	y, _, err := processor.IntParam(params, "y")
	if err != nil {
		return err
	}

	left, top, areaWidth, areaHeight, ok := clampArea(x, y, width, height, image.Width(), image.Height())
	if !ok {
		return ErrCropOutOfBounds
	}

	return image.ExtractArea(left, top, areaWidth, areaHeight)
}

func boundingBox(params map[string]interface{}) (width, height int, err error) {
	width, hasWidth, err := processor.IntParam(params, "width")
	if err != nil {
		return
	}

	height, hasHeight, err := processor.IntParam(params, "height")
	if err != nil {
		return
	}

	if (!hasWidth && !hasHeight) || width < 0 || height < 0 {
		err = processor.ErrInvalidParam
	}

	return
}

// fitScale returns the scale keeping the image inside width x height. A zero
// dimension is unconstrained.
func fitScale(width, height, imageWidth, imageHeight int) float64 {
	scale := math.Inf(1)
	if width > 0 {
		scale = math.Min(scale, float64(width)/float64(imageWidth))
	}
	if height > 0 {
		scale = math.Min(scale, float64(height)/float64(imageHeight))
	}

	if math.IsInf(scale, 1) {
		return 1
	}

	return scale
}

func stretchScale(width, height, imageWidth, imageHeight int) (hscale, vscale float64) {
	if width <= 0 {
		width = int(math.Round(float64(imageWidth) * float64(height) / float64(imageHeight)))
	}
	if height <= 0 {
		height = int(math.Round(float64(imageHeight) * float64(width) / float64(imageWidth)))
	}

	return float64(width) / float64(imageWidth), float64(height) / float64(imageHeight)
}

func clampArea(x, y, width, height, imageWidth, imageHeight int) (left, top, areaWidth, areaHeight int, ok bool) {
	if x < 0 || y < 0 || x >= imageWidth || y >= imageHeight {
		return 0, 0, 0, 0, false
	}

	if width <= 0 || x+width > imageWidth {
		width = imageWidth - x
	}
	if height <= 0 || y+height > imageHeight {
		height = imageHeight - y
	}

	return x, y, width, height, true
}

func withoutFormat(params map[string]interface{}) map[string]interface{} {
	copied := make(map[string]interface{}, len(params))
	for key, value := range params {
		if key != "format" {
			copied[key] = value
		}
	}

	return copied
}

var supportedOperations = map[string]func(*vips.Image, map[string]interface{}) error{
	"thumbnail": thumbnail,
	"resize":    resize,
	"crop":      crop,
}

var (
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrCropOutOfBounds   = errors.New("crop area is outside of the image")
)
