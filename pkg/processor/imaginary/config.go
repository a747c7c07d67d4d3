package imaginaryprocessor

type Config struct {
	ImaginaryServiceURL string

	// MaxResponseSize limits the size of processed images read back from the
	// service; zero means no limit.
	MaxResponseSize int64
}
