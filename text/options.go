package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	cacheLimit int
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		cacheLimit: 512,
	}
}

// WithCacheLimit sets the maximum number of cached glyph outlines.
// A value of 0 disables the cache limit.
func WithCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheLimit = max(n, 0)
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

type faceConfig struct {
	language string
}

func defaultFaceConfig() faceConfig {
	return faceConfig{language: "en"}
}

// WithLanguage sets the BCP 47 language tag used when shaping with this
// face (e.g., "en", "ja", "ar").
func WithLanguage(lang string) FaceOption {
	return func(c *faceConfig) {
		c.language = lang
	}
}
