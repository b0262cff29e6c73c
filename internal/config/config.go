package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv    = "DAILY_AWS_NEWS_CONFIG"
	bucketEnv        = "NEWS_BUCKET"
	contentPrefixEnv = "NEWS_CONTENT_PREFIX"
	logLevelEnv      = "LOG_LEVEL"
	whatsNewURLEnv   = "WHATS_NEW_FEED_URL"

	defaultTranslateTimeout = 10 * time.Second
)

// DefaultFetchTimeout bounds a single feed retrieval when no explicit
// timeout is configured. The feeds fetcher's fallback client uses it too.
const DefaultFetchTimeout = 20 * time.Second

// Config holds high-level settings required across the application.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Site      SiteConfig      `yaml:"site"`
	Translate TranslateConfig `yaml:"translate"`
	Sources   SourcesConfig   `yaml:"sources"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SiteConfig locates the published artifacts within the site bucket.
type SiteConfig struct {
	Bucket        string `yaml:"bucket"`
	ContentPrefix string `yaml:"contentPrefix"`
}

// TranslateConfig tunes the translation batch.
type TranslateConfig struct {
	Timeout string `yaml:"timeout"`
}

// TimeoutDuration resolves the per-call translation timeout, falling back
// to the default for missing or unparsable values.
func (t TranslateConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(t.Timeout)
	if err != nil || d <= 0 {
		return defaultTranslateTimeout
	}
	return d
}

// SourcesConfig is the feed catalogue a digest draws from.
type SourcesConfig struct {
	FetchTimeout string          `yaml:"fetchTimeout"`
	WhatsNew     WhatsNewConfig  `yaml:"whatsNew"`
	Videos       []VideoConfig   `yaml:"videos"`
	Blogs        []BlogConfig    `yaml:"blogs"`
	Projects     []ProjectConfig `yaml:"projects"`
}

// FetchTimeoutDuration resolves the per-request feed timeout.
func (s SourcesConfig) FetchTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(s.FetchTimeout)
	if err != nil || d <= 0 {
		return DefaultFetchTimeout
	}
	return d
}

// WhatsNewConfig points at the announcement feed.
type WhatsNewConfig struct {
	URL string `yaml:"url"`
}

// VideoConfig describes one video feed. Editions limits which digest
// languages render it; empty means all.
type VideoConfig struct {
	Label    string   `yaml:"label"`
	URL      string   `yaml:"url"`
	Lang     string   `yaml:"lang"`
	Editions []string `yaml:"editions"`
}

// BlogConfig describes one blog feed.
type BlogConfig struct {
	Label    string   `yaml:"label"`
	URL      string   `yaml:"url"`
	Lang     string   `yaml:"lang"`
	Editions []string `yaml:"editions"`
}

// ProjectConfig describes one open-source project's release feed together
// with the project page the group heading links to.
type ProjectConfig struct {
	Name    string `yaml:"name"`
	FeedURL string `yaml:"feedUrl"`
	HomeURL string `yaml:"homeUrl"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(bucketEnv); v != "" {
		c.Site.Bucket = v
	}

	if v := os.Getenv(contentPrefixEnv); v != "" {
		c.Site.ContentPrefix = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(whatsNewURLEnv); v != "" {
		c.Sources.WhatsNew.URL = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Site.Bucket != "" {
		base.Site.Bucket = override.Site.Bucket
	}
	if override.Site.ContentPrefix != "" {
		base.Site.ContentPrefix = override.Site.ContentPrefix
	}

	if override.Translate.Timeout != "" {
		base.Translate = override.Translate
	}

	if override.Sources.FetchTimeout != "" {
		base.Sources.FetchTimeout = override.Sources.FetchTimeout
	}
	if override.Sources.WhatsNew.URL != "" {
		base.Sources.WhatsNew = override.Sources.WhatsNew
	}
	if len(override.Sources.Videos) > 0 {
		base.Sources.Videos = override.Sources.Videos
	}
	if len(override.Sources.Blogs) > 0 {
		base.Sources.Blogs = override.Sources.Blogs
	}
	if len(override.Sources.Projects) > 0 {
		base.Sources.Projects = override.Sources.Projects
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Site: SiteConfig{
			ContentPrefix: "content/post",
		},
		Translate: TranslateConfig{Timeout: "10s"},
		Sources: SourcesConfig{
			FetchTimeout: "20s",
			WhatsNew: WhatsNewConfig{
				URL: "https://aws.amazon.com/about-aws/whats-new/recent/feed/",
			},
			Videos: []VideoConfig{
				{
					Label:    "AWS Black Belt Online Seminar",
					URL:      "https://www.youtube.com/feeds/videos.xml?channel_id=UCnjKWUK2t5QJYfeqqilhJhQ",
					Lang:     "ja",
					Editions: []string{"ja"},
				},
				{
					Label:    "AWS Online Tech Talks",
					URL:      "https://www.youtube.com/feeds/videos.xml?channel_id=UCd6MoB9NC6uYN2grvUNT-Zg",
					Lang:     "en",
					Editions: []string{"en"},
				},
			},
			Blogs: []BlogConfig{
				{
					Label: "AWS News Blog",
					URL:   "https://aws.amazon.com/blogs/aws/feed/",
					Lang:  "en",
				},
				{
					Label:    "AWS Japan ブログ",
					URL:      "https://aws.amazon.com/jp/blogs/news/feed/",
					Lang:     "ja",
					Editions: []string{"ja"},
				},
				{
					Label:    "AWS Open Source Blog",
					URL:      "https://aws.amazon.com/blogs/opensource/feed/",
					Lang:     "en",
					Editions: []string{"en"},
				},
				{
					Label:    "AWS Startup ブログ",
					URL:      "https://aws.amazon.com/jp/blogs/startup/feed/",
					Lang:     "ja",
					Editions: []string{"ja"},
				},
			},
			Projects: []ProjectConfig{
				{
					Name:    "aws/aws-cdk",
					FeedURL: "https://github.com/aws/aws-cdk/releases.atom",
					HomeURL: "https://github.com/aws/aws-cdk",
				},
				{
					Name:    "aws/copilot-cli",
					FeedURL: "https://github.com/aws/copilot-cli/releases.atom",
					HomeURL: "https://github.com/aws/copilot-cli",
				},
				{
					Name:    "aws-amplify/amplify-cli",
					FeedURL: "https://github.com/aws-amplify/amplify-cli/releases.atom",
					HomeURL: "https://github.com/aws-amplify/amplify-cli",
				},
			},
		},
	}
}
