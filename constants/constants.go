package constants

const (
	// Env variable names

	ENV_ENGINE     = "GTTS_ENGINE"
	ENV_GOOGLE_URL = "GTTS_GOOGLE_URL" // Google Translate TTS endpoint base url
	ENV_LOG_LEVEL  = "GTTS_LOG_LEVEL"
	ENV_CONFIG     = "GTTS_CONFIG" // config file path

	TTS_EDGE = "edge" // edge TTS. https://github.com/rany2/edge-tts

	TTS_GOOGLE = "google" // Google Translate free public TTS API

	DEFAULT_TTS = TTS_GOOGLE

	DEFAULT_GOOGLE_URL = "https://translate.google.com"

	DEFAULT_LOG_LEVEL = "warn"

	// Config folder name under os.UserConfigDir()
	CONFIG_FOLDER_NAME = "gtts"
	CONFIG_BASENAME    = "config"

	// os.CreateTemp pattern of generated audio files
	TEMP_PATTERN = "gtts-*.mp3"

	MIME_BINARY = "application/octet-stream"
	MIME_MP3    = "audio/mpeg"

	// Read text from stdin when it's the <text> arg
	STDIN = "-"
)

const HELP_ENGINE = `TTS engine. Any of: "` + TTS_GOOGLE + `" (Google Translate public TTS api), ` +
	`"` + TTS_EDGE + `" (Microsoft Edge online TTS). ` +
	`If not set, it uses ` + ENV_ENGINE + ` env, then config file, then fallbacks to "` + DEFAULT_TTS + `"`

const HELP_LOG_LEVEL = `Log level. Any of: "trace", "debug", "info", "warn", "error". ` +
	`Logs are written to stderr. If not set, it uses ` + ENV_LOG_LEVEL + ` env, then config file, ` +
	`then fallbacks to "` + DEFAULT_LOG_LEVEL + `"`

const HELP_CONFIG = `Config file path (.toml, .yaml or .yml). If not set, it uses ` + ENV_CONFIG + ` env, ` +
	`then tries CONFIG_DIR/` + CONFIG_FOLDER_NAME + `/` + CONFIG_BASENAME + `.{toml,yaml,yml} if exists. ` +
	`Where CONFIG_DIR is:
- Linux: $XDG_CONFIG_HOME or $HOME/.config .
- Darwin: $HOME/Library/Application Support .
- Windows: %AppData% .`
