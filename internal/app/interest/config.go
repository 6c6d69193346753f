package interest

// Config defines configuration of application. Values are parsed from environment variables.
type Config struct {
	InitDebug bool `split_words:"true"`
}
