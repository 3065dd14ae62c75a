package config

const (
	defaultAssetsDir       = "~/.local/share/signdex/assets"
	defaultLogDir          = "~/.local/share/signdex/logs"
	defaultDescriptionFile = "WLASL_v0.3.json"
	defaultVideosDir       = "videos"
	defaultSourceTag       = "WLASL v0.3"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

func defaultExtensions() []string {
	return []string{".mp4", ".mov", ".m4v"}
}

// defaultVocabulary is the built-in target gloss list: the core conversational
// vocabulary the avatar needs clips for. A [vocabulary] section in the config
// file replaces it entirely.
func defaultVocabulary() []string {
	return []string{
		// Greetings
		"hello", "hi", "hey", "goodbye", "bye",
		// Polite
		"thank you", "thanks", "please", "sorry", "excuse",
		// Yes/No
		"yes", "no", "maybe", "ok",
		// Actions
		"help", "stop", "wait", "go", "come", "sit", "stand", "sleep",
		// Feelings
		"happy", "sad", "angry", "tired", "sick", "hurt", "pain",
		// Needs
		"water", "food", "hungry", "thirsty", "bathroom", "eat", "drink",
		// Questions
		"what", "where", "when", "why", "who", "how", "which",
		// Family
		"mother", "father", "family", "friend", "brother", "sister",
		// Common words
		"want", "need", "like", "love", "know", "understand",
		"good", "bad", "fine", "cool", "hot", "cold",
		"more", "again", "finish", "done", "now", "later",
		"name", "work", "school", "home", "doctor",
		"open", "close", "big", "small", "all",
		// Time
		"morning", "night", "day", "week", "year", "today", "tomorrow",
		// Colors
		"red", "blue", "green", "yellow", "black", "white", "orange", "pink", "purple", "brown",
		// Numbers
		"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			AssetsDir: defaultAssetsDir,
			LogDir:    defaultLogDir,
		},
		Dataset: Dataset{
			DescriptionFile: defaultDescriptionFile,
			VideosDir:       defaultVideosDir,
			SourceTag:       defaultSourceTag,
			Extensions:      defaultExtensions(),
		},
		Import: Import{
			OverwriteExisting: true,
		},
		Vocabulary: Vocabulary{
			Glosses: defaultVocabulary(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
