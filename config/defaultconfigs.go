package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		Colors: ConfigColors{
			BoardColor:        28,
			BoardColorAlt:     22,
			FirstColor:        255,
			SecondColor:       232,
			HintColor:         190,
			CursorColorBG:     4,
			LastPlayedColorBG: 94,
		},
		Symbols: ConfigSymbols{
			First:  "○",
			Second: "●",
			Empty:  " ",
			Hint:   "+",
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Hints: HintsAsk,
		Log: LogConfig{
			Level: "warn",
			File:  "stderr",
		},
	}
}
