package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		KindBorders: true,
		Colors: ConfigColors{
			StartColor:   2,   // green
			EndColor:     9,   // red
			SetbackColor: 203, // light red
			BonusColor:   11,  // yellow
			NormalColor:  14,  // cyan
			TextColor:    15,
			TurnColor:    109,
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Keys: ConfigKeys{
			Roll: 'c',
			Quit: 'q',
		},
		Record: RecordConfig{
			Enabled: false,
		},
	}
}
