package config

import "termfifteen/puzzle"

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		CheckeredTiles:    true,
		HighlightMovable:  true,
		DrawCursorOutline: true,
		Colors: ConfigColors{
			TileColor:      180,
			TileColorAlt:   179,
			TextColor:      232,
			BlankColor:     236,
			MovableColorBG: 222,
			CursorColorFG:  255,
			CursorColorBG:  24,
			SolvedColorBG:  108,
		},
		Symbols: ConfigSymbols{
			Blank:  '·',
			Cursor: '▸',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameConfig{
			DefaultBoardSize:    4,
			DefaultLimitSeconds: 300,
		},
		Input: InputConfig{
			SwipeThreshold: puzzle.DefaultSwipeThreshold,
			CellWidth:      8,
			CellHeight:     16,
		},
	}
}
