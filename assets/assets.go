// Package assets embeds the game data shipped with the binary.
package assets

import "embed"

// Data holds characters.json, environments.json and game_config.json under data/.
//
//go:embed data/*.json
var Data embed.FS
