// Package catalog holds the static level catalog: the 38 levels and 10
// dimensions of the game, in fixed display order. A fresh snapshot is
// seeded from here on first launch and after a full reset.
package catalog

import "github.com/wumpaworks/crashtrack/pkg/types"

// Dimensions lists the level groupings in display order.
var Dimensions = []string{
	"N. Sanity Island",
	"The Hazardous Wastes",
	"Salty Wharf",
	"Tranquility Falls",
	"Mosquito Marsh",
	"The 11th Dimension",
	"Eggipus Dimension",
	"Bermugula's Orbit",
	"The Sn@xx Dimension",
	"Cortex Island",
}

// levelDef is one catalog entry: the immutable identity of a level.
type levelDef struct {
	id        string
	name      string
	dimension string
}

var levelDefs = []levelDef{
	{"rude-awakening", "Rude Awakening", "N. Sanity Island"},
	{"nsanity-peak", "N.Sanity Peak", "N. Sanity Island"},

	{"a-real-grind", "A Real Grind", "The Hazardous Wastes"},
	{"crash-compactor", "Crash Compactor", "The Hazardous Wastes"},
	{"hit-the-road", "Hit The Road", "The Hazardous Wastes"},
	{"truck-stopped", "Truck Stopped", "The Hazardous Wastes"},

	{"booty-calls", "Booty Calls", "Salty Wharf"},
	{"thar-he-blows", "Thar He Blows!", "Salty Wharf"},
	{"hook-line-and-sinker", "Hook Line And Sinker", "Salty Wharf"},
	{"jetboard-jetty", "Jetboard Jetty", "Salty Wharf"},

	{"give-it-a-spin", "Give It a Spin", "Tranquility Falls"},
	{"potion-commotion", "Potion Commotion", "Tranquility Falls"},
	{"draggin-on", "Draggin' On", "Tranquility Falls"},
	{"off-balance", "Off-Balance", "Tranquility Falls"},

	{"off-beat", "Off Beat", "Mosquito Marsh"},
	{"home-cookin", "Home Cookin'", "Mosquito Marsh"},
	{"run-it-bayou", "Run It Bayou", "Mosquito Marsh"},
	{"no-dillo-dallying", "No Dillo Dallying", "Mosquito Marsh"},

	{"snow-way-out", "Snow Way Out", "The 11th Dimension"},
	{"ship-happens", "Ship Happens", "The 11th Dimension"},
	{"stay-frosty", "Stay Frosty", "The 11th Dimension"},
	{"bears-repeating", "Bears Repeating", "The 11th Dimension"},
	{"building-bridges", "Building Bridges", "The 11th Dimension"},

	{"blast-to-the-past", "Blast To The Past", "Eggipus Dimension"},
	{"fossil-fueled", "Fossil Fueled", "Eggipus Dimension"},
	{"dino-dash", "Dino Dash", "Eggipus Dimension"},
	{"rock-blocked", "Rock Blocked", "Eggipus Dimension"},

	{"out-for-launch", "Out For Launch", "Bermugula's Orbit"},
	{"shipping-error", "Shipping Error", "Bermugula's Orbit"},
	{"stowing-away", "Stowing Away", "Bermugula's Orbit"},
	{"crash-landed", "Crash Landed", "Bermugula's Orbit"},

	{"food-run", "Food Run", "The Sn@xx Dimension"},
	{"rush-hour", "Rush Hour", "The Sn@xx Dimension"},
	{"the-crate-escape", "The Crate Escape", "The Sn@xx Dimension"},

	{"nitro-processing", "Nitro Processing", "Cortex Island"},
	{"toxic-tunnels", "Toxic Tunnels", "Cortex Island"},
	{"cortex-castle", "Cortex Castle", "Cortex Island"},
	{"seeing-double", "Seeing Double", "Cortex Island"},
}

// LevelCount returns the number of catalog levels.
func LevelCount() int {
	return len(levelDefs)
}

// NewSnapshot seeds a fresh snapshot from the catalog: all gem flags
// false, all challenge records zeroed, catalog order preserved.
func NewSnapshot() types.ProgressSnapshot {
	levels := make([]types.Level, len(levelDefs))
	for i, def := range levelDefs {
		levels[i] = types.Level{
			ID:        def.id,
			Name:      def.name,
			Dimension: def.dimension,
		}
	}
	return types.ProgressSnapshot{Levels: levels}
}
