package config

// Preset is a built-in example system, reachable from the TUI menu and the
// --preset flag.
type Preset struct {
	Name        string
	Description string
	Grid        string
}

var Presets = []Preset{
	{
		Name:        "unique",
		Description: "3 equations, 3 unknowns, one solution",
		Grid:        "1 1 2 9\n2 4 -3 1\n3 6 -5 0",
	},
	{
		Name:        "infinite",
		Description: "dependent rows, one free variable",
		Grid:        "1 2 3\n2 4 6",
	},
	{
		Name:        "inconsistent",
		Description: "contradictory system, no solution",
		Grid:        "1 2 5\n0 0 3",
	},
	{
		Name:        "swap",
		Description: "zero leading entry forces a row swap",
		Grid:        "0 2 4 2\n1 1 1 6\n2 0 1 5",
	},
	{
		Name:        "wide",
		Description: "underdetermined, more unknowns than equations",
		Grid:        "1 0 1 2\n0 1 1 3",
	},
	{
		Name:        "column",
		Description: "single column, analysis not applicable",
		Grid:        "3\n0\n1",
	},
}

func GetPreset(name string) *Preset {
	for i := range Presets {
		if Presets[i].Name == name {
			return &Presets[i]
		}
	}
	return nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for _, p := range Presets {
		names = append(names, p.Name)
	}
	return names
}
