package schema

import "strings"

// ChakraInfo holds the presentation metadata for one signal.
type ChakraInfo struct {
	Name     SignalName `json:"name"`
	Index    int        `json:"index"`    // 1-based position
	Display  string     `json:"display"`  // e.g. "Third Eye"
	Short    string     `json:"short"`    // suffix of the signal name, e.g. "ThirdEye"
	Color    string     `json:"color"`    // hex without '#'
	Syllable string     `json:"syllable"` // seed syllable
	Function string     `json:"function"`
	Role     string     `json:"role"` // core-agent role used when reporting dominant signals
}

var chakraCatalog = map[SignalName]ChakraInfo{
	RootSignal:     {Name: RootSignal, Index: 1, Display: "Root", Color: "8B4513", Syllable: "LAM", Function: "Grounding & Stability", Role: "Foundation"},
	SacralSignal:   {Name: SacralSignal, Index: 2, Display: "Sacral", Color: "FF8C00", Syllable: "VAM", Function: "Creativity & Flow", Role: "Flow"},
	SolarSignal:    {Name: SolarSignal, Index: 3, Display: "Solar", Color: "FFD700", Syllable: "RAM", Function: "Willpower & Decision", Role: "Drive"},
	HeartSignal:    {Name: HeartSignal, Index: 4, Display: "Heart", Color: "32CD32", Syllable: "YAM", Function: "Compassion & Integration", Role: "Harmony"},
	ThroatSignal:   {Name: ThroatSignal, Index: 5, Display: "Throat", Color: "1E90FF", Syllable: "HAM", Function: "Expression & Clarity", Role: "Clarity"},
	ThirdEyeSignal: {Name: ThirdEyeSignal, Index: 6, Display: "Third Eye", Color: "4B0082", Syllable: "OM", Function: "Insight & Synthesis", Role: "Insight"},
	CrownSignal:    {Name: CrownSignal, Index: 7, Display: "Crown", Color: "9370DB", Syllable: "Silence", Function: "Meta-awareness", Role: "Synthesis"},
}

// Info returns the metadata for a signal. The second return is false for unknown names.
func Info(name SignalName) (ChakraInfo, bool) {
	info, ok := chakraCatalog[name]
	if !ok {
		return ChakraInfo{}, false
	}
	info.Short = name.Short()
	return info, true
}

// MustInfo returns the metadata for a known signal and panics otherwise.
func MustInfo(name SignalName) ChakraInfo {
	info, ok := Info(name)
	if !ok {
		panic("schema: unknown signal " + string(name))
	}
	return info
}

// Short returns the part after the first underscore ("E6_ThirdEye" -> "ThirdEye").
func (s SignalName) Short() string {
	if _, after, ok := strings.Cut(string(s), "_"); ok {
		return after
	}
	return string(s)
}

// ParseSignalName resolves a user-provided name. It accepts the full identifier
// ("E4_Heart"), the short form ("Heart"), the display form ("Third Eye") or the
// 1-based index ("4"), case-insensitively.
func ParseSignalName(s string) (SignalName, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	if needle == "" {
		return "", false
	}
	for _, name := range AllSignals {
		info := MustInfo(name)
		switch needle {
		case strings.ToLower(string(name)),
			strings.ToLower(info.Short),
			strings.ToLower(info.Display),
			strings.ToLower(info.Role):
			return name, true
		}
		if len(needle) == 1 && needle[0] == byte('0'+info.Index) {
			return name, true
		}
	}
	return "", false
}
