package charts

import "encoding/json"

// Config mirrors the Chart.js configuration object. Only the keys the
// dashboard sets are modelled.
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label           string   `json:"label"`
	Data            []int    `json:"data"`
	BackgroundColor ColorSet `json:"backgroundColor"`
	BorderColor     ColorSet `json:"borderColor"`
	BorderWidth     int      `json:"borderWidth"`
}

// ColorSet encodes as a bare string when it holds a single color, which
// Chart.js applies to every element of the dataset.
type ColorSet []string

func (c ColorSet) MarshalJSON() ([]byte, error) {
	if len(c) == 1 {
		return json.Marshal(c[0])
	}
	return json.Marshal([]string(c))
}

func (c *ColorSet) UnmarshalJSON(raw []byte) error {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		*c = ColorSet{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return err
	}
	*c = many
	return nil
}

type Options struct {
	Responsive          bool             `json:"responsive"`
	MaintainAspectRatio bool             `json:"maintainAspectRatio"`
	Animation           bool             `json:"animation"`
	Interaction         *Interaction     `json:"interaction,omitempty"`
	Plugins             Plugins          `json:"plugins"`
	Scales              map[string]Scale `json:"scales,omitempty"`
}

type Interaction struct {
	Mode      string `json:"mode"`
	Intersect bool   `json:"intersect"`
}

type Plugins struct {
	Legend  Legend  `json:"legend"`
	Tooltip Tooltip `json:"tooltip"`
}

type Legend struct {
	Position string       `json:"position"`
	Labels   LegendLabels `json:"labels"`
}

type LegendLabels struct {
	UsePointStyle bool `json:"usePointStyle"`
	Padding       int  `json:"padding"`
}

type Tooltip struct {
	Animation bool `json:"animation"`
}

type Scale struct {
	Stacked     bool       `json:"stacked"`
	BeginAtZero bool       `json:"beginAtZero,omitempty"`
	Grid        *Grid      `json:"grid,omitempty"`
	Title       *AxisTitle `json:"title,omitempty"`
	Ticks       *Ticks     `json:"ticks,omitempty"`
}

type Grid struct {
	Display bool `json:"display"`
}

type AxisTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

type Ticks struct {
	Precision int `json:"precision"`
}

func legend(position string) Legend {
	return Legend{
		Position: position,
		Labels:   LegendLabels{UsePointStyle: true, Padding: 15},
	}
}
