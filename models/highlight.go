package models

// Highlight is one of the company figures animated on the landing page.
type Highlight struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Value  int    `json:"value"`
	Suffix string `json:"suffix"`
}

// Highlights returns the figures for the stats and testimonials sections.
func Highlights() []Highlight {
	return []Highlight{
		{Key: "years", Label: "Anos de experiência", Value: 15, Suffix: "+"},
		{Key: "projects", Label: "Projetos concluídos", Value: 500, Suffix: "+"},
		{Key: "commitment", Label: "Compromisso com qualidade", Value: 100, Suffix: "%"},
		{Key: "response", Label: "Atendimento", Value: 24, Suffix: "h"},
		{Key: "satisfaction", Label: "Clientes satisfeitos", Value: 98, Suffix: "%"},
		{Key: "support", Label: "Suporte", Value: 24, Suffix: "/7"},
	}
}
