package models

import (
	"time"

	"gorm.io/datatypes"
)

// SeedProjects returns the portfolio the site launched with. CommentsCount is
// filled in from SeedComments so the catalogue starts consistent.
func SeedProjects() []Project {
	projects := []Project{
		{
			ID:               1,
			Title:            "Reforma de Fachada Comercial",
			Description:      "Projeto completo de renovação de fachada comercial com materiais modernos e sustentáveis. Incluindo pintura, revestimento e iluminação LED. Transformação visual impressionante que combina estética e funcionalidade.",
			ShortDescription: "Renovação completa de fachada comercial",
			ImageURL:         "midia/img/fachada/fachada-1.webp",
			GalleryFolder:    "fachada",
			GalleryImages: datatypes.JSONSlice[string]{
				"midia/img/fachada/fachada-0.webp",
				"midia/img/fachada/fachada-1.webp",
				"midia/img/fachada/fachada-2.webp",
			},
		},
		{
			ID:               2,
			Title:            "Construção Residencial",
			Description:      "Casa residencial de alto padrão com 3 quartos, área gourmet e piscina. Projeto executado com acabamentos premium e atenção aos detalhes. Arquitetura moderna integrada ao paisagismo.",
			ShortDescription: "Casa residencial de alto padrão",
			ImageURL:         "midia/img/fachada2/obra-1.jpg",
			GalleryFolder:    "fachada2",
			GalleryImages: datatypes.JSONSlice[string]{
				"midia/img/fachada2/obra-1.jpg",
				"midia/img/fachada2/obra-2.jpg",
				"midia/img/fachada2/obra-3.jpg",
				"midia/img/fachada2/obra-4.jpg",
			},
		},
		{
			ID:               3,
			Title:            "Instalação Elétrica Industrial",
			Description:      "Sistema elétrico completo para indústria, incluindo quadros de distribuição, cabeamento e sistemas de segurança. Projeto executado seguindo todas as normas técnicas e de segurança.",
			ShortDescription: "Sistema elétrico industrial completo",
			ImageURL:         "midia/img/quadro-luz/luz-1.webp",
			GalleryFolder:    "quadro-luz",
			GalleryImages: datatypes.JSONSlice[string]{
				"midia/img/quadro-luz/luz-1.webp",
				"midia/img/quadro-luz/luz-2.webp",
			},
		},
		{
			ID:               4,
			Title:            "Área de Lazer com Piscina",
			Description:      "Revitalização completa de área de lazer com nova piscina, deck em madeira e paisagismo moderno. Espaço projetado para relaxamento e entretenimento da família.",
			ShortDescription: "Revitalização de área de lazer completa",
			ImageURL:         "midia/img/piscina/obra-1.webp",
			GalleryFolder:    "piscina",
			GalleryImages: datatypes.JSONSlice[string]{
				"midia/img/piscina/obra-1.webp",
				"midia/img/piscina/obra-2.webp",
				"midia/img/piscina/obra-3.webp",
				"midia/img/piscina/obra-4.webp",
				"midia/img/piscina/obra-5.webp",
				"midia/img/piscina/obra-6.jpg",
				"midia/img/piscina/obra-7.jpg",
				"midia/img/piscina/obra-8.jpg",
			},
		},
		{
			ID:               5,
			Title:            "Projeto Corporativo",
			Description:      "Escritório corporativo moderno com conceito aberto, salas de reunião e área de descanso para colaboradores. Ambiente projetado para produtividade e bem-estar.",
			ShortDescription: "Escritório corporativo moderno",
			ImageURL:         "midia/img/equipe-trabalhando/equipe-1.webp",
			GalleryFolder:    "equipe-trabalhando",
			GalleryImages: datatypes.JSONSlice[string]{
				"midia/img/equipe-trabalhando/equipe-1.webp",
				"midia/img/equipe-trabalhando/equipe-2.webp",
				"midia/img/equipe-trabalhando/equipe-3.webp",
				"midia/img/equipe-trabalhando/equipe-4.webp",
			},
		},
		{
			ID:               6,
			Title:            "Reforma Estrutural",
			Description:      "Reforma estrutural completa incluindo fundação, pilares e laje. Projeto executado seguindo todas as normas técnicas de segurança e qualidade construtiva.",
			ShortDescription: "Reforma estrutural completa",
			ImageURL:         "midia/img/paredes/obra-1.jpg",
			GalleryFolder:    "paredes",
			GalleryImages: datatypes.JSONSlice[string]{
				"midia/img/paredes/obra-1.jpg",
				"midia/img/paredes/obra-2.jpg",
				"midia/img/paredes/obra-3.jpg",
				"midia/img/paredes/obra-4.jpg",
				"midia/img/paredes/obra-5.jpg",
				"midia/img/paredes/obra-6.jpg",
				"midia/img/paredes/obra-7.jpg",
			},
		},
	}

	counts := make(map[int]int)
	for _, c := range SeedComments() {
		counts[c.ProjectID]++
	}
	for i := range projects {
		projects[i].CommentsCount = counts[projects[i].ID]
	}
	return projects
}

// SeedComments returns the testimonials attached to the seed projects.
func SeedComments() []Comment {
	return []Comment{
		{ID: 1, ProjectID: 1, AuthorName: "Maria Silva", Message: "Excelente trabalho! A fachada ficou moderna e elegante.", CreatedAt: seedTime("2024-01-15T10:30:00Z")},
		{ID: 2, ProjectID: 1, AuthorName: "João Santos", Message: "Profissionais muito competentes, recomendo!", CreatedAt: seedTime("2024-01-16T14:20:00Z")},
		{ID: 3, ProjectID: 2, AuthorName: "Ana Costa", Message: "Casa dos sonhos! Superou todas as expectativas.", CreatedAt: seedTime("2024-01-18T09:15:00Z")},
		{ID: 4, ProjectID: 3, AuthorName: "Carlos Oliveira", Message: "Sistema elétrico impecável, sem problemas até hoje.", CreatedAt: seedTime("2024-01-20T16:45:00Z")},
		{ID: 5, ProjectID: 4, AuthorName: "Lucia Ferreira", Message: "A piscina ficou perfeita! Área de lazer incrível.", CreatedAt: seedTime("2024-01-22T11:30:00Z")},
	}
}

func seedTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
