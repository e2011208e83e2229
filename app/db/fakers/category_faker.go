package fakers

import (
	"github.com/Rakhulsr/go-joias/app/models"
)

// CategorySeed pairs a category with the singular noun its products use.
type CategorySeed struct {
	Category models.Category
	Singular string
}

func CategoryFakers() []CategorySeed {
	icon := func(s string) *string { return &s }
	return []CategorySeed{
		{models.Category{Name: "Anéis", Slug: "aneis", Icon: icon("ring"), SortOrder: 1, IsActive: true}, "Anel"},
		{models.Category{Name: "Colares", Slug: "colares", Icon: icon("necklace"), SortOrder: 2, IsActive: true}, "Colar"},
		{models.Category{Name: "Brincos", Slug: "brincos", Icon: icon("earring"), SortOrder: 3, IsActive: true}, "Brinco"},
		{models.Category{Name: "Pulseiras", Slug: "pulseiras", Icon: icon("bracelet"), SortOrder: 4, IsActive: true}, "Pulseira"},
		{models.Category{Name: "Pingentes", Slug: "pingentes", Icon: icon("pendant"), SortOrder: 5, IsActive: true}, "Pingente"},
		{models.Category{Name: "Tornozeleiras", Slug: "tornozeleiras", Icon: icon("anklet"), SortOrder: 6, IsActive: true}, "Tornozeleira"},
	}
}
