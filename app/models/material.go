package models

type MaterialType string

const (
	MaterialOuro18K    MaterialType = "OURO_18K"
	MaterialPrata925   MaterialType = "PRATA_925"
	MaterialFolheado   MaterialType = "FOLHEADO"
	MaterialAcoInox    MaterialType = "ACO_INOX"
	MaterialAcoBanhado MaterialType = "ACO_BANHADO"
	MaterialBijuteria  MaterialType = "BIJUTERIA"
)

// Materials lists the closed enumeration in display order.
var Materials = []MaterialType{
	MaterialOuro18K,
	MaterialPrata925,
	MaterialFolheado,
	MaterialAcoInox,
	MaterialAcoBanhado,
	MaterialBijuteria,
}

var materialLabels = map[MaterialType]string{
	MaterialOuro18K:    "Ouro 18k",
	MaterialPrata925:   "Prata 925",
	MaterialFolheado:   "Folheado a Ouro",
	MaterialAcoInox:    "Aço Inoxidável",
	MaterialAcoBanhado: "Aço Inox Banhado",
	MaterialBijuteria:  "Bijuteria/Liga Metálica",
}

func (m MaterialType) Valid() bool {
	_, ok := materialLabels[m]
	return ok
}

func (m MaterialType) Label() string {
	if label, ok := materialLabels[m]; ok {
		return label
	}
	return string(m)
}

var materialShortLabels = map[MaterialType]string{
	MaterialOuro18K:    "Ouro 18k",
	MaterialPrata925:   "Prata 925",
	MaterialFolheado:   "Folheado",
	MaterialAcoInox:    "Aço Inox",
	MaterialAcoBanhado: "Aço Banhado",
	MaterialBijuteria:  "Bijuteria",
}

// ShortLabel is the compact name search suggestions match and display.
func (m MaterialType) ShortLabel() string {
	if label, ok := materialShortLabels[m]; ok {
		return label
	}
	return string(m)
}
