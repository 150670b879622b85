package domain

// SubdomainFilter restringe uma planilha a um domínio e a URLs que contenham
// qualquer um dos subdomínios listados
type SubdomainFilter struct {
	Domain     string
	Subdomains []string
}

// Destination descreve uma planilha de destino do fan-out. No máximo um dos
// filtros deve estar preenchido; sem filtro a planilha recebe todas as linhas.
type Destination struct {
	SpreadsheetID string
	// SiteFilter é um conjunto de sites permitidos (comparação exata,
	// sem diferenciar maiúsculas)
	SiteFilter []string
	// SubdomainFilter filtra por domínio + substring de subdomínio na URL
	SubdomainFilter *SubdomainFilter
}
