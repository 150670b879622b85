package routing

import (
	"strings"

	"github.com/jnmidia/gam-sheets-sync/internal/domain"
)

// Partition é o subconjunto de linhas destinado a uma planilha
type Partition struct {
	Destination domain.Destination
	Rows        []domain.CanonicalRow
}

// Route particiona o conjunto completo de linhas entre os destinos. A função
// é pura: mesmas entradas produzem sempre a mesma partição.
//
// Política de comparação de sites: igualdade exata sem diferenciar
// maiúsculas; o filtro de subdomínio compara a URL por substring, também sem
// diferenciar maiúsculas.
func Route(rows []domain.CanonicalRow, destinations []domain.Destination) []Partition {
	partitions := make([]Partition, 0, len(destinations))

	for _, dest := range destinations {
		partitions = append(partitions, Partition{
			Destination: dest,
			Rows:        filterRows(rows, dest),
		})
	}

	return partitions
}

func filterRows(rows []domain.CanonicalRow, dest domain.Destination) []domain.CanonicalRow {
	if len(dest.SiteFilter) == 0 && dest.SubdomainFilter == nil {
		return rows
	}

	filtered := make([]domain.CanonicalRow, 0, len(rows))
	for _, row := range rows {
		if matches(row, dest) {
			filtered = append(filtered, row)
		}
	}

	return filtered
}

func matches(row domain.CanonicalRow, dest domain.Destination) bool {
	if len(dest.SiteFilter) > 0 {
		return containsFold(dest.SiteFilter, row.Site)
	}

	filter := dest.SubdomainFilter
	if !strings.EqualFold(row.Site, filter.Domain) {
		return false
	}

	url := strings.ToLower(row.URL)
	for _, sub := range filter.Subdomains {
		if strings.Contains(url, strings.ToLower(sub)) {
			return true
		}
	}

	return false
}

func containsFold(set []string, value string) bool {
	for _, item := range set {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}
