package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnmidia/gam-sheets-sync/internal/domain"
)

func rows(sites ...string) []domain.CanonicalRow {
	out := make([]domain.CanonicalRow, 0, len(sites))
	for _, site := range sites {
		out = append(out, domain.CanonicalRow{Site: site})
	}
	return out
}

func TestRoute_SemFiltroRecebeTudo(t *testing.T) {
	all := rows("en.de8.com.br", "zienic.com", "us.netdinheiro.com.br")

	partitions := Route(all, []domain.Destination{
		{SpreadsheetID: "dest-1"},
		{SpreadsheetID: "dest-2"},
	})

	require.Len(t, partitions, 2)
	assert.Len(t, partitions[0].Rows, 3)
	assert.Len(t, partitions[1].Rows, 3)
}

func TestRoute_FiltroDeSites(t *testing.T) {
	all := rows("en.de8.com.br", "zienic.com", "us.netdinheiro.com.br")

	partitions := Route(all, []domain.Destination{
		{
			SpreadsheetID: "dest-filtrado",
			SiteFilter:    []string{"zienic.com", "en.de8.com.br"},
		},
	})

	require.Len(t, partitions, 1)
	require.Len(t, partitions[0].Rows, 2)
	assert.Equal(t, "en.de8.com.br", partitions[0].Rows[0].Site)
	assert.Equal(t, "zienic.com", partitions[0].Rows[1].Site)
}

func TestRoute_FiltroDeSitesIgnoraCaixa(t *testing.T) {
	all := rows("Zienic.com")

	partitions := Route(all, []domain.Destination{
		{SpreadsheetID: "dest", SiteFilter: []string{"zienic.com"}},
	})

	require.Len(t, partitions[0].Rows, 1)
}

func TestRoute_FiltroDeSubdominio(t *testing.T) {
	all := []domain.CanonicalRow{
		{Site: "creativepulse23.com", URL: "us.creativepulse23.com/post"},
		{Site: "creativepulse23.com", URL: "outra.creativepulse23.com/post"},
		{Site: "zienic.com", URL: "us.creativepulse23.com/post"},
	}

	partitions := Route(all, []domain.Destination{
		{
			SpreadsheetID: "dest",
			SubdomainFilter: &domain.SubdomainFilter{
				Domain:     "creativepulse23.com",
				Subdomains: []string{"us.creativepulse23.com"},
			},
		},
	})

	// Apenas a linha do domínio certo com URL do subdomínio permitido passa
	require.Len(t, partitions[0].Rows, 1)
	assert.Equal(t, "us.creativepulse23.com/post", partitions[0].Rows[0].URL)
}

func TestRoute_EhDeterministico(t *testing.T) {
	all := rows("a.com", "b.com", "c.com")
	dests := []domain.Destination{
		{SpreadsheetID: "dest", SiteFilter: []string{"a.com", "c.com"}},
	}

	first := Route(all, dests)
	second := Route(all, dests)

	assert.Equal(t, first, second)
}
