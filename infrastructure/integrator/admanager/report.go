package admanager

import (
	"strings"

	"github.com/jnmidia/gam-sheets-sync/internal/domain"
)

// ReportRequest é o payload aceito pelo endpoint de relatórios do Ad Manager
type ReportRequest struct {
	Dimensions  []string `json:"dimensions"`
	Columns     []string `json:"columns"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Domain      string   `json:"domain"`
	NetworkCode string   `json:"networkCode"`
	SiteName    string   `json:"site_name"`
	ChannelName string   `json:"channel_name"`
}

// NewReportRequest monta o payload de um domínio conforme a variante de esquema
func NewReportRequest(
	spec domain.DomainSpec,
	variant domain.SchemaVariant,
	startDate, endDate string,
	siteNames, channels []string,
) ReportRequest {
	req := ReportRequest{
		StartDate:   startDate,
		EndDate:     endDate,
		Domain:      spec.Domain,
		NetworkCode: spec.NetworkCode,
		SiteName:    strings.Join(siteNames, ","),
		ChannelName: strings.Join(channels, ","),
	}

	if variant == domain.SchemaQueda {
		req.Dimensions = []string{
			domain.DimensionSiteName,
			domain.DimensionDate,
			domain.DimensionHour,
			domain.DimensionChannelName,
			domain.DimensionCountryName,
			domain.DimensionURLName,
			domain.DimensionAdUnitName,
		}
		req.Columns = []string{
			domain.ColumnRevenue,
			domain.ColumnTotalRequests,
			domain.ColumnClicks,
		}
		return req
	}

	req.Dimensions = []string{
		domain.DimensionDate,
		domain.DimensionHour,
		domain.DimensionSiteName,
		domain.DimensionChannelName,
		domain.DimensionURLName,
		domain.DimensionAdUnitName,
	}
	req.Columns = []string{
		domain.ColumnTotalRequests,
		domain.ColumnRevenue,
		domain.ColumnMatchRate,
		domain.ColumnAverageECPM,
	}
	return req
}
