package admanager

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jnmidia/gam-sheets-sync/internal/config"
	"github.com/jnmidia/gam-sheets-sync/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client consulta a API de relatórios do Ad Manager
type Client interface {
	FetchReport(ctx context.Context, req ReportRequest) ([]domain.RawMetricRecord, error)
}

type ReportClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.ReportAPI.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	return &ReportClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchReport faz uma requisição por domínio. Resposta que não é uma lista é
// tratada como resultado vazio, não como erro.
func (c *ReportClient) FetchReport(ctx context.Context, reportReq ReportRequest) ([]domain.RawMetricRecord, error) {
	body, err := json.Marshal(reportReq)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar payload do relatório")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.ReportAPI.URL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", c.cfg.ReportAPI.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao consultar relatório do domínio %s", reportReq.Domain)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta do relatório")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf(
			"relatório do domínio %s falhou com status %s: %s",
			reportReq.Domain, resp.Status, truncate(respBody, 256),
		)
	}

	var records []domain.RawMetricRecord
	if err := json.Unmarshal(respBody, &records); err != nil {
		logrus.WithFields(logrus.Fields{
			"domain": reportReq.Domain,
		}).Warn("Resposta do relatório não é uma lista; tratando como vazia")
		return nil, nil
	}

	return records, nil
}

func truncate(b []byte, max int) string {
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "..."
}
