package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jnmidia/gam-sheets-sync/infrastructure/integrator/admanager"
	"github.com/jnmidia/gam-sheets-sync/infrastructure/spreadsheet"
	"github.com/jnmidia/gam-sheets-sync/infrastructure/spreadsheet/gsheets"
	"github.com/jnmidia/gam-sheets-sync/internal/api"
	"github.com/jnmidia/gam-sheets-sync/internal/api/handler"
	"github.com/jnmidia/gam-sheets-sync/internal/config"
	"github.com/jnmidia/gam-sheets-sync/internal/usecases/syncing"
)

func main() {
	configureLogger()

	root := &cobra.Command{
		Use:   "gam-sheets-sync",
		Short: "Sincroniza métricas do Ad Manager com planilhas Google",
	}

	root.AddCommand(runCmd(), serveCmd(), pipelinesCmd())

	if err := root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// runCmd executa um pipeline uma única vez e encerra
func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [pipeline]",
		Short: "Executa um pipeline uma única vez (ou todos, com 'all')",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, services := bootstrap()

			name := args[0]
			if name == "all" {
				for _, pipelineName := range sortedNames(cfg.Pipelines) {
					if _, err := services[pipelineName].RunOnce(cmd.Context()); err != nil {
						return err
					}
				}
				return nil
			}

			service, ok := services[name]
			if !ok {
				return fmt.Errorf("pipeline desconhecido: %s", name)
			}

			_, err := service.RunOnce(cmd.Context())
			return err
		},
	}
}

// serveCmd sobe a API HTTP de disparo manual e status
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Inicia o servidor HTTP de disparo manual e status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, services := bootstrap()

			server, err := api.New(cfg, handler.SyncServices(services))
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			return server.Run(ctx)
		},
	}
}

// pipelinesCmd lista os pipelines configurados
func pipelinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pipelines",
		Short: "Lista os pipelines configurados",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			for _, name := range sortedNames(cfg.Pipelines) {
				p := cfg.Pipelines[name]
				fmt.Printf("%-16s variante=%-8s dominios=%-3d destinos=%-3d janela=%dd\n",
					p.Name, p.Variant, len(p.Domains), len(p.Destinations), p.WindowDays)
			}
			return nil
		},
	}
}

// bootstrap carrega a configuração e monta um serviço por pipeline
func bootstrap() (*config.Config, map[string]*syncing.Service) {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if cfg.ReportAPI.Token == "" {
		logrus.Fatal("API_TOKEN não configurado")
	}
	if cfg.Sheets.CredentialsJSON == "" {
		logrus.Fatal("GCP_CREDENTIALS não configurado")
	}

	sheets := newSheetsService(cfg)
	client := admanager.NewClient(cfg)

	services := make(map[string]*syncing.Service, len(cfg.Pipelines))
	for name, pipeline := range cfg.Pipelines {
		services[name] = syncing.NewService(client, sheets, cfg, pipeline)
	}

	return cfg, services
}

func newSheetsService(cfg *config.Config) spreadsheet.Service {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sheets, err := gsheets.NewService(ctx, cfg.Sheets.CredentialsJSON)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao autenticar no Google Sheets")
	}

	logrus.Info("Autenticação no Google Sheets estabelecida com sucesso")
	return sheets
}

func sortedNames(pipelines map[string]*config.Pipeline) []string {
	names := make([]string, 0, len(pipelines))
	for name := range pipelines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.SetOutput(os.Stdout)
}
