package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tu-usuario/inventario/internal/application/usecase"
	"github.com/tu-usuario/inventario/internal/infrastructure/memory"
	"github.com/tu-usuario/inventario/internal/interfaces/cli"
	"github.com/tu-usuario/inventario/pkg/config"
	"github.com/tu-usuario/inventario/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)
	cmd := &cobra.Command{
		Use:          "inventario",
		Short:        "Inventario de tienda en memoria, manejado por menú de texto",
		Long:         "Gestiona productos, proveedores, clientes y transacciones de una tienda.\nTodo el estado vive en memoria: al salir no queda nada persistido.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, logLevel)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "directorio del archivo .env (opcional)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "nivel de log; tiene prioridad sobre LOG_LEVEL")
	return cmd
}

func run(configPath, logLevel string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Un almacén por sesión; nunca un singleton de paquete.
	store := memory.NewStore(memory.Config{
		Name:            cfg.Tienda.Name,
		TaxID:           cfg.Tienda.TaxID,
		InitialCapacity: cfg.Tienda.InitialCapacity,
	})

	productRepo := memory.NewProductRepository(store)
	supplierRepo := memory.NewSupplierRepository(store)
	customerRepo := memory.NewCustomerRepository(store)
	transactionRepo := memory.NewTransactionRepository(store)

	productUC := usecase.NewProductUseCase(productRepo, supplierRepo, transactionRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, transactionRepo)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, productRepo, supplierRepo, customerRepo)

	menu := cli.New(
		cli.Config{StoreName: store.Name(), StoreTaxID: store.TaxID()},
		productUC,
		supplierUC,
		customerUC,
		transactionUC,
		os.Stdin,
		os.Stdout,
		log,
	)
	return menu.Run()
}
