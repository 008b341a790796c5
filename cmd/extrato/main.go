// Command extrato prints every stored transaction as a table.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/eaglebank/financeiro/internal/config"
	"github.com/eaglebank/financeiro/internal/database"
	"github.com/eaglebank/financeiro/internal/logger"
	"github.com/eaglebank/financeiro/internal/models"
	"github.com/eaglebank/financeiro/internal/repository"
	"github.com/olekukonko/tablewriter"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	log := logger.NewWithOutput(cfg.LogLevel, os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.OpenReadOnly(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	transactions, err := repository.NewTransactionReadRepository(db).List(ctx)
	if err != nil {
		log.Fatalf("Failed to list transactions: %v", err)
	}
	renderExtrato(os.Stdout, transactions)
}

func renderExtrato(w io.Writer, transactions []models.Transaction) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "CPF", "Tipo", "Valor", "Descrição"})
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	total := 0.0
	for _, t := range transactions {
		table.Append([]string{
			strconv.FormatInt(t.ID, 10),
			t.CPF,
			t.Tipo,
			strconv.FormatFloat(t.Valor, 'f', 2, 64),
			t.Descricao,
		})
		total += t.Valor
	}
	table.SetFooter([]string{"", "", strconv.Itoa(len(transactions)) + " registros", strconv.FormatFloat(total, 'f', 2, 64), ""})
	table.Render()
}
