package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"fintree/internal/cli"
	"fintree/internal/config"
	"fintree/internal/render"
	"fintree/internal/tree"
)

func main() {
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig()
	logger := cli.SetupLogger(cfg)

	start := time.Now()

	root := buildExampleTree()

	total := root.Total()
	fmt.Printf("Total Financeiro: %.*f\n", cfg.AmountPrecision, total)

	dump := dumpFunc(cfg)
	fmt.Println(dump(root, cfg.AmountPrecision))

	rent, ok := root.Find("Aluguel")
	if !ok {
		logger.Warn("Category not found", "name", "Aluguel")
	} else {
		fmt.Println(dump(rent, cfg.AmountPrecision))
	}

	logger.Info("Computation finished", "elapsed_ms", time.Since(start).Milliseconds())
}

// buildExampleTree builds the reference category tree: income and
// expense categories under a single "Financeiro" root.
func buildExampleTree() *tree.Node {
	root := tree.New("Financeiro", 0.0)

	receitas := tree.New("Receitas", 0.0)
	receitas.Attach(tree.New("Salário", 5000.0))
	receitas.Attach(tree.New("Investimentos", 2000.0))

	despesas := tree.New("Despesas", 0.0)
	despesas.Attach(tree.New("Aluguel", -1200.0))
	despesas.Attach(tree.New("Supermercado", -800.0))

	root.Attach(receitas)
	root.Attach(despesas)
	return root
}

// dumpFunc picks the tree renderer: "auto" uses branch glyphs on a
// terminal and the plain indented form when output is redirected.
func dumpFunc(cfg *config.Config) func(*tree.Node, int) string {
	switch cfg.DumpFormat {
	case "plain":
		return render.Plain
	case "pretty":
		return render.Pretty
	default:
		if isatty.IsTerminal(os.Stdout.Fd()) {
			return render.Pretty
		}
		return render.Plain
	}
}
