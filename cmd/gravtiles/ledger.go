package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-tiles/internal/config"
	"github.com/vovakirdan/gravity-tiles/internal/words"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Maintain the approved-word ledger",
	Long: `The ledger is the list of words approved during solve. Words in the
ledger are accepted without a prompt.

Examples:
  gravtiles ledger list
  gravtiles ledger add owl newt
  gravtiles ledger remove newt`,
}

var ledgerListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print approved words",
	Args:  cobra.NoArgs,
	Run:   runLedgerList,
}

var ledgerAddCmd = &cobra.Command{
	Use:   "add <word>...",
	Short: "Approve words",
	Args:  cobra.MinimumNArgs(1),
	Run:   runLedgerAdd,
}

var ledgerRemoveCmd = &cobra.Command{
	Use:     "remove <word>...",
	Aliases: []string{"rm"},
	Short:   "Withdraw approval of words",
	Args:    cobra.MinimumNArgs(1),
	Run:     runLedgerRemove,
}

func init() {
	ledgerCmd.AddCommand(ledgerListCmd)
	ledgerCmd.AddCommand(ledgerAddCmd)
	ledgerCmd.AddCommand(ledgerRemoveCmd)
}

func openLedger(cfg config.Config) *words.Ledger {
	ledger, err := words.OpenLedger(cfg.Ledger)
	if err != nil {
		exitf("%v", err)
	}
	return ledger
}

func runLedgerList(_ *cobra.Command, _ []string) {
	ledger := openLedger(loadConfig())
	if ledger.Len() == 0 {
		fmt.Printf("No approved words yet (%s).\n", ledger.Path())
		return
	}
	for _, w := range ledger.Words() {
		fmt.Println(w)
	}
}

func runLedgerAdd(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	ledger := openLedger(cfg)
	dict := loadDictionary(cfg)

	for _, w := range args {
		if !dict.Contains(w) {
			fmt.Fprintf(os.Stderr, "Warning: %s is not in the dictionary and will never be played\n", w)
		}
		if !ledger.Insert(w) {
			fmt.Printf("%s is already approved\n", w)
		}
	}
	if err := ledger.Save(); err != nil {
		exitf("%v", err)
	}
}

func runLedgerRemove(_ *cobra.Command, args []string) {
	ledger := openLedger(loadConfig())

	for _, w := range args {
		if !ledger.Remove(w) {
			fmt.Printf("%s was not approved\n", w)
		}
	}
	if err := ledger.Save(); err != nil {
		exitf("%v", err)
	}
}
