// msigkit is the command-line companion to the multisig wallet front-end:
// it formats amounts, validates addresses, generates placeholder fixtures,
// manages a local address book, and derives dev keys from a mnemonic.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/cosmoshaven/multisig-kit/config"
	"github.com/cosmoshaven/multisig-kit/internal/addrbook"
	"github.com/cosmoshaven/multisig-kit/internal/log"
	"github.com/cosmoshaven/multisig-kit/internal/storage"
	"github.com/cosmoshaven/multisig-kit/internal/wallet"
	"github.com/cosmoshaven/multisig-kit/pkg/display"
	"github.com/cosmoshaven/multisig-kit/pkg/types"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fatal(err)
	}

	// Parse global flags that appear before the subcommand.
	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--datadir" && len(args) > 1:
			cfg.DataDir = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--datadir="):
			cfg.DataDir = args[0][len("--datadir="):]
			args = args[1:]
		case args[0] == "--log-level" && len(args) > 1:
			cfg.Log.Level = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			cfg.Log.Level = args[0][len("--log-level="):]
			args = args[1:]
		case args[0] == "--json-log":
			cfg.Log.JSON = true
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	log.Init(cfg.Log.Level, cfg.Log.JSON)

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "format":
		cmdFormat(cmdArgs, cfg)
	case "check":
		cmdCheck(cmdArgs, cfg)
	case "abbrev":
		cmdAbbrev(cmdArgs)
	case "example":
		cmdExample(cmdArgs, cfg)
	case "link":
		cmdLink(cmdArgs, cfg)
	case "book":
		cmdBook(cmdArgs, cfg)
	case "derive":
		cmdDerive(cmdArgs, cfg)
	case "mnemonic":
		cmdMnemonic()
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: msigkit [global flags] <command> [args]

Global flags:
  --datadir <path>     Data directory (default: ~/.msigkit)
  --log-level <level>  debug, info, warn, or error (default: info)
  --json-log           Emit JSON logs instead of console output

Chain settings come from the environment: CHAIN_ID, ADDRESS_PREFIX,
NATIVE_DENOM, DISPLAY_DENOM, DISPLAY_EXPONENT, EXPLORER_TX_URL.

Commands:
  format <amount> <denom>       Render a coin amount for display
  check <address>               Validate a bech32 address
  abbrev <identifier>           Abbreviate a long identifier
  example address|pubkey [n]    Print the nth placeholder fixture
  link <txhash>                 Build an explorer link for a transaction
  book add <label> <address>    Save an address book entry
  book list                     List address book entries
  book rm <label>               Remove an address book entry
  derive [account] [index]      Derive a dev key from a mnemonic (prompted)
  mnemonic                      Generate a new 24-word mnemonic
`)
}

func cmdFormat(args []string, cfg *config.Config) {
	if len(args) != 2 {
		fatalf("usage: msigkit format <amount> <denom>")
	}
	coin := types.NewCoin(args[1], args[0])
	out, err := display.FormatCoin(&coin, cfg)
	if err != nil {
		fatal(err)
	}
	fmt.Println(out)
}

func cmdCheck(args []string, cfg *config.Config) {
	if len(args) != 1 {
		fatalf("usage: msigkit check <address>")
	}
	if msg := display.CheckAddress(args[0], cfg); msg != "" {
		fmt.Fprintf(os.Stderr, "Invalid: %s\n", msg)
		os.Exit(1)
	}
	fmt.Println("Valid")
}

func cmdAbbrev(args []string) {
	if len(args) != 1 {
		fatalf("usage: msigkit abbrev <identifier>")
	}
	fmt.Println(display.Abbreviate(args[0]))
}

func cmdExample(args []string, cfg *config.Config) {
	if len(args) < 1 || len(args) > 2 {
		fatalf("usage: msigkit example address|pubkey [n]")
	}
	index := 0
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			fatalf("index must be a non-negative integer, got %q", args[1])
		}
		index = n
	}
	var out string
	var err error
	switch args[0] {
	case "address":
		out, err = display.ExampleAddress(index, cfg)
	case "pubkey":
		out, err = display.ExamplePubkey(index)
	default:
		fatalf("usage: msigkit example address|pubkey [n]")
	}
	if err != nil {
		fatal(err)
	}
	fmt.Println(out)
}

func cmdLink(args []string, cfg *config.Config) {
	if len(args) != 1 {
		fatalf("usage: msigkit link <txhash>")
	}
	link := display.ExplorerTxLink(args[0], cfg)
	if link == "" {
		fatalf("no explorer configured (set EXPLORER_TX_URL)")
	}
	fmt.Println(link)
}

func cmdBook(args []string, cfg *config.Config) {
	if len(args) == 0 {
		fatalf("usage: msigkit book add|list|rm ...")
	}

	db, err := storage.NewBadger(cfg.AddrBookDir())
	if err != nil {
		log.Storage.Error().Err(err).Msg("open address book database")
		os.Exit(1)
	}
	defer db.Close()
	book := addrbook.New(storage.NewPrefixDB(db, []byte("entry/")), cfg)

	switch args[0] {
	case "add":
		if len(args) != 3 {
			fatalf("usage: msigkit book add <label> <address>")
		}
		if err := book.Put(args[1], args[2]); err != nil {
			fatal(err)
		}
		log.CLI.Info().Str("label", args[1]).Msg("address saved")
	case "list":
		entries, err := book.List()
		if err != nil {
			fatal(err)
		}
		for _, e := range entries {
			fmt.Printf("%-20s %s\n", e.Label, e.Address)
		}
	case "rm":
		if len(args) != 2 {
			fatalf("usage: msigkit book rm <label>")
		}
		if err := book.Delete(args[1]); err != nil {
			fatal(err)
		}
		log.CLI.Info().Str("label", args[1]).Msg("address removed")
	default:
		fatalf("usage: msigkit book add|list|rm ...")
	}
}

func cmdDerive(args []string, cfg *config.Config) {
	if len(args) > 2 {
		fatalf("usage: msigkit derive [account] [index]")
	}
	account, index := uint32(0), uint32(0)
	if len(args) >= 1 {
		account = parseUint32(args[0], "account")
	}
	if len(args) == 2 {
		index = parseUint32(args[1], "index")
	}

	mnemonic, err := promptMnemonic()
	if err != nil {
		fatal(err)
	}
	log.Wallet.Debug().
		Uint32("account", account).
		Uint32("index", index).
		Msg("deriving key")
	seed, err := wallet.SeedFromMnemonic(mnemonic, "")
	if err != nil {
		fatal(err)
	}
	master, err := wallet.NewMasterKey(seed)
	if err != nil {
		fatal(err)
	}
	key, err := master.DeriveAccount(account, wallet.ChangeExternal, index)
	if err != nil {
		fatal(err)
	}
	addr, err := key.Address()
	if err != nil {
		fatal(err)
	}
	encoded, err := addr.Encode(cfg.AddressPrefix)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("path=m/44'/118'/%d'/0/%d\n", account, index)
	fmt.Printf("pubkey=%x\n", key.PublicKeyBytes())
	fmt.Printf("address=%s\n", encoded)
}

func cmdMnemonic() {
	mnemonic, err := wallet.GenerateMnemonic()
	if err != nil {
		fatal(err)
	}
	fmt.Println(mnemonic)
}

// promptMnemonic reads a mnemonic from the terminal without echoing it.
func promptMnemonic() (string, error) {
	fmt.Fprint(os.Stderr, "Mnemonic: ")
	line, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return "", fmt.Errorf("read mnemonic: %w", err)
	}
	return strings.TrimSpace(string(line)), nil
}

func parseUint32(s, name string) uint32 {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		fatalf("%s must be a non-negative integer, got %q", name, s)
	}
	return uint32(n)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
